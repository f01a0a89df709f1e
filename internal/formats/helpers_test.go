package formats

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/result"
)

// zipOf builds an in-memory zip archive and opens it as a container.
func zipOf(t *testing.T, entries map[string]string) container.Container {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range sortedKeys(entries) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	c, err := container.OpenZip(buf.Bytes(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// tarGzOf builds an in-memory tar.gz archive and opens it as a container.
func tarGzOf(t *testing.T, entries map[string]string) container.Container {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, name := range sortedKeys(entries) {
		body := entries[name]
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	c, err := container.OpenTarGz(buf.Bytes(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func flatOf(t *testing.T, data []byte) container.Container {
	t.Helper()
	c, err := container.OpenFlat(data, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// le32 appends v in little-endian order.
func le32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func assertNoWarningsOrErrors(t *testing.T, r result.Result) {
	t.Helper()
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func assertConsistent(t *testing.T, r result.Result) {
	t.Helper()
	assert.Equal(t, len(r.Errors) == 0, r.Success, "success must match an empty error list")
}
