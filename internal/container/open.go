package container

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// OpenFlat treats the whole input as the single section Raw.
func OpenFlat(data []byte, limit int) (Container, error) {
	if limit > 0 && len(data) > limit {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	s := newSections()
	s.add(Raw, data)
	return s, nil
}

// budget tracks the decoded bytes still allowed across all entries of one
// archive.
type budget struct {
	left    int64
	limited bool
}

func newBudget(limit int) *budget {
	return &budget{left: int64(limit), limited: limit > 0}
}

// read drains r, failing with ErrTooLarge as soon as the budget runs out.
func (b *budget) read(name string, r io.Reader) ([]byte, error) {
	if !b.limited {
		return io.ReadAll(r)
	}
	payload, err := io.ReadAll(io.LimitReader(r, b.left+1))
	if err != nil {
		return nil, err
	}
	if int64(len(payload)) > b.left {
		return nil, fmt.Errorf("%w: entry %s", ErrTooLarge, name)
	}
	b.left -= int64(len(payload))
	return payload, nil
}

// OpenZip reads every file entry of a zip archive in one pass.
func OpenZip(data []byte, limit int) (Container, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	s := newSections()
	b := newBudget(limit)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		payload, err := readZipEntry(f, b)
		if errors.Is(err, ErrTooLarge) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrCorrupt, f.Name, err)
		}
		s.add(f.Name, payload)
	}
	return s, nil
}

func readZipEntry(f *zip.File, b *budget) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return b.read(f.Name, rc)
}

// OpenTarGz reads every regular file of a gzip-compressed tar archive.
func OpenTarGz(data []byte, limit int) (Container, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer gz.Close()

	s := newSections()
	b := newBudget(limit)
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		payload, err := b.read(hdr.Name, tr)
		if errors.Is(err, ErrTooLarge) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrCorrupt, hdr.Name, err)
		}
		s.add(hdr.Name, payload)
	}
	return s, nil
}
