package formats

import (
	"bytes"
	"fmt"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// headerReader reads fixed little-endian movie headers. The first read error
// sticks; later reads return zero values so a parser can read the whole
// layout and check err once.
type headerReader struct {
	ks  *kaitai.Stream
	err error
}

func newHeaderReader(data []byte) *headerReader {
	return &headerReader{ks: kaitai.NewStream(bytes.NewReader(data))}
}

func (r *headerReader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	b, err := r.ks.ReadBytes(n)
	if err != nil {
		r.err = err
		return nil
	}
	return b
}

func (r *headerReader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.ks.ReadU1()
	if err != nil {
		r.err = err
	}
	return v
}

func (r *headerReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.ks.ReadU4le()
	if err != nil {
		r.err = err
	}
	return v
}

// skip advances n bytes.
func (r *headerReader) skip(n int) {
	r.bytes(n)
}

func unsupportedVersion(v any) string {
	return fmt.Sprintf("unsupported version: %v", v)
}
