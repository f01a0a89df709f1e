package formats

import (
	"bytes"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

var vbmSignature = []byte{'V', 'B', 'M', 0x1A}

// Start and system flag bits of the VBM header.
const (
	vbmStartSavestate = 1 << 0
	vbmStartSram      = 1 << 1

	vbmSystemGBA = 1 << 0
	vbmSystemGBC = 1 << 1
	vbmSystemSGB = 1 << 2
)

type vbmParser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "vbm",
		Open:      container.OpenFlat,
		Parser:    vbmParser{},
	})
}

func (vbmParser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("vbm")

	raw, ok := c.Section(container.Raw)
	if !ok {
		b.Error(result.ErrMissingInputLog)
		return b.Build()
	}

	r := newHeaderReader(raw)
	sig := r.bytes(4)
	version := r.u32()
	r.skip(4) // uid
	frames := r.u32()
	rerecords := r.u32()
	start := r.u8()
	r.skip(1) // controller flags
	system := r.u8()
	if r.err != nil {
		b.Error(result.ErrTruncatedHeader)
		return b.Build()
	}
	if !bytes.Equal(sig, vbmSignature) {
		b.Error(result.ErrBadSignature)
		return b.Build()
	}
	if version != 1 {
		b.Error(unsupportedVersion(version))
		return b.Build()
	}

	switch {
	case system&vbmSystemGBA != 0:
		b.SetSystem(result.GBA)
	case system&vbmSystemGBC != 0:
		b.SetSystem(result.GBC)
	case system&vbmSystemSGB != 0:
		b.SetSystem(result.SGB)
	default:
		b.SetSystem(result.GameBoy)
	}

	switch {
	case start&vbmStartSavestate != 0:
		b.SetStartType(result.Savestate)
	case start&vbmStartSram != 0:
		b.SetStartType(result.Sram)
	}

	b.SetFrames(int(frames))
	b.SetRerecords(int(rerecords))
	return b.Build()
}
