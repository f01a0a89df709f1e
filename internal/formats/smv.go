package formats

import (
	"bytes"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

var smvSignature = []byte{'S', 'M', 'V', 0x1A}

const (
	smvOptReset = 1 << 0
	smvOptPAL   = 1 << 1
)

type smvParser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "smv",
		Open:      container.OpenFlat,
		Parser:    smvParser{},
	})
}

func (smvParser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("smv")
	b.SetSystem(result.SNES)

	raw, ok := c.Section(container.Raw)
	if !ok {
		b.Error(result.ErrMissingInputLog)
		return b.Build()
	}

	r := newHeaderReader(raw)
	sig := r.bytes(4)
	version := r.u32()
	r.skip(4) // uid
	rerecords := r.u32()
	frames := r.u32()
	r.skip(1) // controller mask
	opts := r.u8()
	if r.err != nil {
		b.Error(result.ErrTruncatedHeader)
		return b.Build()
	}
	if !bytes.Equal(sig, smvSignature) {
		b.Error(result.ErrBadSignature)
		return b.Build()
	}

	switch version {
	case 1, 4, 5:
	default:
		b.Error(unsupportedVersion(version))
		return b.Build()
	}

	b.SetFrames(int(frames))
	b.SetRerecords(int(rerecords))
	if opts&smvOptPAL != 0 {
		b.SetRegion(result.PAL)
	}
	if opts&smvOptReset == 0 {
		b.SetStartType(result.Savestate)
	}
	return b.Build()
}
