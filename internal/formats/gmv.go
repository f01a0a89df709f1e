package formats

import (
	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

const (
	gmvSignature  = "Gens Movie TEST"
	gmvHeaderSize = 64
	gmvFrameSize  = 3

	gmvFlagPAL       = 1 << 6
	gmvFlagSavestate = 1 << 7

	warnPartialFrame = "trailing partial frame"
)

type gmvParser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "gmv",
		Open:      container.OpenFlat,
		Parser:    gmvParser{},
	})
}

func (gmvParser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("gmv")
	b.SetSystem(result.Genesis)

	raw, ok := c.Section(container.Raw)
	if !ok {
		b.Error(result.ErrMissingInputLog)
		return b.Build()
	}

	r := newHeaderReader(raw)
	sig := r.bytes(len(gmvSignature))
	r.skip(1) // version
	rerecords := r.u32()
	r.skip(2) // controller config
	flags := r.u8()
	if r.err != nil || len(raw) < gmvHeaderSize {
		b.Error(result.ErrTruncatedHeader)
		return b.Build()
	}
	if string(sig) != gmvSignature {
		b.Error(result.ErrBadSignature)
		return b.Build()
	}

	input := len(raw) - gmvHeaderSize
	b.SetFrames(input / gmvFrameSize)
	if input%gmvFrameSize != 0 {
		b.Warn(warnPartialFrame)
	}
	b.SetRerecords(int(rerecords))
	if flags&gmvFlagPAL != 0 {
		b.SetRegion(result.PAL)
	}
	if flags&gmvFlagSavestate != 0 {
		b.SetStartType(result.Savestate)
	}
	return b.Build()
}
