package formats

import (
	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

const errBinaryFm2 = "binary input log not supported"

type fm2Parser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "fm2",
		Open:      container.OpenFlat,
		Parser:    fm2Parser{},
	})
}

func (fm2Parser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("fm2")
	b.SetSystem(result.NES)

	h, ok := parsePipeText(c, b)
	if !ok {
		return b.Build()
	}
	if h.Bool("binary") {
		b.Error(errBinaryFm2)
		b.SetFrames(0)
	}
	if h.Bool("FDS") {
		b.SetSystem(result.FDS)
	}
	if h.Bool("palFlag") {
		b.SetRegion(result.PAL)
	}
	return b.Build()
}
