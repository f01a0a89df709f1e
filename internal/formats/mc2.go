package formats

import (
	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

type mc2Parser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "mc2",
		Open:      container.OpenFlat,
		Parser:    mc2Parser{},
	})
}

func (mc2Parser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("mc2")
	b.SetSystem(result.PCE)
	if h, ok := parsePipeText(c, b); ok && h.Bool("pcecd") {
		b.SetSystem(result.PCECD)
	}
	return b.Build()
}
