package formats

import (
	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

type dsmParser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "dsm",
		Open:      container.OpenFlat,
		Parser:    dsmParser{},
	})
}

func (dsmParser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("dsm")
	b.SetSystem(result.DS)
	parsePipeText(c, b)
	return b.Build()
}
