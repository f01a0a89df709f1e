// Package formats holds one parser per supported movie format. Each format
// registers itself with registry.Default from init, so importing this
// package for side effects makes every format resolvable.
package formats

import (
	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/extract"
	"github.com/tasmovie/parser/internal/result"
)

func has(c container.Container, name string) bool {
	_, ok := c.Section(name)
	return ok
}

// parsePipeText covers the FCEUX family of flat text movies: a key/value
// header followed by one '|'-prefixed line per frame. It returns the header
// so the caller can read format-specific keys; ok is false when the file has
// no content section at all.
func parsePipeText(c container.Container, b *result.Builder) (h extract.Header, ok bool) {
	raw, ok := c.Section(container.Raw)
	if !ok {
		b.Error(result.ErrMissingInputLog)
		return extract.Header{}, false
	}
	h = extract.ParseHeader(raw, ' ')
	b.SetFrames(extract.CountFrames(raw, extract.LinePrefix('|')))
	extract.ApplyRerecords(b, h.Counter("rerecordCount"))
	if h.Has("savestate") {
		b.SetStartType(result.Savestate)
	}
	return h, true
}
