package formats

import (
	"strings"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/extract"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

// lsnes archive entry names.
const (
	lsmvInput     = "input"
	lsmvGameType  = "gametype"
	lsmvRerecords = "rerecords"
	lsmvSavestate = "savestate"
	lsmvSramPfx   = "moviesram"
)

type systemRegion struct {
	system result.SystemCode
	region result.Region
}

// lsmvGameTypes is keyed by the normalized token (lowercase, no underscores).
var lsmvGameTypes = map[string]systemRegion{
	"snesntsc":    {result.SNES, result.NTSC},
	"snespal":     {result.SNES, result.PAL},
	"bsx":         {result.SNES, result.NTSC},
	"bsxslotted":  {result.SNES, result.NTSC},
	"sufamiturbo": {result.SNES, result.NTSC},
	"sgbntsc":     {result.SGB, result.NTSC},
	"sgbpal":      {result.SGB, result.PAL},
	"gdmg":        {result.GameBoy, result.NTSC},
	"ggbc":        {result.GBC, result.NTSC},
	"ggbca":       {result.GBC, result.NTSC},
}

type lsmvParser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "lsmv",
		Open:      container.OpenZip,
		Parser:    lsmvParser{},
	})
}

func (lsmvParser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("lsmv")

	if log, ok := c.Section(lsmvInput); ok {
		// Lines flagged 'F' start a new frame; the rest are sub-frame polls.
		b.SetFrames(extract.CountFrames(log, extract.LinePrefix('F')))
	} else {
		b.Error(result.ErrMissingInputLog)
	}

	if gt, ok := c.Section(lsmvGameType); ok {
		if sr, known := lsmvGameTypes[normalizeToken(extract.FirstLine(gt))]; known {
			b.SetSystemRegion(sr.system, sr.region)
		} else {
			b.Warn(result.WarnInvalidGameType)
			b.Warn(result.WarnDefaultedRegion)
			b.SetSystemRegion(result.SNES, result.NTSC)
		}
	} else {
		b.Error(result.ErrMissingGameType)
	}

	rr, ok := c.Section(lsmvRerecords)
	extract.ApplyRerecords(b, extract.ParseCounter(string(rr), ok))

	switch {
	case has(c, lsmvSavestate):
		b.SetStartType(result.Savestate)
	case container.HasPrefix(c, lsmvSramPfx):
		b.SetStartType(result.Sram)
	}

	return b.Build()
}

func normalizeToken(tok string) string {
	return strings.ToLower(strings.ReplaceAll(tok, "_", ""))
}
