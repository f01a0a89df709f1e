package formats

import (
	"strings"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/extract"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

const (
	bk2Header   = "Header.txt"
	bk2InputLog = "Input Log.txt"

	errMissingPlatform = "missing platform"
)

// bk2Platforms maps BizHawk platform ids (lowercased) to system codes.
var bk2Platforms = map[string]result.SystemCode{
	"nes":        result.NES,
	"snes":       result.SNES,
	"gb":         result.GameBoy,
	"gbl":        result.GameBoy,
	"gbc":        result.GBC,
	"gba":        result.GBA,
	"sgb":        result.SGB,
	"gen":        result.Genesis,
	"32x":        result.Sega32X,
	"sms":        result.SMS,
	"gg":         result.GameGear,
	"sg":         result.SG1000,
	"pce":        result.PCE,
	"pcecd":      result.PCECD,
	"n64":        result.N64,
	"psx":        result.PSX,
	"sat":        result.Saturn,
	"nds":        result.DS,
	"lynx":       result.Lynx,
	"wswan":      result.WonderSwan,
	"ngp":        result.NeoGeoPocket,
	"a26":        result.Atari2600,
	"a78":        result.Atari7800,
	"coleco":     result.Coleco,
	"intv":       result.Intellivision,
	"c64":        result.C64,
	"zxspectrum": result.ZXSpectrum,
	"appleii":    result.AppleII,
	"vb":         result.VirtualBoy,
	"msx":        result.MSX,
	"3do":        result.ThreeDO,
	"ti83":       result.TI83,
	"o2":         result.Odyssey2,
	"channelf":   result.ChannelF,
	"vec":        result.Vectrex,
}

type bk2Parser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "bk2",
		Open:      container.OpenZip,
		Parser:    bk2Parser{},
	})
}

func (bk2Parser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("bk2")

	raw, ok := c.Section(bk2Header)
	if !ok {
		b.Error(result.ErrMissingHeader)
	}
	h := extract.ParseHeader(raw, ' ')

	if ok {
		platform, present := h.Get("Platform")
		system, known := bk2Platforms[strings.ToLower(platform)]
		switch {
		case !present || platform == "":
			b.Error(errMissingPlatform)
		case !known:
			b.Error("unsupported platform: " + platform)
		default:
			if system == result.GameBoy {
				if h.Bool("IsSGBMode") {
					system = result.SGB
				} else if h.Bool("IsCGBMode") {
					system = result.GBC
				}
			}
			b.SetSystem(system)
		}
		if h.Bool("PAL") {
			b.SetRegion(result.PAL)
		}
		extract.ApplyRerecords(b, h.Counter("rerecordCount"))
		switch {
		case h.Bool("StartsFromSavestate"):
			b.SetStartType(result.Savestate)
		case h.Bool("StartsFromSaveRam"):
			b.SetStartType(result.Sram)
		}
	}

	if log, ok := c.Section(bk2InputLog); ok {
		b.SetFrames(extract.CountFrames(log, extract.LinePrefix('|')))
	} else {
		b.Error(result.ErrMissingInputLog)
	}

	return b.Build()
}
