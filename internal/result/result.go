package result

// SystemCode identifies the console a movie targets.
type SystemCode string

const (
	SystemUnknown SystemCode = ""
	NES           SystemCode = "NES"
	FDS           SystemCode = "FDS"
	SNES          SystemCode = "SNES"
	SGB           SystemCode = "SGB"
	GameBoy       SystemCode = "GB"
	GBC           SystemCode = "GBC"
	GBA           SystemCode = "GBA"
	Genesis       SystemCode = "Genesis"
	Sega32X       SystemCode = "32X"
	SMS           SystemCode = "SMS"
	GameGear      SystemCode = "GG"
	SG1000        SystemCode = "SG1000"
	PCE           SystemCode = "PCE"
	PCECD         SystemCode = "PCECD"
	N64           SystemCode = "N64"
	PSX           SystemCode = "PSX"
	Saturn        SystemCode = "Saturn"
	DS            SystemCode = "DS"
	Lynx          SystemCode = "Lynx"
	WonderSwan    SystemCode = "WSWAN"
	NeoGeoPocket  SystemCode = "NGP"
	Atari2600     SystemCode = "A2600"
	Atari7800     SystemCode = "A7800"
	Coleco        SystemCode = "Coleco"
	Intellivision SystemCode = "INTV"
	C64           SystemCode = "C64"
	ZXSpectrum    SystemCode = "ZXS"
	AppleII       SystemCode = "Apple2"
	VirtualBoy    SystemCode = "VBoy"
	MSX           SystemCode = "MSX"
	ThreeDO       SystemCode = "3DO"
	TI83          SystemCode = "TI83"
	Odyssey2      SystemCode = "Odyssey2"
	ChannelF      SystemCode = "ChannelF"
	Vectrex       SystemCode = "Vectrex"
	Linux         SystemCode = "Linux"
)

// Region is the broadcast standard a movie was recorded for.
type Region string

const (
	NTSC Region = "NTSC"
	PAL  Region = "PAL"
)

// StartType describes the console state a movie begins from.
type StartType string

const (
	PowerOn   StartType = "power_on"
	Sram      StartType = "sram"
	Savestate StartType = "savestate"
)

// Result is the normalized metadata extracted from one movie file.
// Build one with a Builder; a Result is not modified after Build returns it.
type Result struct {
	Success           bool       `json:"success"`
	FileExtension     string     `json:"file_extension"`
	SystemCode        SystemCode `json:"system_code"`
	Region            Region     `json:"region"`
	Frames            int        `json:"frames"`
	RerecordCount     int        `json:"rerecord_count"`
	StartType         StartType  `json:"start_type"`
	FrameRateOverride *float64   `json:"frame_rate_override,omitempty"`
	Errors            []string   `json:"errors,omitempty"`
	Warnings          []string   `json:"warnings,omitempty"`
}

// Failed returns a result carrying a single fatal error, for problems found
// before any format parser ran (unreadable archive, oversized upload).
func Failed(ext, msg string) Result {
	b := NewBuilder(ext)
	b.Error(msg)
	return b.Build()
}
