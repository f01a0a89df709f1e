package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasmovie/parser/internal/result"
)

const bk2InputSample = `[Input]
LogKey:#Reset|Power|#P1 Up|P1 Down|P1 Left|P1 Right|P1 Start|P1 Select|P1 B|P1 A|
|..|........|
|..|.......A|
|..|...R...A|
|..|........|
[/Input]
`

func bk2Entries(header string) map[string]string {
	return map[string]string{
		"Header.txt":        header,
		"Input Log.txt":     bk2InputSample,
		"SyncSettings.json": "{}",
	}
}

func TestBk2(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		system   result.SystemCode
		region   result.Region
		start    result.StartType
		errors   []string
		warnings []string
	}{
		{name: "nes", header: "MovieVersion BizHawk v2.0.0\nPlatform NES\nrerecordCount 9\n", system: result.NES, region: result.NTSC, start: result.PowerOn},
		{name: "case insensitive keys", header: "platform snes\nRerecordCount 9\npal True\n", system: result.SNES, region: result.PAL, start: result.PowerOn},
		{name: "gbc mode", header: "Platform GB\nIsCGBMode 1\nrerecordCount 9\n", system: result.GBC, region: result.NTSC, start: result.PowerOn},
		{name: "sgb mode", header: "Platform GB\nIsSGBMode True\nrerecordCount 9\n", system: result.SGB, region: result.NTSC, start: result.PowerOn},
		{name: "savestate", header: "Platform GEN\nrerecordCount 9\nStartsFromSavestate True\n", system: result.Genesis, region: result.NTSC, start: result.Savestate},
		{name: "saveram", header: "Platform N64\nrerecordCount 9\nStartsFromSaveRam True\n", system: result.N64, region: result.NTSC, start: result.Sram},
		{name: "missing platform", header: "rerecordCount 9\n", region: result.NTSC, start: result.PowerOn,
			errors: []string{errMissingPlatform}},
		{name: "unknown platform", header: "Platform Dreamcast\nrerecordCount 9\n", region: result.NTSC, start: result.PowerOn,
			errors: []string{"unsupported platform: Dreamcast"}},
		{name: "no rerecords", header: "Platform NES\n", system: result.NES, region: result.NTSC, start: result.PowerOn,
			warnings: []string{result.WarnNoRerecords}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bk2Parser{}.Parse(zipOf(t, bk2Entries(tt.header)))
			assertConsistent(t, r)
			assert.Equal(t, tt.system, r.SystemCode)
			assert.Equal(t, tt.region, r.Region)
			assert.Equal(t, tt.start, r.StartType)
			assert.Equal(t, 4, r.Frames)
			assert.Equal(t, tt.errors, r.Errors)
			assert.Equal(t, tt.warnings, r.Warnings)
		})
	}
}

func TestBk2_MissingSections(t *testing.T) {
	entries := bk2Entries("Platform NES\nrerecordCount 3\n")
	delete(entries, "Input Log.txt")
	r := bk2Parser{}.Parse(zipOf(t, entries))
	assert.False(t, r.Success)
	assert.Equal(t, []string{result.ErrMissingInputLog}, r.Errors)
	assert.Equal(t, 3, r.RerecordCount)

	entries = bk2Entries("")
	delete(entries, "Header.txt")
	r = bk2Parser{}.Parse(zipOf(t, entries))
	assert.False(t, r.Success)
	assert.Equal(t, []string{result.ErrMissingHeader}, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 4, r.Frames)
}
