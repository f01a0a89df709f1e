package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasmovie/parser/internal/result"
)

func TestParseCounter(t *testing.T) {
	tests := []struct {
		text    string
		present bool
		want    Counter
	}{
		{"", false, Counter{Status: CounterMissing}},
		{"12", false, Counter{Status: CounterMissing}},
		{"", true, Counter{Status: CounterEmpty}},
		{" \t\r\n", true, Counter{Status: CounterEmpty}},
		{"abc", true, Counter{Status: CounterInvalid}},
		{"12abc", true, Counter{Status: CounterInvalid}},
		{"-1", true, Counter{Status: CounterInvalid}},
		{"1.5", true, Counter{Status: CounterInvalid}},
		{"99999999999", true, Counter{Status: CounterInvalid}},
		{"2147483648", true, Counter{Status: CounterInvalid}},
		{"0", true, Counter{Status: CounterValid, Value: 0}},
		{" 1\n", true, Counter{Status: CounterValid, Value: 1}},
		{"2147483647", true, Counter{Status: CounterValid, Value: 2147483647}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCounter(tt.text, tt.present), "%q present=%v", tt.text, tt.present)
	}
}

func TestCounterWarning(t *testing.T) {
	assert.Equal(t, result.WarnNoRerecords, Counter{Status: CounterMissing}.Warning())
	assert.Equal(t, result.WarnEmptyRerecords, Counter{Status: CounterEmpty}.Warning())
	assert.Equal(t, result.WarnInvalidRerecords, Counter{Status: CounterInvalid}.Warning())
	assert.Equal(t, "", Counter{Status: CounterValid, Value: 3}.Warning())
	assert.Equal(t, "invalid", CounterInvalid.String())
}

func TestApplyRerecords(t *testing.T) {
	b := result.NewBuilder("x")
	ApplyRerecords(b, Counter{Status: CounterValid, Value: 9})
	r := b.Build()
	assert.Equal(t, 9, r.RerecordCount)
	assert.Empty(t, r.Warnings)

	b = result.NewBuilder("x")
	ApplyRerecords(b, Counter{Status: CounterEmpty})
	r = b.Build()
	assert.Equal(t, 0, r.RerecordCount)
	assert.Equal(t, []string{result.WarnEmptyRerecords}, r.Warnings)
	assert.True(t, r.Success)
}

func TestCountFrames(t *testing.T) {
	pipe := LinePrefix('|')
	tests := []struct {
		name string
		log  string
		want int
	}{
		{"empty", "", 0},
		{"no trailing newline", "|a|\n|b|", 2},
		{"crlf", "|a|\r\n|b|\r\n", 2},
		{"header lines ignored", "version 3\n|a|\nrerecordCount 1\n|b|\n", 2},
		{"blank lines", "\n\n|a|\n\n", 1},
		{"indented lines are not records", " |a|\n|b|\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountFrames([]byte(tt.log), pipe))
		})
	}
}

func TestCountFrames_SubFrames(t *testing.T) {
	log := "F. 0|....\n. 0|....\n. 0|....\nF. 0|....\n. 0|....\n"
	assert.Equal(t, 2, CountFrames([]byte(log), LinePrefix('F')))
	assert.Equal(t, 0, CountFrames([]byte(". 0|....\n. 0|....\n"), LinePrefix('F')))
}

func TestCountFrames_LongLines(t *testing.T) {
	line := "|" + strings.Repeat(".", 200_000) + "|\n"
	assert.Equal(t, 3, CountFrames([]byte(strings.Repeat(line, 3)), LinePrefix('|')))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "snes_ntsc", FirstLine([]byte("snes_ntsc\nignored\n")))
	assert.Equal(t, "bsx", FirstLine([]byte("  bsx \r\n")))
	assert.Equal(t, "", FirstLine(nil))
}

func TestParseHeader(t *testing.T) {
	h := ParseHeader([]byte("version 3\r\nrerecordCount 42\npalFlag 1\ncomment first comment\ncomment second\nFDS\n|0|....|\nrerecordCount 7\n"), ' ')
	assert.Equal(t, "3", h.GetStr("version"))
	assert.Equal(t, "42", h.GetStr("RERECORDCOUNT"))
	assert.Equal(t, "first comment", h.GetStr("comment"))
	assert.True(t, h.Bool("palflag"))
	assert.True(t, h.Has("FDS"))
	assert.False(t, h.Bool("FDS"))
	assert.False(t, h.Has("missing"))
	assert.Equal(t, Counter{Status: CounterValid, Value: 42}, h.Counter("rerecordCount"))
	assert.Equal(t, Counter{Status: CounterMissing}, h.Counter("nope"))
}

func TestParseHeader_INI(t *testing.T) {
	h := ParseHeader([]byte("[General]\nframe_count = 120\nauthors=a, b\nnot a pair\n"), '=')
	assert.Equal(t, "120", h.GetStr("frame_count"))
	assert.Equal(t, "a, b", h.GetStr("authors"))
	assert.False(t, h.Has("not a pair"))
	assert.False(t, h.Has("[general]"))
}
