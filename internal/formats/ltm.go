package formats

import (
	"strconv"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/extract"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

const (
	ltmConfig = "config.ini"
	ltmInputs = "inputs"

	errMissingConfig = "missing config"
)

type ltmParser struct{}

func init() {
	registry.Default.Register(registry.Descriptor{
		Extension: "ltm",
		Open:      container.OpenTarGz,
		Parser:    ltmParser{},
	})
}

func (ltmParser) Parse(c container.Container) result.Result {
	b := result.NewBuilder("ltm")
	b.SetSystem(result.Linux)

	raw, hasConfig := c.Section(ltmConfig)
	if !hasConfig {
		b.Error(errMissingConfig)
	}
	cfg := extract.ParseHeader(raw, '=')

	frames := -1
	if log, ok := c.Section(ltmInputs); ok {
		frames = extract.CountFrames(log, extract.LinePrefix('|'))
		b.SetFrames(frames)
	} else {
		b.Error(result.ErrMissingInputLog)
	}

	if !hasConfig {
		return b.Build()
	}

	if declared := cfg.Counter("frame_count"); declared.Status == extract.CounterValid && frames >= 0 && declared.Value != frames {
		b.Warn(result.WarnFrameCountMismatch)
	}
	extract.ApplyRerecords(b, cfg.Counter("rerecord_count"))

	num, errNum := strconv.ParseUint(cfg.GetStr("framerate_num"), 10, 32)
	den, errDen := strconv.ParseUint(cfg.GetStr("framerate_den"), 10, 32)
	if errNum == nil && errDen == nil && num > 0 && den > 0 {
		b.SetFrameRate(float64(num) / float64(den))
	}
	return b.Build()
}
