package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/tasmovie/parser/internal/result"
)

// CounterStatus classifies the outcome of reading an optional numeric field.
type CounterStatus int

const (
	CounterMissing CounterStatus = iota
	CounterEmpty
	CounterInvalid
	CounterValid
)

func (s CounterStatus) String() string {
	switch s {
	case CounterMissing:
		return "missing"
	case CounterEmpty:
		return "empty"
	case CounterInvalid:
		return "invalid"
	case CounterValid:
		return "valid"
	}
	return "unknown"
}

// Counter is a parsed optional counter. Value is only non-zero when Status is CounterValid.
type Counter struct {
	Status CounterStatus
	Value  int
}

// ParseCounter reads a non-negative decimal counter. present reports whether
// the field exists at all; surrounding whitespace is ignored. Values that do
// not fit an unsigned 32-bit integer are invalid, since no emulator stores more.
func ParseCounter(text string, present bool) Counter {
	if !present {
		return Counter{Status: CounterMissing}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Counter{Status: CounterEmpty}
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil || n > math.MaxInt32 {
		return Counter{Status: CounterInvalid}
	}
	return Counter{Status: CounterValid, Value: int(n)}
}

// Warning returns the rerecord warning for the counter's status, or "" when valid.
func (c Counter) Warning() string {
	switch c.Status {
	case CounterMissing:
		return result.WarnNoRerecords
	case CounterEmpty:
		return result.WarnEmptyRerecords
	case CounterInvalid:
		return result.WarnInvalidRerecords
	}
	return ""
}

// ApplyRerecords records the counter on b, warning and defaulting to zero
// unless the counter is valid.
func ApplyRerecords(b *result.Builder, c Counter) {
	if w := c.Warning(); w != "" {
		b.Warn(w)
		b.SetRerecords(0)
		return
	}
	b.SetRerecords(c.Value)
}
