package result

// Fatal problem messages shared by several formats.
const (
	ErrMissingInputLog = "missing input log"
	ErrMissingGameType = "missing game type"
	ErrMissingHeader   = "missing header"
	ErrTruncatedHeader = "truncated header"
	ErrBadSignature    = "invalid signature"
	ErrFileTooLarge    = "file too large"
)

// Advisory problem messages shared by several formats.
const (
	WarnInvalidGameType    = "invalid/empty game type"
	WarnDefaultedRegion    = "defaulted region"
	WarnNoRerecords        = "no rerecord entry"
	WarnEmptyRerecords     = "empty rerecord entry"
	WarnInvalidRerecords   = "invalid rerecord entry"
	WarnFrameCountMismatch = "frame count mismatch"
)

// Builder accumulates the outcome of a single parse call.
// The zero value is not usable; create one with NewBuilder.
type Builder struct {
	res      Result
	errors   []string
	warnings []string
}

// NewBuilder returns a builder for a movie of the given file extension.
func NewBuilder(ext string) *Builder {
	return &Builder{res: Result{
		FileExtension: ext,
		Region:        NTSC,
		StartType:     PowerOn,
	}}
}

// Error records a fatal problem.
func (b *Builder) Error(msg string) { b.errors = append(b.errors, msg) }

// Warn records an advisory problem.
func (b *Builder) Warn(msg string) { b.warnings = append(b.warnings, msg) }

// Failed reports whether any fatal problem has been recorded so far.
func (b *Builder) Failed() bool { return len(b.errors) > 0 }

func (b *Builder) SetSystem(code SystemCode) { b.res.SystemCode = code }

func (b *Builder) SetRegion(r Region) { b.res.Region = r }

// SetSystemRegion sets both fields at once, as game type tokens usually imply both.
func (b *Builder) SetSystemRegion(code SystemCode, r Region) {
	b.res.SystemCode = code
	b.res.Region = r
}

// SetFrames sets the frame count; negative values are clamped to zero.
func (b *Builder) SetFrames(n int) {
	if n < 0 {
		n = 0
	}
	b.res.Frames = n
}

// SetRerecords sets the rerecord count; negative values are clamped to zero.
func (b *Builder) SetRerecords(n int) {
	if n < 0 {
		n = 0
	}
	b.res.RerecordCount = n
}

func (b *Builder) SetStartType(t StartType) { b.res.StartType = t }

func (b *Builder) SetFrameRate(fps float64) {
	b.res.FrameRateOverride = &fps
}

// Build returns the accumulated result. The returned value shares no memory
// with the builder, so the builder may be discarded or reused.
func (b *Builder) Build() Result {
	out := b.res
	out.Success = len(b.errors) == 0
	if len(b.errors) > 0 {
		out.Errors = append([]string(nil), b.errors...)
	}
	if len(b.warnings) > 0 {
		out.Warnings = append([]string(nil), b.warnings...)
	}
	if b.res.FrameRateOverride != nil {
		fps := *b.res.FrameRateOverride
		out.FrameRateOverride = &fps
	}
	return out
}
