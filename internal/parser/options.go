package parser

import (
	"log/slog"

	"github.com/tasmovie/parser/internal/registry"
)

// DefaultMaxFileSize bounds a single movie upload.
const DefaultMaxFileSize = 64 << 20

// Options configures the parser behavior.
type Options struct {
	// MaxParallel is the max number of files parsed at once by ParseFiles (0 = default).
	MaxParallel int
	// MaxFileSize rejects larger inputs, and archives whose decompressed
	// entries add up to more, with a fatal result error (0 = DefaultMaxFileSize).
	MaxFileSize int
	// Registry resolves formats; nil means registry.Default.
	Registry *registry.Registry
	// Logger receives per-file debug records; nil means logger.Default.
	Logger *slog.Logger
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		MaxParallel: 0, // use runtime.NumCPU in parser
		MaxFileSize: DefaultMaxFileSize,
	}
}
