package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/result"
)

// ErrUnsupportedFormat is returned by Resolve when no format claims a file's extension.
var ErrUnsupportedFormat = errors.New("unsupported movie format")

// Parser is the interface each movie format must implement.
type Parser interface {
	Parse(c container.Container) result.Result
}

// Descriptor ties a file extension to the container layout and parser for it.
type Descriptor struct {
	// Extension is the canonical extension without the leading dot (e.g. "lsmv").
	Extension string
	// Aliases are additional extensions handled by the same parser.
	Aliases []string
	Open    container.Opener
	Parser  Parser
}

// Default is the global format registry.
var Default = New()

// Registry maps lowercased file extensions to format descriptors.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Descriptor
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{formats: make(map[string]Descriptor)}
}

// Register adds a descriptor under its extension and aliases. Registering
// an extension twice is a programming error and panics.
func (r *Registry) Register(d Descriptor) {
	if d.Extension == "" || d.Open == nil || d.Parser == nil {
		panic("registry: incomplete descriptor for " + d.Extension)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range append([]string{d.Extension}, d.Aliases...) {
		ext = normalize(ext)
		if _, dup := r.formats[ext]; dup {
			panic("registry: format registered twice: " + ext)
		}
		r.formats[ext] = d
	}
}

// Resolve returns the descriptor for filename's extension (case-insensitive).
func (r *Registry) Resolve(filename string) (Descriptor, error) {
	ext := normalize(filepath.Ext(filename))
	if ext == "" {
		return Descriptor{}, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, filename)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.formats[ext]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
	return d, nil
}

// Extensions returns every registered extension, aliases included, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.formats))
	for e := range r.formats {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}

// Without returns a copy of r that no longer resolves the given extensions.
// Disabling a canonical extension also disables its aliases.
func (r *Registry) Without(exts ...string) *Registry {
	drop := make(map[string]bool, len(exts))
	for _, e := range exts {
		drop[normalize(e)] = true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := New()
	for ext, d := range r.formats {
		if drop[ext] || drop[normalize(d.Extension)] {
			continue
		}
		out.formats[ext] = d
	}
	return out
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
