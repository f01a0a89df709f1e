// Package container exposes the named sections of a movie file, whether the
// file is an archive (zip, tar.gz) or a flat text/binary stream.
package container

import (
	"errors"
	"sort"
	"strings"
)

// Raw is the name of the single section of a flat container.
const Raw = "raw"

var (
	// ErrCorrupt is wrapped by openers when the archive structure cannot be read.
	ErrCorrupt = errors.New("corrupt archive")
	// ErrTooLarge is wrapped by openers when the decoded sections exceed the
	// size limit.
	ErrTooLarge = errors.New("contents too large")
)

// Container gives access to the sections of one opened movie file.
type Container interface {
	// Section returns the payload of the named section, or false if the
	// file has no such section.
	Section(name string) ([]byte, bool)
	// Names returns the section names in sorted order.
	Names() []string
	// Close releases the sections. A closed container has no sections.
	Close() error
}

// Opener opens raw file bytes as a Container. The total size of the decoded
// sections may not exceed limit bytes; limit <= 0 means no limit.
type Opener func(data []byte, limit int) (Container, error)

// sections is the in-memory Container shared by every opener.
type sections struct {
	entries map[string][]byte
	// nested marks entries that came from a subdirectory of the archive.
	nested map[string]bool
}

func newSections() *sections {
	return &sections{
		entries: make(map[string][]byte),
		nested:  make(map[string]bool),
	}
}

// add stores an entry under its base name. Both '/' and '\' separate path
// elements. A root-level entry replaces a nested one of the same name;
// otherwise the first entry with a given name wins.
func (s *sections) add(name string, data []byte) {
	name = strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "./")
	nested := false
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
		nested = true
	}
	if name == "" {
		return
	}
	if _, dup := s.entries[name]; dup && (nested || !s.nested[name]) {
		return
	}
	if data == nil {
		data = []byte{}
	}
	s.entries[name] = data
	s.nested[name] = nested
}

func (s *sections) Section(name string) ([]byte, bool) {
	data, ok := s.entries[name]
	return data, ok
}

func (s *sections) Names() []string {
	names := make([]string, 0, len(s.entries))
	for n := range s.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s *sections) Close() error {
	s.entries = nil
	s.nested = nil
	return nil
}

// HasPrefix reports whether c has a section whose name starts with prefix.
func HasPrefix(c Container, prefix string) bool {
	for _, n := range c.Names() {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}
