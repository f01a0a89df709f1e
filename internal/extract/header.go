package extract

import (
	"bufio"
	"bytes"
	"strings"
)

// Header holds key/value pairs read from a text movie header. Keys are
// stored lowercased.
type Header map[string]string

// ParseHeader reads "key<sep>value" lines. Lines starting with '|' (input
// records) or '[' (INI section titles) are skipped, as are lines without a
// separator. For separator ' ' a bare key with no value is recorded with an
// empty value. The first occurrence of a key wins.
func ParseHeader(text []byte, sep byte) Header {
	h := make(Header)
	sc := bufio.NewScanner(bytes.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), max(len(text)+1, 64*1024))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '|' || line[0] == '[' {
			continue
		}
		var key, val string
		if i := strings.IndexByte(line, sep); i >= 0 {
			key, val = line[:i], line[i+1:]
		} else if sep == ' ' {
			key = line
		} else {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, seen := h[key]; !seen {
			h[key] = strings.TrimSpace(val)
		}
	}
	return h
}

// Get returns the value for key (case-insensitive).
func (h Header) Get(key string) (string, bool) {
	v, ok := h[strings.ToLower(key)]
	return v, ok
}

// GetStr returns the value for key or "".
func (h Header) GetStr(key string) string {
	v, _ := h.Get(key)
	return v
}

// Has reports whether key is present.
func (h Header) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Bool reports whether key holds a truthy value ("1", "true" or "yes").
func (h Header) Bool(key string) bool {
	switch strings.ToLower(h.GetStr(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Counter parses key with ParseCounter.
func (h Header) Counter(key string) Counter {
	v, ok := h.Get(key)
	return ParseCounter(v, ok)
}
