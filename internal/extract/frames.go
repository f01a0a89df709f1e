package extract

import "bytes"

// LineMatcher reports whether a log line starts a top-level frame record.
type LineMatcher func(line []byte) bool

// LinePrefix matches lines that begin with c. Text input logs mark each
// polled frame with a leading byte ('|' for FCEUX-style logs, 'F' for lsnes);
// sub-frame lines carry a different lead byte and are not matched.
func LinePrefix(c byte) LineMatcher {
	return func(line []byte) bool {
		return len(line) > 0 && line[0] == c
	}
}

// CountFrames counts the lines of log accepted by isFrame. Both "\n" and
// "\r\n" terminators are accepted and lines may be of any length.
func CountFrames(log []byte, isFrame LineMatcher) int {
	n := 0
	for len(log) > 0 {
		var line []byte
		if i := bytes.IndexByte(log, '\n'); i >= 0 {
			line, log = log[:i], log[i+1:]
		} else {
			line, log = log, nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if isFrame(line) {
			n++
		}
	}
	return n
}

// FirstLine returns the first line of text without its terminator and
// surrounding whitespace.
func FirstLine(text []byte) string {
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return string(bytes.TrimSpace(text))
}
