package rstgen

import (
	"io"
	"strings"
)

// Indentation returns the number of leading whitespace characters
// (spaces and tabs) of s.
func Indentation(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

// Unindent reduces the indentation of a text block to the minimum
// found on its non-empty lines. Trailing whitespace is stripped first;
// empty lines don't count when computing the minimum.
func Unindent(s string) string {
	s = strings.TrimRight(s, " \t\n")
	lines := splitLines(s)
	if len(lines) == 0 {
		return strings.TrimSpace(s)
	}
	mini := -1
	for _, ln := range lines {
		ln = strings.TrimRight(ln, " \t")
		if len(ln) == 0 {
			continue
		}
		if ind := Indentation(ln); mini < 0 || ind < mini {
			mini = ind
		}
		if mini == 0 {
			break
		}
	}
	if mini <= 0 {
		return s
	}
	for i, ln := range lines {
		if len(ln) >= mini {
			lines[i] = ln[mini:]
		} else {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// PrefixWriter wraps a writer so that every line of every Write call
// is preceded by a newline and the configured prefix. It mirrors the
// behavior of redirecting a line-oriented stream under a fixed margin.
type PrefixWriter struct {
	w      io.Writer
	prefix string
}

// NewPrefixWriter returns a writer that prefixes each line written
// through it with prefix.
func NewPrefixWriter(w io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{w: w, prefix: prefix}
}

func (p *PrefixWriter) Write(b []byte) (int, error) {
	sep := "\n" + p.prefix
	if _, err := io.WriteString(p.w, sep+strings.Join(splitLines(string(b)), sep)); err != nil {
		return 0, err
	}
	return len(b), nil
}
