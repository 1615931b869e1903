package rstgen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ruleChars maps header levels to their underline characters. Levels
// 1-3 additionally get an overline.
var ruleChars = map[int]string{
	1: "=",
	2: "-",
	3: "~",
	4: "=",
	5: "-",
	6: "~",
}

// Header renders text as a section header of the given level (1-6)
// and returns it as a string. Levels 1-3 produce an overline, the
// title, and an underline; levels 4-6 produce the title and an
// underline only. The block ends with a blank line. A level outside
// 1-6 returns an error wrapping [ErrInvalidLevel].
func Header(level int, text string) (string, error) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, level, text); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHeader renders a section header to w. See [Header].
func WriteHeader(w io.Writer, level int, text string) error {
	ch, ok := ruleChars[level]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	rule := strings.Repeat(ch, runewidth.StringWidth(text))
	var sb strings.Builder
	if level <= 3 {
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString(text)
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
