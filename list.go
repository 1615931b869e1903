package rstgen

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ul renders items as a bullet list with the "-" marker.
//
// If any item contains a paragraph break (a double newline), the whole
// list switches to expanded mode: every entry is preceded by a blank
// line. Otherwise entries follow each other directly.
func Ul(items []string) string {
	return BulletList("-", items)
}

// Ol renders items as an ordered list. It is a bullet list with the
// auto-enumerating "#." marker; numbering is left to the consuming
// reStructuredText processor.
func Ol(items []string) string {
	return BulletList("#.", items)
}

// BulletList renders items with an arbitrary bullet marker.
// Continuation lines of multi-line items are indented so that their
// text lines up under the first line, not under the marker. An empty
// item slice produces an empty string.
func BulletList(bullet string, items []string) string {
	expanded := false
	for _, item := range items {
		if strings.Contains(item, "\n\n") {
			expanded = true
			break
		}
	}

	innersep := "\n" + strings.Repeat(" ", runewidth.StringWidth(bullet)+1)
	var sb strings.Builder
	for _, item := range items {
		if expanded {
			sb.WriteString("\n")
		}
		sb.WriteString(bullet)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(splitLines(item), innersep))
		sb.WriteString("\n")
	}
	return sb.String()
}
