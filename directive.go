package rstgen

import (
	"fmt"
	"strings"
)

// Attr is a single directive option, rendered as ":name: value".
// Options are passed as an ordered slice because rendering order is
// part of the output.
type Attr struct {
	Name  string
	Value any
}

// Toctree renders a toctree directive with the given options and
// child documents. String values render as ":name: value", a true
// bool renders as a bare ":name:" flag, everything else uses its
// canonical string form.
//
//	Toctree([]string{"a", "b"}, Attr{"maxdepth", 2})
//
// produces "\n\n.. toctree::\n    :maxdepth: 2\n\n    a\n    b\n".
func Toctree(children []string, attrs ...Attr) string {
	var sb strings.Builder
	sb.WriteString("\n\n.. toctree::")
	for _, a := range attrs {
		sb.WriteString("\n    :")
		sb.WriteString(a.Name)
		sb.WriteString(":")
		switch v := a.Value.(type) {
		case string:
			sb.WriteString(" ")
			sb.WriteString(v)
		case bool:
			if !v {
				sb.WriteString(" false")
			}
		default:
			sb.WriteString(" ")
			sb.WriteString(fmt.Sprintf("%v", v))
		}
	}
	sb.WriteString("\n")
	for _, child := range children {
		sb.WriteString("\n    ")
		sb.WriteString(child)
	}
	sb.WriteString("\n")
	return sb.String()
}

// BoldHeader renders title as a bold paragraph surrounded by blank
// lines, a lightweight alternative to a real section header.
func BoldHeader(title string) string {
	return fmt.Sprintf("\n\n**%s**\n\n", strings.TrimSpace(title))
}
