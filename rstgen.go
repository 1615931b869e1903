package rstgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrRowLength    = errors.New("row length mismatch")
	ErrInvalidLevel = errors.New("invalid header level")
	ErrUnknownField = errors.New("unknown field")
)

// A TableOption configures a single table render call.
type TableOption func(*table)

// ShowHeaders controls whether the header row is rendered.
// Default: true.
func ShowHeaders(show bool) TableOption {
	return func(t *table) { t.showHeaders = show }
}

// FormatValue overrides the value-to-string conversion used for header
// and data cells alike. The default renders strings as-is, calls
// String on [fmt.Stringer] values, and falls back to %v.
func FormatValue(fn func(any) string) TableOption {
	return func(t *table) { t.format = fn }
}

// Table renders headers and rows as a reStructuredText table and
// returns it as a string. Every row must have exactly len(headers)
// cells; a mismatch returns an error wrapping [ErrRowLength].
//
// With zero rows the result is exactly "\n": headers are never shown
// for empty data, regardless of [ShowHeaders].
func Table(headers []any, rows [][]any, opts ...TableOption) (string, error) {
	if len(rows) == 0 {
		return "\n", nil
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, headers, rows, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTable renders headers and rows as a reStructuredText table,
// writing line by line to w. Unlike [Table] it does not short-circuit
// on zero rows: a header-only block is still written. Writes are
// append-only as rendering proceeds; w is not rewound on error.
func WriteTable(w io.Writer, headers []any, rows [][]any, opts ...TableOption) error {
	return newTable(headers, opts...).write(w, rows)
}

// formatValue is the default cell conversion.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", v)
}
