package rstgen

import (
	"fmt"
	"reflect"
	"strings"
)

// AttrTable renders a table showing the named fields of each object.
// cols is a space-separated list of exported struct field names; the
// field names become the header row. Objects may be structs or
// pointers to structs. A name that does not resolve to an exported
// field on some object returns an error wrapping [ErrUnknownField].
func AttrTable(rows []any, cols string) (string, error) {
	return AttrTableOf(rows, strings.Fields(cols))
}

// AttrTableOf is [AttrTable] with a pre-split column list.
func AttrTableOf(rows []any, cols []string) (string, error) {
	headers := make([]any, len(cols))
	for i, name := range cols {
		headers[i] = name
	}
	cells := make([][]any, 0, len(rows))
	for _, obj := range rows {
		rv := reflect.Indirect(reflect.ValueOf(obj))
		row := make([]any, len(cols))
		for i, name := range cols {
			if rv.Kind() != reflect.Struct {
				return "", fmt.Errorf("%w: %q on %T", ErrUnknownField, name, obj)
			}
			f := rv.FieldByName(name)
			if !f.IsValid() || !f.CanInterface() {
				return "", fmt.Errorf("%w: %q on %T", ErrUnknownField, name, obj)
			}
			row[i] = f.Interface()
		}
		cells = append(cells, row)
	}
	return Table(headers, cells)
}
