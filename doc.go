// Package rstgen generates reStructuredText fragments: tables, bullet
// and ordered lists, section headers, and toctree directives.
//
// The central entry points are [Table] and [WriteTable], which accept
// a header row and data rows of arbitrary values and render an aligned
// text table. Rendering is a pure, synchronous transform: all state is
// built fresh per call, so concurrent renders are safe by
// construction.
//
// # Tables
//
// Every data row must have exactly as many cells as the header row;
// a mismatch returns an error wrapping [ErrRowLength]. Cell values are
// converted to strings through a formatting hook (override it with
// [FormatValue]) and column widths grow to fit the widest line seen in
// each column, measured in display columns.
//
// A table renders in one of two layouts. While no cell contains an
// embedded newline the simple layout is used:
//
//	=== ===
//	 A   B
//	=== ===
//	 x   y
//	=== ===
//
// As soon as any cell (header or data) contains a newline, the whole
// table switches to the grid layout, where every row carries its own
// border and multi-line cells span several physical lines:
//
//	+-------+
//	| H     |
//	+=======+
//	| line1 |
//	| line2 |
//	+-------+
//
// [Table] with zero data rows returns exactly "\n"; [WriteTable] still
// writes the header-only block.
//
// Use [AttrTable] to tabulate named struct fields of a slice of
// objects without building rows by hand.
//
// # Lists
//
// [Ul] and [Ol] render bullet and ordered lists. Continuation lines of
// a multi-line item are indented under the item's text. If any item
// contains a paragraph break (double newline), the whole list renders
// in expanded mode with a blank line before each entry.
//
// # Headers and directives
//
// [Header] and [WriteHeader] render section headers for levels 1-6
// (overline plus underline for 1-3, underline only for 4-6). [Toctree]
// builds a toctree directive and [BoldHeader] a bold stand-in title.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrRowLength] — a data row's length disagrees with the header
//   - [ErrInvalidLevel] — header level outside 1-6
//   - [ErrUnknownField] — [AttrTable] column naming no exported field
//
// All of them indicate caller bugs rather than recoverable runtime
// conditions.
package rstgen
