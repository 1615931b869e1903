package rstgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column accumulates the required width of one table column. Width is
// a running maximum over every line of every cell measured so far; it
// only grows, never shrinks. The sentinel -1 means no line has been
// measured yet.
type column struct {
	index  int
	header string
	width  int
}

func (c *column) adjust(cell string) {
	for _, ln := range splitLines(cell) {
		if w := runewidth.StringWidth(ln); w > c.width {
			c.width = w
		}
	}
}

// table holds the state of a single render call. Instances are built
// fresh per call and discarded afterwards, so concurrent renders never
// share state.
type table struct {
	cols        []*column
	headers     []string
	showHeaders bool
	simple      bool
	format      func(any) string
}

func newTable(headers []any, opts ...TableOption) *table {
	t := &table{
		showHeaders: true,
		simple:      true,
		format:      formatValue,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.headers = make([]string, len(headers))
	t.cols = make([]*column, len(headers))
	for i, h := range headers {
		s := t.format(h)
		t.headers[i] = s
		t.cols[i] = &column{index: i, header: s, width: -1}
	}
	// Headers count as the first measured row.
	for _, c := range t.cols {
		c.adjust(t.headers[c.index])
		if strings.Contains(t.headers[c.index], "\n") {
			t.simple = false
		}
	}
	return t
}

// adjustWidths measures one stringified row. Any embedded newline
// flips the whole table to grid mode; no later row can flip it back.
func (t *table) adjustWidths(row []string) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("%w: row has %d cells, header has %d", ErrRowLength, len(row), len(t.cols))
	}
	for _, c := range t.cols {
		c.adjust(row[c.index])
		if strings.Contains(row[c.index], "\n") {
			t.simple = false
		}
	}
	return nil
}

func (t *table) write(w io.Writer, data [][]any) error {
	rows := make([][]string, len(data))
	for i, row := range data {
		if len(row) != len(t.cols) {
			return fmt.Errorf("%w: row has %d cells, header has %d", ErrRowLength, len(row), len(t.cols))
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = t.format(v)
		}
		rows[i] = cells
	}

	for _, row := range rows {
		if err := t.adjustWidths(row); err != nil {
			return err
		}
	}

	widths := make([]int, len(t.cols))
	for i, c := range t.cols {
		if c.width < 1 {
			c.width = 1
		}
		widths[i] = c.width
	}

	var border, headerSep, margin, colsep string
	if t.simple {
		border = hline(widths, "", "=", " ", "")
		headerSep = border
		margin, colsep = "", " "
	} else {
		border = hline(widths, "+", "-", "+", "+")
		headerSep = hline(widths, "+", "=", "+", "+")
		margin, colsep = "|", "|"
	}

	writeln := func(s string) error {
		_, err := io.WriteString(w, strings.TrimRight(s, " \t")+"\n")
		return err
	}
	writeRow := func(row []string) error {
		for _, ln := range t.formatRow(row, margin, colsep) {
			if err := writeln(ln); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeln(border); err != nil {
		return err
	}
	if t.showHeaders {
		if err := writeRow(t.headers); err != nil {
			return err
		}
		if err := writeln(headerSep); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
		if !t.simple {
			if err := writeln(border); err != nil {
				return err
			}
		}
	}
	if t.simple {
		return writeln(border)
	}
	return nil
}

// formatRow lays out one logical row as physical lines. Multi-line
// cells are split, every sub-line is left-justified to the column
// width, and short columns are padded with blank lines so all columns
// reach the row's maximum line count.
func (t *table) formatRow(row []string, margin, colsep string) []string {
	cells := make([][]string, len(t.cols))
	height := 1
	for i, c := range t.cols {
		var lines []string
		for _, ln := range splitLines(row[i]) {
			lines = append(lines, ljust(ln, c.width))
		}
		cells[i] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}
	for i, c := range t.cols {
		for len(cells[i]) < height {
			cells[i] = append(cells[i], ljust("", c.width))
		}
	}

	out := make([]string, height)
	parts := make([]string, len(t.cols))
	for k := 0; k < height; k++ {
		for i := range t.cols {
			parts[i] = " " + cells[i][k] + " "
		}
		out[k] = margin + strings.Join(parts, colsep) + margin
	}
	return out
}

// hline builds one border line: fill repeated width+2 per column, mid
// at column junctions, left/right at the margins.
func hline(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		sb.WriteString(strings.Repeat(fill, w+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// splitLines splits on "\n" without producing a trailing empty line
// for a final newline. An empty string yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func ljust(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
