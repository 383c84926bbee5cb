package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nickyhof/gadwall/core"
)

// NullToken is the terminal text of a NULL cell.
const NullToken = "(NULL)"

// EmptyMarker is printed in place of rows when a result is empty.
const EmptyMarker = "(0 rows)"

// Table collects a result and writes it as a framed text table
type Table struct {
	writer  io.Writer
	charset *Charset
	columns []core.ColumnDescriptor
	rows    [][]core.Value
}

// NewTable creates a new table writer using the given frame style
func NewTable(w io.Writer, cs *Charset) *Table {
	if cs == nil {
		cs = DefaultStyle
	}
	return &Table{
		writer:  w,
		charset: cs,
		rows:    make([][]core.Value, 0),
	}
}

// Header sets the column metadata
func (t *Table) Header(columns []core.ColumnDescriptor) {
	t.columns = columns
}

// Row adds a single row
func (t *Table) Row(row []core.Value) {
	t.rows = append(t.rows, row)
}

// Bulk adds multiple rows
func (t *Table) Bulk(rows [][]core.Value) {
	for _, row := range rows {
		t.Row(row)
	}
}

// Render writes rs to w framed with cs.
func Render(w io.Writer, rs core.ResultSet, cs *Charset) {
	t := NewTable(w, cs)
	t.Header(rs.Columns)
	t.Bulk(rs.Rows)
	t.Render()
}

// Render outputs the formatted table
func (t *Table) Render() {
	if len(t.columns) == 0 {
		return
	}

	widths, right := Layout(t.columns, t.rows)
	cs := t.charset

	fmt.Fprintln(t.writer, cs.top(widths))

	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	fmt.Fprintln(t.writer, t.formatRow(names, widths, right))

	if len(t.rows) == 0 {
		fmt.Fprintln(t.writer, cs.head(widths))
		fmt.Fprintln(t.writer, EmptyMarker)
		fmt.Fprintln(t.writer, cs.bottom(widths))
		return
	}

	separator := cs.head(widths)
	for _, row := range t.rows {
		fmt.Fprintln(t.writer, separator)
		fmt.Fprintln(t.writer, t.formatRow(cells(row, len(t.columns)), widths, right))

		// Once the head separator has been drawn, every following one is a body separator.
		if first, _ := firstRune(separator); first == cs.HeadLeft {
			separator = cs.body(widths)
		}
	}

	fmt.Fprintln(t.writer, cs.bottom(widths))
}

// Layout computes the display width and alignment of every column. A width
// is never smaller than the column name or any rendered value.
func Layout(columns []core.ColumnDescriptor, rows [][]core.Value) (widths []int, right []bool) {
	widths = make([]int, len(columns))
	right = make([]bool, len(columns))

	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c.Name)
		right[i] = c.Numeric
	}

	for _, row := range rows {
		for i, v := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(v.Display(NullToken)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths, right
}

// LineWidth is the display width of every line of a table with the given
// column widths: two outer bars, the columns, and one bar between each pair.
func LineWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := 2 + len(widths) - 1
	for _, w := range widths {
		total += w
	}
	return total
}

// formatRow pads each cell to its column width according to alignment
func (t *Table) formatRow(row []string, widths []int, right []bool) string {
	var sb strings.Builder
	sb.WriteRune(t.charset.Vertical)
	for i, w := range widths {
		if i > 0 {
			sb.WriteRune(t.charset.InnerVertical)
		}
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", max(0, w-runewidth.StringWidth(cell)))
		if right[i] {
			sb.WriteString(pad + cell)
		} else {
			sb.WriteString(cell + pad)
		}
	}
	sb.WriteRune(t.charset.Vertical)
	return sb.String()
}

func cells(row []core.Value, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(row) {
			out[i] = row[i].Display(NullToken)
		}
	}
	return out
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
