package cli

import (
	"strings"
)

// Table lays out rows under headers with columns padded to the widest cell.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats the table with a dashed separator under the headers.
// Trailing spaces are trimmed from every line.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	var sb strings.Builder
	gap := strings.Repeat(" ", t.padding)
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		sb.WriteString("\n")
	}

	writeLine(t.headers)
	writeLine(sep)
	for _, row := range t.rows {
		writeLine(row)
	}
	return sb.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
