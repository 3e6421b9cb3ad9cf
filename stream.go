package mdtable

import (
	"bytes"
	"io"
	"iter"
	"strings"
)

// BodyLines yields one line per data row in original order. The sequence
// holds no state of its own and can be ranged over any number of times.
func (t *Table) BodyLines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for row := 1; row < len(t.cols[0]); row++ {
			if !yield(t.bodyLine(row)) {
				return
			}
		}
	}
}

// Lines yields the header line, the separator line, and then every body line.
// Lines carry no trailing newline.
func (t *Table) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(t.HeaderLine()) {
			return
		}
		if !yield(t.SeparatorLine()) {
			return
		}
		for line := range t.BodyLines() {
			if !yield(line) {
				return
			}
		}
	}
}

// Render collects [Table.Lines] into a slice.
func (t *Table) Render() []string {
	lines := make([]string, 0, t.NumRows()+2)
	for line := range t.Lines() {
		lines = append(lines, line)
	}
	return lines
}

// String returns the full table with every line newline-terminated.
func (t *Table) String() string {
	var sb strings.Builder
	for line := range t.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the full table to w. It implements [io.WriterTo].
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for line := range t.Lines() {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}
