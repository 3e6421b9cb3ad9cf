package mdtable

import (
	"strings"
	"unicode/utf8"
)

// HeaderLine returns the header row without a trailing newline.
func (t *Table) HeaderLine() string {
	var sb strings.Builder
	sb.WriteString("|")
	for c, col := range t.cols {
		label := col[0]
		sb.WriteString(spaces(t.padding))
		sb.WriteString(label)
		sb.WriteString(spaces(t.widths[c] - utf8.RuneCountInString(label) + t.padding))
		sb.WriteString("|")
	}
	return sb.String()
}

// SeparatorLine returns the row of dashes and alignment markers that sits
// between the header and the body. Each cell starts with one space less than
// the header's leading padding; the marker layout makes up the difference.
func (t *Table) SeparatorLine() string {
	var sb strings.Builder
	sb.WriteString("|")
	for c, width := range t.widths {
		sb.WriteString(spaces(t.padding - 1))
		switch t.align(c) {
		case AlignRight:
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat("-", width))
			sb.WriteString(":")
			sb.WriteString(spaces(t.padding - 1))
		case AlignCenter:
			sb.WriteString(":-")
			sb.WriteString(strings.Repeat("-", max(width-1, 0)))
			sb.WriteString(":")
			sb.WriteString(spaces(t.padding - 1))
		default:
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat("-", width))
			sb.WriteString(spaces(t.padding))
		}
		sb.WriteString("|")
	}
	return sb.String()
}

func (t *Table) bodyLine(row int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for c, col := range t.cols {
		cell := col[row]
		sb.WriteString(spaces(t.padding))
		sb.WriteString(cell)
		sb.WriteString(spaces(t.widths[c] - utf8.RuneCountInString(cell) + t.padding - 1))
		sb.WriteString(" |")
	}
	return sb.String()
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
