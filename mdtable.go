package mdtable

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInput             = errors.New("invalid input")
	ErrOutput            = errors.New("output failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format represents an output format.
type Format string

const (
	Markdown Format = "markdown"
	HTML     Format = "html"
)

var formats = []Format{Markdown, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment is a column alignment tag. It controls the markers written in the
// separator row.
type Alignment string

const (
	AlignLeft   Alignment = "l"
	AlignRight  Alignment = "r"
	AlignCenter Alignment = "c"
)

// Valid reports whether a is one of the known alignment tags.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignRight, AlignCenter:
		return true
	default:
		return false
	}
}

// ParseAligns converts a comma separated list such as "l, R,c" into alignment
// tags. Case and whitespace are ignored. An empty string yields nil, meaning
// no forced alignment. Tags are not validated here; [New] rejects unknown
// tags.
func ParseAligns(s string) []Alignment {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	aligns := make([]Alignment, len(parts))
	for i, p := range parts {
		aligns[i] = Alignment(p)
	}
	return aligns
}

// Config controls how a table is rendered.
type Config struct {
	// Aligns sets one alignment per column. Nil means left for every column.
	Aligns []Alignment
	// Padding is the number of spaces placed around each cell's content.
	// Zero is not supported.
	Padding int
}

// DefaultConfig returns a config with padding 1 and no forced alignment.
func DefaultConfig() Config {
	return Config{Padding: 1}
}

// Columns holds table data column by column. Index 0 of every column is the
// header label; the remaining entries are data cells in row order.
type Columns [][]string

// FromRows transposes row-major records into [Columns]. The first record is
// the header, and every later record must have the same number of cells.
func FromRows(rows [][]string) (Columns, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header record", ErrInput)
	}
	numCols := len(rows[0])
	cols := make(Columns, numCols)
	for c := range cols {
		cols[c] = make([]string, 0, len(rows))
	}
	for i, row := range rows {
		if len(row) != numCols {
			return nil, fmt.Errorf("%w: record %d has %d cells, header has %d", ErrInput, i+1, len(row), numCols)
		}
		for c, cell := range row {
			cols[c] = append(cols[c], cell)
		}
	}
	return cols, nil
}

// Table is a validated, immutable Markdown table. It is safe for concurrent
// use.
type Table struct {
	cols    Columns
	aligns  []Alignment
	padding int
	widths  []int
}

// New validates cfg against cols and returns a table ready to render.
// Configuration problems are reported before any rendering work and wrap
// [ErrInvalidConfig].
func New(cols Columns, cfg Config) (*Table, error) {
	if len(cfg.Aligns) > 0 {
		if cfg.Padding == 0 {
			return nil, fmt.Errorf("%w: alignment markers require non-zero padding", ErrInvalidConfig)
		}
		for _, a := range cfg.Aligns {
			if !a.Valid() {
				return nil, fmt.Errorf("%w: aligns must be 'l', 'r' or 'c' for left, right and center, found %q", ErrInvalidConfig, string(a))
			}
		}
		if len(cfg.Aligns) != len(cols) {
			return nil, fmt.Errorf("%w: alignment is required for every column: there are %d columns, but %d alignments were provided",
				ErrInvalidConfig, len(cols), len(cfg.Aligns))
		}
	}
	if cfg.Padding <= 0 {
		return nil, fmt.Errorf("%w: padding must be positive, got %d", ErrInvalidConfig, cfg.Padding)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: table has no columns", ErrInput)
	}
	for c, col := range cols {
		if len(col) == 0 {
			return nil, fmt.Errorf("%w: column %d has no header", ErrInput, c)
		}
		if len(col) != len(cols[0]) {
			return nil, fmt.Errorf("%w: column %d has %d cells, column 0 has %d", ErrInput, c, len(col), len(cols[0]))
		}
	}

	t := &Table{
		cols:    cloneColumns(cols),
		padding: cfg.Padding,
		widths:  computeWidths(cols),
	}
	if len(cfg.Aligns) > 0 {
		t.aligns = make([]Alignment, len(cfg.Aligns))
		copy(t.aligns, cfg.Aligns)
	}
	return t, nil
}

// FromFile reads path with dialect d and builds a table from it.
func FromFile(path string, d Dialect, cfg Config) (*Table, error) {
	cols, err := ReadFile(path, d)
	if err != nil {
		return nil, err
	}
	return New(cols, cfg)
}

// Write renders the table in format f and writes it to w.
func (t *Table) Write(w io.Writer, f Format) error {
	switch f {
	case Markdown:
		_, err := t.WriteTo(w)
		return err
	case HTML:
		_, err := w.Write(t.HTML())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Widths returns the maximum cell length of each column, header included.
func (t *Table) Widths() []int {
	out := make([]int, len(t.widths))
	copy(out, t.widths)
	return out
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.cols) }

// NumRows returns the number of data rows, excluding the header.
func (t *Table) NumRows() int { return len(t.cols[0]) - 1 }

func (t *Table) align(col int) Alignment {
	if t.aligns == nil {
		return AlignLeft
	}
	return t.aligns[col]
}

// computeWidths counts characters, not display columns.
func computeWidths(cols Columns) []int {
	widths := make([]int, len(cols))
	for c, col := range cols {
		for _, cell := range col {
			if n := utf8.RuneCountInString(cell); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}

func cloneColumns(cols Columns) Columns {
	out := make(Columns, len(cols))
	for c, col := range cols {
		out[c] = make([]string, len(col))
		copy(out[c], col)
	}
	return out
}
