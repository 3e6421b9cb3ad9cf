package mdtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Dialect describes how records are delimited and quoted.
type Dialect struct {
	Delimiter rune
	Quote     rune
	// Escape makes the following character literal. Zero disables escaping.
	Escape rune
}

// DefaultDialect returns comma-delimited, double-quoted records with no
// escape character.
func DefaultDialect() Dialect {
	return Dialect{Delimiter: ',', Quote: '"'}
}

// ParseDialect builds a dialect from single-character strings. escape may be
// empty.
func ParseDialect(delimiter, quote, escape string) (Dialect, error) {
	var d Dialect
	var err error
	if d.Delimiter, err = singleRune("delimiter", delimiter); err != nil {
		return Dialect{}, err
	}
	if d.Quote, err = singleRune("quotechar", quote); err != nil {
		return Dialect{}, err
	}
	if escape != "" {
		if d.Escape, err = singleRune("escapechar", escape); err != nil {
			return Dialect{}, err
		}
	}
	if err := d.validate(); err != nil {
		return Dialect{}, err
	}
	return d, nil
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func (d Dialect) validate() error {
	bad := func(r rune) bool { return r == 0 || r == '\r' || r == '\n' || r == utf8.RuneError }
	switch {
	case bad(d.Delimiter):
		return fmt.Errorf("%w: invalid delimiter %q", ErrInvalidConfig, d.Delimiter)
	case bad(d.Quote):
		return fmt.Errorf("%w: invalid quotechar %q", ErrInvalidConfig, d.Quote)
	case d.Escape != 0 && bad(d.Escape):
		return fmt.Errorf("%w: invalid escapechar %q", ErrInvalidConfig, d.Escape)
	case d.Delimiter == d.Quote:
		return fmt.Errorf("%w: delimiter and quotechar must differ", ErrInvalidConfig)
	case d.Escape != 0 && (d.Escape == d.Delimiter || d.Escape == d.Quote):
		return fmt.Errorf("%w: escapechar must differ from delimiter and quotechar", ErrInvalidConfig)
	}
	return nil
}

// standard reports whether encoding/csv can read the dialect as is.
func (d Dialect) standard() bool {
	return d.Quote == '"' && d.Escape == 0
}

// Read parses r into [Columns]. The first record is the header; every later
// record must have the same number of cells. Blank lines are skipped; Python's
// csv module instead yields an empty record for them, which fails the cell
// count check.
//
// Quotes are lenient, much like Python's non-strict csv reader. A quote inside
// an unquoted field is kept as text, and so is a quote inside a quoted field
// that is not followed by a delimiter or line end.
func Read(r io.Reader, d Dialect) (Columns, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	var rows [][]string
	var err error
	if d.standard() {
		rows, err = readCSV(r, d.Delimiter)
	} else {
		rows, err = newScanner(r, d).readAll()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return FromRows(rows)
}

// ReadFile opens path and parses it with [Read].
func ReadFile(path string, d Dialect) (cols Columns, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrInput, cerr)
		}
	}()
	return Read(f, d)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = 0
	cr.LazyQuotes = true
	var rows [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
}
