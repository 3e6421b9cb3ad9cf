package mdtable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

var errTrailingEscape = errors.New("escape character at end of input")

// scanner reads records for dialects encoding/csv cannot express: a quote
// character other than '"', or an escape character. Quotes are read the way
// encoding/csv reads them with LazyQuotes set, and errors are reported as
// *csv.ParseError so both read paths behave the same.
type scanner struct {
	r      *bufio.Reader
	d      Dialect
	line   int
	column int
	start  int // first line of the record being read
}

func newScanner(r io.Reader, d Dialect) *scanner {
	return &scanner{r: bufio.NewReader(r), d: d, line: 1}
}

func (s *scanner) readAll() ([][]string, error) {
	var rows [][]string
	for {
		record, err := s.readRecord()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 && len(record) != len(rows[0]) {
			return nil, &csv.ParseError{StartLine: s.start, Line: s.start, Column: 1, Err: csv.ErrFieldCount}
		}
		rows = append(rows, record)
	}
}

func (s *scanner) next() (rune, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return r, nil
}

func (s *scanner) peek(want rune) bool {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return false
	}
	if r == want {
		s.column++
		return true
	}
	_ = s.r.UnreadRune()
	return false
}

// closes reports whether the rune after a quote ends the quoted field.
// Nothing is consumed.
func (s *scanner) closes() bool {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return true
	}
	_ = s.r.UnreadRune()
	return r == s.d.Delimiter || r == '\n' || r == '\r'
}

func (s *scanner) fail(err error) error {
	return &csv.ParseError{StartLine: s.start, Line: s.line, Column: s.column, Err: err}
}

// readRecord returns io.EOF once the input holds no further records.
func (s *scanner) readRecord() ([]string, error) {
	var (
		record     []string
		field      strings.Builder
		started    bool // record has content
		fieldStart = true
		quoted     bool // inside quotes
	)
	s.start = s.line
	endField := func() {
		record = append(record, field.String())
		field.Reset()
		fieldStart = true
	}
	for {
		r, err := s.next()
		if errors.Is(err, io.EOF) {
			// An unterminated quoted field runs to the end of input.
			if !started {
				return nil, io.EOF
			}
			endField()
			return record, nil
		}
		if err != nil {
			return nil, err
		}

		if quoted {
			switch {
			case s.d.Escape != 0 && r == s.d.Escape:
				lit, err := s.next()
				if err != nil {
					return nil, s.fail(errTrailingEscape)
				}
				field.WriteRune(lit)
			case r == s.d.Quote:
				switch {
				case s.peek(s.d.Quote):
					field.WriteRune(r)
				case s.closes():
					quoted = false
				default:
					field.WriteRune(r)
				}
			default:
				field.WriteRune(r)
			}
			continue
		}

		if r == '\r' {
			s.peek('\n')
			s.line++
			s.column = 0
			r = '\n'
		}
		if r == '\n' {
			if !started {
				s.start = s.line
				continue
			}
			endField()
			return record, nil
		}
		started = true

		switch {
		case r == s.d.Delimiter:
			endField()
		case s.d.Escape != 0 && r == s.d.Escape:
			lit, err := s.next()
			if err != nil {
				return nil, s.fail(errTrailingEscape)
			}
			field.WriteRune(lit)
			fieldStart = false
		case r == s.d.Quote && fieldStart:
			quoted, fieldStart = true, false
		default:
			field.WriteRune(r)
			fieldStart = false
		}
	}
}
