// Package mdtable converts delimited text (CSV and similar) into Markdown
// tables.
//
// Data is read into [Columns], a column-major store whose first entry in each
// column is the header label. [New] validates a [Config] against the columns
// and returns an immutable [Table]:
//
//	cols, err := mdtable.ReadFile("people.csv", mdtable.DefaultDialect())
//	if err != nil { ... }
//	table, err := mdtable.New(cols, mdtable.Config{
//		Aligns:  mdtable.ParseAligns("l,r,c"),
//		Padding: 1,
//	})
//	if err != nil { ... }
//	fmt.Print(table)
//
// # Layout
//
// Every column is as wide as its longest cell, counted in characters.
// Padding spaces surround each cell. The separator row uses the usual
// Markdown markers: dashes for left, a trailing colon for right, and colons
// on both ends for center.
//
// # Reading
//
// [Read] and [ReadFile] take a [Dialect] with the delimiter, quote, and
// optional escape character. The first record is the header and every later
// record must have the same number of cells.
//
// # Output
//
// [Table.Lines] yields the rendered lines lazily, [Table.String] returns the
// whole table, and [Table.Save] writes it to a file using a [WriteMode].
// [Table.HTML] renders the same table as an HTML fragment.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig] — bad alignment, padding, dialect, or write mode
//   - [ErrInput] — unreadable or malformed input
//   - [ErrOutput] — the destination could not be written
//   - [ErrUnsupportedFormat] — unknown output format
package mdtable
