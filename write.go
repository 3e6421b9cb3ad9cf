package mdtable

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// WriteMode selects how [Table.Save] treats an existing file.
type WriteMode string

const (
	Overwrite       WriteMode = "overwrite"
	OverwriteCreate WriteMode = "overwrite-create"
	Append          WriteMode = "append"
	AppendCreate    WriteMode = "append-create"
)

var writeModeAliases = map[string]WriteMode{
	"overwrite":        Overwrite,
	"overwrite-create": OverwriteCreate,
	"append":           Append,
	"append-create":    AppendCreate,
	"w":                Overwrite,
	"w+":               OverwriteCreate,
	"a":                Append,
	"a+":               AppendCreate,
}

// ParseWriteMode accepts the mode names and the short forms w, w+, a, a+.
func ParseWriteMode(s string) (WriteMode, error) {
	if m, ok := writeModeAliases[s]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown write mode %q", ErrInvalidConfig, s)
}

// String returns the mode name.
func (m WriteMode) String() string { return string(m) }

func (m WriteMode) appends() bool {
	return m == Append || m == AppendCreate
}

// Save renders the table as Markdown and writes it to path. Every mode
// creates a missing file. Overwrite modes replace the file atomically; append
// modes add the table after any existing content.
func (t *Table) Save(path string, mode WriteMode) error {
	return t.SaveAs(path, mode, Markdown)
}

// SaveAs is [Table.Save] with an explicit output format. Nothing is written
// when mode or f is invalid.
func (t *Table) SaveAs(path string, mode WriteMode, f Format) error {
	mode, err := ParseWriteMode(string(mode))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Write(&buf, f); err != nil {
		return err
	}
	if mode.appends() {
		return appendFile(path, buf.Bytes())
	}
	return replaceFile(path, &buf)
}

// replaceFile writes data to path atomically. atomic.WriteFile keeps the mode
// of an existing target but leaves a new one at 0600, so a missing target is
// created first with the same mode appendFile would give it.
func replaceFile(path string, data *bytes.Buffer) error {
	created, err := createFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err := atomic.WriteFile(path, data); err != nil {
		if created {
			_ = os.Remove(path)
		}
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

// createFile creates an empty file at path unless one already exists.
func createFile(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, f.Close()
}

func appendFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
