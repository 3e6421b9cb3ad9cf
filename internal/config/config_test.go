package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/mdtable"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	three := 3
	want := File{Aligns: "l,r", Padding: &three, Delimiter: ";", WriteMode: "append"}
	tests := map[string]struct {
		name    string
		content string
	}{
		"yaml": {
			name:    "mdtable.yaml",
			content: "aligns: l,r\npadding: 3\ndelimiter: \";\"\nwritemode: append\n",
		},
		"yml": {
			name:    "mdtable.yml",
			content: "aligns: l,r\npadding: 3\ndelimiter: \";\"\nwritemode: append\n",
		},
		"toml": {
			name:    "mdtable.toml",
			content: "aligns = \"l,r\"\npadding = 3\ndelimiter = \";\"\nwritemode = \"append\"\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(writeFile(t, tt.name, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	t.Parallel()
	got, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, File{}, got)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name    string
		content string
	}{
		"unknown yaml key": {name: "c.yaml", content: "colour: red\n"},
		"unknown toml key": {name: "c.toml", content: "colour = \"red\"\n"},
		"bad extension":    {name: "c.json", content: "{}"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeFile(t, tt.name, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, mdtable.ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValues(t *testing.T) {
	t.Parallel()
	one := 1
	f := File{Aligns: "c", Padding: &one, EscapeChar: "\\", Format: "html"}
	assert.Equal(t, map[string]string{
		"aligns":     "c",
		"padding":    "1",
		"escapechar": "\\",
		"format":     "html",
	}, f.Values())
	assert.Empty(t, File{}.Values())
}
