package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr := New(LevelInfo, &buf)
	lgr.Info("rendered", "rows", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry[MessageKey])
	assert.EqualValues(t, 2, entry["rows"])
	assert.Contains(t, entry, TimeStampKey)
}

func TestNewInfoSuppressesDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr := New(LevelInfo, &buf)
	lgr.V(1).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNewDebugEmitsV1(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr := New(LevelDebug, &buf)
	lgr.V(1).Info("shown")
	assert.Contains(t, buf.String(), `"shown"`)
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr := New(LevelInfo, &buf).WithValues(CommandKey, "mdtable")
	ctx := WithLogger(context.Background(), lgr)

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), `"command":"mdtable"`)
}

func TestFromContextDefaultsToDiscard(t *testing.T) {
	t.Parallel()
	lgr := FromContext(context.Background())
	assert.Nil(t, lgr.GetSink())
}

func TestSyncNonZapLogger(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { Sync(logr.Discard()) })
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  error
		want bool
	}{
		"enotty":         {err: syscall.ENOTTY, want: true},
		"einval":         {err: syscall.EINVAL, want: true},
		"windows handle": {err: errors.New("sync /dev/stderr: The handle is invalid."), want: true},
		"other":          {err: errors.New("disk full"), want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isIgnorableSyncError(tt.err))
		})
	}
}
