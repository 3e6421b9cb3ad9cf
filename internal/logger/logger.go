// Package logger builds the structured logger used by the mdtable command and
// carries it through a context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

const (
	CommandKey   = "command"
	VersionKey   = "version"
	InputKey     = "input"
	OutputKey    = "output"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

// Levels passed to New. Debug enables logr V(1) records.
const (
	LevelInfo  int8 = 0
	LevelDebug int8 = -1
)

// New returns a logr.Logger backed by a JSON zap core writing to w.
// level is a zapcore.Level value.
func New(level int8, w io.Writer) logr.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(zapcore.Level(level)),
	)
	zl := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return zapr.NewLogger(zl)
}

// WithLogger returns a copy of ctx carrying lgr.
func WithLogger(ctx context.Context, lgr logr.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, lgr)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	if lgr, ok := ctx.Value(loggerContextKey{}).(logr.Logger); ok {
		return lgr
	}
	return logr.Discard()
}

// Sync flushes buffered entries when lgr is backed by zap.
func Sync(lgr logr.Logger) {
	u, ok := lgr.GetSink().(zapr.Underlier)
	if !ok {
		return
	}
	if err := u.GetUnderlying().Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError reports errors returned when syncing pipes and TTYs.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
