package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCtxLoggingAddsRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &Logger{Logger: zap.New(core)}

	ctx := context.WithValue(context.Background(), RequestIdKey, "req-1")
	ctx = WithAccountID(ctx, 42)
	l.InfoCtx(ctx, "request", zap.String("path", "/login"))
	l.WarnCtx(context.Background(), "bare")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]interface{}{
		"request_id": "req-1",
		"account_id": int64(42),
		"path":       "/login",
	}, entries[0].ContextMap())
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Empty(t, entries[1].ContextMap())
}
