package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil))), &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"info", func(l *SlogLogger) { l.Info(ctx, "msg", "k", "v") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(ctx, "msg", "k", "v") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(ctx, "msg", "k", "v") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := capture(t)
			tt.log(l)
			m := lastLine(t, buf)
			assert.Equal(t, tt.level, m["level"])
			assert.Equal(t, "msg", m["msg"])
			assert.Equal(t, "v", m["k"])
		})
	}
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := capture(t)
	child := l.With("component", "gateway")
	child.Info(context.Background(), "hello")

	m := lastLine(t, buf)
	assert.Equal(t, "gateway", m["component"])
}

func TestNewDiscard(t *testing.T) {
	l := NewDiscard()
	// must not panic
	l.Info(context.Background(), "dropped")
	l.Error(context.Background(), "dropped too")
}
