package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanoutHandler(t *testing.T) {
	t.Parallel()

	var debugBuf, warnBuf bytes.Buffer

	handler := newFanoutHandler([]slog.Handler{
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	})

	log := slog.New(NewErrorAnnotationHandler(handler)).With("algorithm", "bubble")

	log.Debug("sorting", "error", AnnotateError(errTest, "index", 4))
	log.Warn("slow sort")

	assert.Equal(t, 2, bytes.Count(debugBuf.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(warnBuf.Bytes(), []byte("\n")))
	assert.Contains(t, debugBuf.String(), `"index":4`)
	assert.Contains(t, warnBuf.String(), `"algorithm":"bubble"`)

	rec := decode(t, &warnBuf)
	require.Equal(t, "slow sort", rec["msg"])
}

func TestFanoutSingleHandlerIsUnwrapped(t *testing.T) {
	t.Parallel()

	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	assert.Same(t, inner, newFanoutHandler([]slog.Handler{inner}))
}
