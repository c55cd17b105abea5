package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler_FanOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(handler)
	logger.Info("fan out", "key", "value")

	if !strings.Contains(a.String(), "fan out") {
		t.Errorf("text handler missing record: %q", a.String())
	}
	if !strings.Contains(b.String(), "fan out") {
		t.Errorf("json handler missing record: %q", b.String())
	}
}

func TestMultiHandler_PerHandlerLevels(t *testing.T) {
	var verbose, quiet bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(handler)
	logger.Debug("detail")

	if !strings.Contains(verbose.String(), "detail") {
		t.Errorf("debug handler should receive the record: %q", verbose.String())
	}
	if quiet.Len() != 0 {
		t.Errorf("error-level handler should filter the record: %q", quiet.String())
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	handler := NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	ctx := context.Background()
	if !handler.Enabled(ctx, slog.LevelDebug) {
		t.Error("Enabled should be true when any handler is enabled")
	}

	strict := NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	if strict.Enabled(ctx, slog.LevelInfo) {
		t.Error("Enabled should be false when no handler is enabled")
	}
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(handler).With("component", "mover")
	logger.Info("attached")

	if !strings.Contains(buf.String(), "component=mover") {
		t.Errorf("attribute lost through WithAttrs: %q", buf.String())
	}
}
