package typstplot

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return a nopHandler")
	}
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	defer SetLogger(nil)

	SetLogger(nil)
	if _, ok := logger().Handler().(nopHandler); !ok {
		t.Errorf("after SetLogger(nil), handler = %T, want nopHandler", logger().Handler())
	}
}

func TestLogger_FinalizeDebugEvent(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	var buf bytes.Buffer
	c := NewWithBuffer(&buf, 50, 50)
	if err := c.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}

	if !strings.Contains(logs.String(), "canvas finalized") {
		t.Errorf("expected a finalize debug event, got %q", logs.String())
	}
}
