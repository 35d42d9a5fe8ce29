package visibility

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("Expected the default logger to discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := Compute([]Segment{Seg(1, 1, 1, 1), Seg(0, 5, 5, 5)}, Pt(0, 0)); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "skipping degenerate segment") {
		t.Errorf("Expected a log line for the degenerate segment, got %q", out)
	}
	if !strings.Contains(out, "visibility polygon computed") || !strings.Contains(out, "segments=2") {
		t.Errorf("Expected a summary log line, got %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("Expected SetLogger(nil) to restore the silent logger")
	}
}
