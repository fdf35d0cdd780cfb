package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.loadout.dev/loadout/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("selection added")
	log.Warn("resolver degraded")
	log.Error(errors.New("download failed"))

	out := buf.String()
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "selection added") {
		t.Errorf("Expected info line, got: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "resolver degraded") {
		t.Errorf("Expected warn line, got: %q", out)
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "download failed") {
		t.Errorf("Expected error line, got: %q", out)
	}
}
