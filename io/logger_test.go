package snapio

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	return NewLogger(m), &out, &errOut
}

func TestLoggerRouting(t *testing.T) {
	log, out, errOut := newTestLogger()

	log.Info("hello %s", "world")
	log.Success("done")
	log.Warning("careful")
	log.Error("broken: %d", 7)

	if got := out.String(); got != "[INFO] hello world\n[SUCCESS] done\n" {
		t.Errorf("Unexpected stdout: %q", got)
	}
	if got := errOut.String(); got != "[WARN] careful\n[ERROR] broken: 7\n" {
		t.Errorf("Unexpected stderr: %q", got)
	}
}

func TestLoggerLevel(t *testing.T) {
	log, out, _ := newTestLogger()

	log.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("Expected debug to be suppressed, got %q", out.String())
	}

	log.SetLevel(LevelDebug)
	log.Debug("shown")
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Errorf("Expected debug output, got %q", out.String())
	}
}

func TestLoggerFormats(t *testing.T) {
	log, out, _ := newTestLogger()
	log.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	log.WithFormat(LogFormatPlain).Info("plain")
	log.WithFormat(LogFormatSymbols).Success("sym")
	log.WithFormat(LogFormatTagged).WithTimestamp(true).Info("stamped")
	log.Info("   ")

	want := "plain\n✓ sym\n[INFO] [03:04:05] stamped\n   \n"
	if got := out.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoggerTimeFormat(t *testing.T) {
	log, _, errOut := newTestLogger()
	log.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	log.WithTimestamp(true).WithTimeFormat(time.RFC3339).Error("late")
	if got, want := errOut.String(), "[ERROR] [2024-01-02T03:04:05Z] late\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoggerTheme(t *testing.T) {
	var out bytes.Buffer
	theme := DefaultTheme()
	theme.Info = ColorCyan
	theme.Success = ""
	log := NewLogger(New().WithOut(&out).ForceColor()).WithTheme(theme)

	log.Info("hi")
	log.Success("plain")
	if got, want := out.String(), "\x1b[36m[INFO] hi\x1b[0m\n[SUCCESS] plain\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLoggerErrorsToStdout(t *testing.T) {
	log, out, errOut := newTestLogger()
	log.ErrorsToStderr(false).Error("x")
	if errOut.Len() != 0 || out.String() != "[ERROR] x\n" {
		t.Errorf("Expected error on stdout, got out=%q err=%q", out.String(), errOut.String())
	}
}

func TestLoggerColor(t *testing.T) {
	var out bytes.Buffer
	m := New().WithOut(&out).ForceColor()
	NewLogger(m).Info("hi")

	if got := out.String(); got != "\x1b[34m[INFO] hi\x1b[0m\n" {
		t.Errorf("Unexpected coloured output: %q", got)
	}
}

func TestIOManagerColorDetection(t *testing.T) {
	var buf bytes.Buffer
	m := New().WithOut(&buf)

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	if m.SupportsColor() {
		t.Error("Expected no colour for a non-terminal writer")
	}

	t.Setenv("FORCE_COLOR", "1")
	if !m.SupportsColor() {
		t.Error("Expected FORCE_COLOR to enable colour")
	}

	t.Setenv("NO_COLOR", "1")
	if m.SupportsColor() {
		t.Error("Expected NO_COLOR to win over FORCE_COLOR")
	}

	if !m.ForceColor().SupportsColor() {
		t.Error("Expected explicit ForceColor to win over environment")
	}
	if got := m.Bold("b"); got != "\x1b[1mb\x1b[0m" {
		t.Errorf("Unexpected bold output %q", got)
	}
	if got := m.NoColor().Faint("f"); got != "f" {
		t.Errorf("Expected uncoloured text, got %q", got)
	}
}
