package argvio

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	var out, errb bytes.Buffer
	m := New().WithOut(&out).WithErr(&errb).NoColor()
	return NewLogger(m), &out, &errb
}

func TestLoggerFormats(t *testing.T) {
	tests := []struct {
		name   string
		format LogFormat
		log    func(*Logger)
		want   string
	}{
		{"symbols info", LogFormatSymbols, func(l *Logger) { l.Info("hello %d", 1) }, "◆ hello 1\n"},
		{"symbols debug", LogFormatSymbols, func(l *Logger) { l.Debug("trace") }, "● trace\n"},
		{"tagged success", LogFormatTagged, func(l *Logger) { l.Success("done") }, "[SUCCESS] done\n"},
		{"plain", LogFormatPlain, func(l *Logger) { l.Info("bare") }, "bare\n"},
		{"blank passes through", LogFormatTagged, func(l *Logger) { l.Info("  ") }, "  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger(t)
			l.WithFormat(tt.format)
			tt.log(l)
			if out.String() != tt.want {
				t.Fatalf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestLoggerErrorsToStderr(t *testing.T) {
	l, out, errb := newTestLogger(t)
	l.WithFormat(LogFormatTagged)
	l.Warning("careful")
	l.Error("boom")
	if out.Len() != 0 {
		t.Fatalf("stdout got %q", out.String())
	}
	if errb.String() != "[WARN] careful\n[ERROR] boom\n" {
		t.Fatalf("stderr got %q", errb.String())
	}

	l.ErrorsToStderr(false).Error("again")
	if out.String() != "[ERROR] again\n" {
		t.Fatalf("stdout got %q", out.String())
	}
}

func TestLoggerLevelAndTimestamp(t *testing.T) {
	l, out, _ := newTestLogger(t)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	l.WithFormat(LogFormatTagged).WithTimestamp(true).WithLevel(LevelInfo)

	l.Debug("hidden")
	l.Info("shown")
	if out.String() != "[INFO] [03:04:05] shown\n" {
		t.Fatalf("got %q", out.String())
	}

	out.Reset()
	l.WithFormat(LogFormatPlain).WithTimeFormat("15:04")
	l.Info("x")
	if out.String() != "03:04 x\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestLoggerColor(t *testing.T) {
	l, out, _ := newTestLogger(t)
	l.io.ForceColor()
	l.Info("c")
	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected ANSI output, got %q", out.String())
	}
	l.SetPrefix(LevelInfo, ">>")
	out.Reset()
	l.io.NoColor()
	l.Info("p")
	if out.String() != ">> p\n" {
		t.Fatalf("got %q", out.String())
	}
}
