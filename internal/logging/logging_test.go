package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
}

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{Level: level, Output: &buf, Prefix: "vedit"})
	l.now = fixedClock
	return l, &buf
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{" info ", LevelInfo, true},
		{"", LevelInfo, true},
		{"Warning", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLogFormat(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.Info("opened %s", "notes.txt")

	want := "2024-05-01T12:30:00.000 [INFO] vedit: opened notes.txt\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("messages below the level were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] vedit: w") || !strings.Contains(out, "[ERROR] vedit: e") {
		t.Errorf("missing messages: %q", out)
	}
}

func TestFieldsSorted(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	l.WithComponent("rewrite").WithField("job", "abc").Info("done")

	if got := buf.String(); !strings.HasSuffix(got, "done {component=rewrite, job=abc}\n") {
		t.Errorf("got %q", got)
	}
}

func TestDerivedLoggerSharesLevel(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	child := l.WithField("k", 1)
	l.SetLevel(LevelError)
	child.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("derived logger should follow the parent's level, got %q", buf.String())
	}
	if !child.Enabled(LevelError) || child.Enabled(LevelWarn) {
		t.Error("Enabled does not match the level")
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	_ = l.WithField("k", "v")
	l.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Error("parent logger gained a child's field")
	}
}

func TestNull(t *testing.T) {
	l := Null()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Null logger should not enable any level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "vedit.log")
	l, err := OpenFile(path, LevelDebug, "")
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hello")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	l.Debug("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); !strings.Contains(got, "[DEBUG] hello") || strings.Contains(got, "after close") {
		t.Errorf("file content = %q", got)
	}
}
