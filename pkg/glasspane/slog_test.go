package glasspane

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	tests := []struct {
		name string
		log  func()
		want []string
	}{
		{"debug", func() { adapter.Debug("debug message", "key", "value") }, []string{"level=DEBUG", "debug message", "key=value"}},
		{"info", func() { adapter.Info("info message", "count", 42) }, []string{"level=INFO", "count=42"}},
		{"warn", func() { adapter.Warn("warn message") }, []string{"level=WARN", "warn message"}},
		{"error", func() { adapter.Error("error message", "err", "boom") }, []string{"level=ERROR", "err=boom"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output %q does not contain %q", buf.String(), want)
				}
			}
		})
	}
}

func TestNewSlogAdapterNil(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	if adapter == nil {
		t.Fatal("NewSlogAdapter(nil) returned nil")
	}
	adapter.Debug("should not panic")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil))).With("window", "main")
	adapter.Info("opened")
	if !strings.Contains(buf.String(), "window=main") {
		t.Errorf("With() attrs missing, got: %s", buf.String())
	}
}

func TestTextLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := TextLogger(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("Info should be filtered at Warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Warn should be logged at Warn level")
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := JSONLogger(&buf, slog.LevelInfo)
	logger.Info("display mode changed", "mode", "fullscreen")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record["msg"] != "display mode changed" || record["mode"] != "fullscreen" {
		t.Errorf("record = %v", record)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
}

func TestLoggerConstructors(t *testing.T) {
	for name, l := range map[string]Logger{
		"default": DefaultLogger(),
		"debug":   DebugLogger(),
		"json":    JSONLogger(nil, slog.LevelInfo),
		"text":    TextLogger(nil, slog.LevelInfo),
	} {
		if l == nil {
			t.Errorf("%s logger is nil", name)
		}
	}
}
