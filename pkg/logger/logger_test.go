package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFileOutputCarriesSession(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "drive.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() { Log = zap.NewNop(); Sugar = Log.Sugar() }()

	Debug("hidden")
	Info("frame", zap.Int("drawn", 42))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at info level, got %d: %q", len(lines), lines)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "frame" {
		t.Errorf("expected msg frame, got %v", entry["msg"])
	}
	if entry["session"] != SessionID {
		t.Errorf("expected session %s, got %v", SessionID, entry["session"])
	}
	if entry["drawn"] != float64(42) {
		t.Errorf("expected drawn 42, got %v", entry["drawn"])
	}
}

func TestFileOutputCreatesDirectory(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "nested", "drive.log")

	if err := InitWithFileConfig("info", DefaultFileConfig(logFile), false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() { Log = zap.NewNop(); Sugar = Log.Sugar() }()

	Info("hello")
	Sync()
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file to be written: %v", err)
	}
}

func TestFileOutputBadDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	before := Log

	err := InitWithFileConfig("info", DefaultFileConfig(filepath.Join(blocker, "sub", "drive.log")), false)
	if err == nil {
		t.Fatal("expected an error when the log directory cannot be created")
	}
	if !errors.Is(err, syscall.ENOTDIR) {
		t.Errorf("expected the mkdir error to be wrapped, got %v", err)
	}
	if Log != before {
		t.Error("logger should be left untouched on error")
	}
}

func TestEnabled(t *testing.T) {
	if err := InitWithFileConfig("warn", FileConfig{}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() { Log = zap.NewNop(); Sugar = Log.Sugar() }()

	// with no cores nothing is enabled
	if Enabled(zapcore.ErrorLevel) {
		t.Error("expected a logger without outputs to be disabled")
	}

	cfg := DefaultFileConfig(filepath.Join(t.TempDir(), "x.log"))
	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	if Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !Enabled(zapcore.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNopByDefault(t *testing.T) {
	// must not panic before Init
	Info("ignored")
	Sugar.Infof("ignored %d", 1)
	Sync()
}
