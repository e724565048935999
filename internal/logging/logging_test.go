package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "nested", "board.log")

	closer, err := Init(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	slog.Debug("hidden message")
	slog.Info("board ready", "columns", 3)

	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "board ready") || !strings.Contains(content, "columns=3") {
		t.Errorf("log missing info record: %q", content)
	}
	if strings.Contains(content, "hidden message") {
		t.Errorf("debug record written at info level: %q", content)
	}
}
