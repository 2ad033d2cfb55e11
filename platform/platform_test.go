package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledReturnsNil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogDir = t.TempDir()
	cfg.Debug = false
	if f := SetupLogging(cfg); f != nil {
		t.Fatalf("expected nil file when debug is false, got %v", f)
	}
}

func TestSetupLoggingCreatesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogDir = t.TempDir()
	cfg.Debug = true
	f := SetupLogging(cfg)
	if f == nil {
		t.Fatal("expected a non-nil log file when debug is true")
	}
	defer f.Close()

	if _, err := os.Stat(filepath.Join(cfg.LogDir, logDirName, logFileName)); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestPruneRotatedLogsKeepsMostRecent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < maxRotatedLogs+3; i++ {
		name := filepath.Join(dir, fmt.Sprintf("mazebot-2026-01-01-00-00-%02d.log", i))
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write fixture rotated log: %v", err)
		}
	}

	pruneRotatedLogs(dir)

	matches, err := filepath.Glob(filepath.Join(dir, "mazebot-*.log"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != maxRotatedLogs {
		t.Fatalf("expected %d rotated logs to remain, got %d", maxRotatedLogs, len(matches))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Maze.Rows != 5 || cfg.Maze.Cols != 5 {
		t.Fatalf("unexpected default maze size: %+v", cfg.Maze)
	}
	if cfg.Link.Enabled {
		t.Fatal("expected link disabled by default")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mazebot.toml")
	contents := "debug = true\n\n[maze]\nrows = 8\ncols = 6\n\n[link]\nenabled = true\nrole = \"client\"\naddress = \"127.0.0.1:9001\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if !cfg.Debug {
		t.Fatal("expected debug = true")
	}
	if cfg.Maze.Rows != 8 || cfg.Maze.Cols != 6 {
		t.Fatalf("unexpected maze size: %+v", cfg.Maze)
	}
	if !cfg.Link.Enabled || cfg.Link.Address != "127.0.0.1:9001" {
		t.Fatalf("unexpected link config: %+v", cfg.Link)
	}
	if cfg.Link.LinkRole().String() != "client" {
		t.Fatalf("LinkRole() = %v, want client", cfg.Link.LinkRole())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
