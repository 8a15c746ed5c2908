package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wlproxy.yaml")
	writeConfig(t, path, "upstream: wayland-1\nlisten_name: wayland-proxy-0\nlog_wire: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Upstream != "wayland-1" || cfg.ListenName != "wayland-proxy-0" || !cfg.LogWire {
		t.Fatalf("Load() = %+v", cfg)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
}

func TestWatchFileReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wlproxy.yaml")
	writeConfig(t, path, "log_level: info\n")

	reloaded := make(chan Config, 1)
	w, err := WatchFile(path, zerolog.Nop(), func(c Config) { reloaded <- c })
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Close()

	if w.Current().LogLevel != "info" {
		t.Fatalf("Current().LogLevel = %q, want %q", w.Current().LogLevel, "info")
	}

	writeConfig(t, path, "log_level: debug\n")

	select {
	case cfg := <-reloaded:
		if cfg.LogLevel != "debug" {
			t.Fatalf("reloaded LogLevel = %q, want %q", cfg.LogLevel, "debug")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
