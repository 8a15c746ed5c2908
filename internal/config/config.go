// Package config loads cmd/wlproxy's YAML configuration file and
// watches it for changes, the ambient-stack counterpart to spec 6's
// "baseline table ... is also a document consumed at configuration
// time." Grounded on _examples/thiagojdb-adoctl's yaml.v3 config
// loading and _examples/nabbar-golib's fsnotify-backed reload.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is cmd/wlproxy's on-disk configuration: socket paths,
// protocol feature gates, log level, and an optional keymap remap
// file path. Protocols and KeymapRemap are parsed, but nothing in this
// module reads them; no handler remaps keymaps.
type Config struct {
	Upstream    string          `yaml:"upstream"`
	ListenName  string          `yaml:"listen_name"`
	LogLevel    string          `yaml:"log_level"`
	LogWire     bool            `yaml:"log_wire"`
	TracePrefix string          `yaml:"trace_prefix"`
	Protocols   map[string]bool `yaml:"protocols"`
	KeymapRemap string          `yaml:"keymap_remap"`
}

// Default returns the configuration cmd/wlproxy runs with when no
// config file is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Protocols: map[string]bool{},
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Watcher reloads a config file whenever it changes on disk and hands
// the new value to onReload. A reload that fails to parse is logged
// and otherwise ignored — the process keeps running on its last-known-
// good configuration rather than crashing on a typo.
type Watcher struct {
	path     string
	log      zerolog.Logger
	fsw      *fsnotify.Watcher
	onReload func(Config)

	mu      sync.Mutex
	current Config
}

// WatchFile starts watching path for changes, calling onReload with
// every successfully parsed update. The returned Watcher owns the
// underlying fsnotify.Watcher; call Close to stop watching.
func WatchFile(path string, log zerolog.Logger, onReload func(Config)) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: new watcher: %w", err)
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	w := &Watcher{path: path, log: log, fsw: fsw, onReload: onReload, current: cfg}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn().Err(err).Str("path", w.path).Msg("config reload failed, keeping previous config")
				continue
			}
			w.mu.Lock()
			w.current = cfg
			w.mu.Unlock()
			w.log.Info().Str("path", w.path).Msg("config reloaded")
			w.onReload(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Close stops the underlying file watch.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
