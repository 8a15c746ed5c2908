// Package sockpath resolves the two unix socket paths the proxy needs
// (spec 6): the upstream compositor socket it dials, and the
// downstream listening socket it creates and advertises.
package sockpath

import (
	"fmt"
	"os"
	"path/filepath"
)

// Upstream resolves the real compositor's socket path from an explicit
// override or $WAYLAND_DISPLAY, relative names joining $XDG_RUNTIME_DIR
// and absolute ones used literally — the same resolution
// wlclient.Connect already does for an ordinary client.
func Upstream(override string) (string, error) {
	path := override
	if path == "" {
		path = os.Getenv("WAYLAND_DISPLAY")
		if path == "" {
			path = "wayland-0"
		}
	}
	return joinRuntimeDir(path)
}

// Downstream resolves the listening socket path the proxy itself binds
// and hands out to spawned children as $WAYLAND_DISPLAY. name is either
// an explicit override or a runtime-chosen one (spec 6: "a
// runtime-chosen name").
func Downstream(name string) (string, error) {
	if name == "" {
		name = fmt.Sprintf("wayland-proxy-%d", os.Getpid())
	}
	return joinRuntimeDir(name)
}

func joinRuntimeDir(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	runDir := os.Getenv("XDG_RUNTIME_DIR")
	if runDir == "" {
		return "", fmt.Errorf("sockpath: XDG_RUNTIME_DIR not set")
	}
	return filepath.Join(runDir, path), nil
}
