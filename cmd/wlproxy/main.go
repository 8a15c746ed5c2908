// Command wlproxy is the transparent Wayland protocol proxy itself: it
// listens on a downstream unix socket, dials the real compositor for
// each accepted client, and forwards every message through the
// single-threaded reactor (spec 3, 4.8).
package main

import (
	"github.com/bnema/wl-proxy/cmd/wlproxy/cmd"
)

func main() {
	cmd.Execute()
}
