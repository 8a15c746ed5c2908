// Command window-to-tray is the reference application for the proxy's
// "external collaborators" boundary (spec 1, 6): it starts the proxy,
// spawns a requested child command once the downstream socket is
// ready, and reports one tray icon, named after that command, to an
// icon sink while the child runs. It does not look at the windows the
// child opens.
//
// Grounded on _examples/original_source/apps/window-to-tray/src/main.rs,
// whose single binary crate splits the same way into cli/desktop/wtt
// modules; this command mirrors that split as separate files in one
// package rather than a library + binary pair, since nothing here is
// meant to be imported by another command.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("window-to-tray: failed")
		os.Exit(1)
	}
}
