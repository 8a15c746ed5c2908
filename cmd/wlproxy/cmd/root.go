package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	upstreamFlag   string
	listenNameFlag string
	configFlag     string
	logWireFlag    bool
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "wlproxy",
	Short: "Transparent in-process Wayland protocol proxy",
	Long: `wlproxy sits between a Wayland client and the real compositor,
forwarding every request and event unmodified by default while giving
an embedding application the hooks to intercept, rewrite, or inject
messages on specific interfaces.`,
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&upstreamFlag, "upstream", "", "upstream compositor socket (default: $WAYLAND_DISPLAY)")
	rootCmd.Flags().StringVar(&listenNameFlag, "listen-name", "", "downstream socket name under $XDG_RUNTIME_DIR (default: runtime-chosen)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "path to a YAML config file")
	rootCmd.Flags().BoolVar(&logWireFlag, "log-wire", false, "emit the spec 6 per-message wire trace")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	if !isTTY(os.Stderr) {
		return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
