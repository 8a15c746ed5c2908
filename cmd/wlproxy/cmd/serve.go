package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/wl-proxy/internal/config"
	"github.com/bnema/wl-proxy/internal/sockpath"
	"github.com/bnema/wl-proxy/reactor"
)

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger(logLevelFlag)

	cfg := config.Default()
	var watcher *config.Watcher
	if configFlag != "" {
		var err error
		watcher, err = config.WatchFile(configFlag, log, func(config.Config) {})
		if err != nil {
			return fmt.Errorf("wlproxy: %w", err)
		}
		defer watcher.Close()
		cfg = watcher.Current()
	}

	upstream := upstreamFlag
	if upstream == "" {
		upstream = cfg.Upstream
	}
	listenName := listenNameFlag
	if listenName == "" {
		listenName = cfg.ListenName
	}
	wireLog := logWireFlag || cfg.LogWire

	upstreamPath, err := sockpath.Upstream(upstream)
	if err != nil {
		return fmt.Errorf("wlproxy: %w", err)
	}
	listenPath, err := sockpath.Downstream(listenName)
	if err != nil {
		return fmt.Errorf("wlproxy: %w", err)
	}

	r := reactor.New(log, listenPath, upstreamPath)
	r.TraceEnabled = wireLog
	r.TracePrefix = cfg.TracePrefix

	if err := os.Setenv("WAYLAND_DISPLAY", listenPath); err != nil {
		return fmt.Errorf("wlproxy: set WAYLAND_DISPLAY: %w", err)
	}

	log.Info().
		Str("upstream", upstreamPath).
		Str("listen", listenPath).
		Bool("log_wire", wireLog).
		Msg("starting proxy")

	stop := make(chan struct{})
	return r.Run(stop)
}
