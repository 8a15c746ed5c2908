package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/wl-proxy/internal/sockpath"
	"github.com/bnema/wl-proxy/reactor"
)

var (
	upstreamFlag   string
	listenNameFlag string
)

func run(log zerolog.Logger) error {
	root := &cobra.Command{
		Use:   "window-to-tray -- <command> [args...]",
		Short: "Run a Wayland client behind the proxy with a tray icon while it runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProxyAndChild(log, args[0], args[1:])
		},
	}
	root.Flags().StringVar(&upstreamFlag, "upstream", "", "upstream compositor socket (default: $WAYLAND_DISPLAY)")
	root.Flags().StringVar(&listenNameFlag, "listen-name", "", "downstream socket name under $XDG_RUNTIME_DIR")
	return root.Execute()
}

func runProxyAndChild(log zerolog.Logger, command string, args []string) error {
	upstreamPath, err := sockpath.Upstream(upstreamFlag)
	if err != nil {
		return fmt.Errorf("window-to-tray: %w", err)
	}
	listenPath, err := sockpath.Downstream(listenNameFlag)
	if err != nil {
		return fmt.Errorf("window-to-tray: %w", err)
	}

	r := reactor.New(log, listenPath, upstreamPath)
	if err := r.Listen(); err != nil {
		return fmt.Errorf("window-to-tray: %w", err)
	}
	defer r.Close()

	var icons IconSink = newConsoleIconSink(log)

	var child ChildSupervisor = newExecChildSupervisor(command, args)
	if err := child.Start([]string{"WAYLAND_DISPLAY=" + listenPath}); err != nil {
		return fmt.Errorf("window-to-tray: spawn child: %w", err)
	}
	log.Info().Str("command", command).Str("display", listenPath).Msg("window-to-tray: child spawned")
	if err := icons.UpdateIcon(command, command); err != nil {
		log.Warn().Err(err).Msg("window-to-tray: icon update failed")
	}
	defer func() {
		if err := icons.RemoveIcon(command); err != nil {
			log.Warn().Err(err).Msg("window-to-tray: icon removal failed")
		}
	}()

	done := make(chan error, 1)
	go func() {
		done <- child.Wait()
	}()

	stop := make(chan struct{})
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- r.Serve(stop)
	}()

	select {
	case err := <-done:
		close(stop)
		<-serveErr
		if err != nil {
			log.Warn().Err(err).Msg("window-to-tray: child exited with error")
		} else {
			log.Info().Msg("window-to-tray: child exited")
		}
		return nil
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("window-to-tray: reactor: %w", err)
		}
		return nil
	}
}
