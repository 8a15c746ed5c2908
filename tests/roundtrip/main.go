// Manual integration test that proves the proxy forwards a real
// Wayland session end to end: it starts a reactor against the real
// compositor, connects wlclient through the proxy's own downstream
// socket, and performs a second sync roundtrip over that connection.
//
// Prerequisites:
// - A running Wayland compositor ($WAYLAND_DISPLAY set)
//
// Usage: go run tests/roundtrip/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/wl-proxy/internal/sockpath"
	"github.com/bnema/wl-proxy/reactor"
	"github.com/bnema/wl-proxy/wlclient"
)

func main() {
	fmt.Println("Proxy Roundtrip Test")
	fmt.Printf("WAYLAND_DISPLAY: %s\n\n", os.Getenv("WAYLAND_DISPLAY"))

	upstreamPath, err := sockpath.Upstream("")
	if err != nil {
		log.Fatalf("resolve upstream: %v", err)
	}
	listenPath, err := sockpath.Downstream("")
	if err != nil {
		log.Fatalf("resolve downstream: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	r := reactor.New(logger, listenPath, upstreamPath)

	fmt.Print("Starting proxy... ")
	if err := r.Listen(); err != nil {
		log.Fatalf("FAILED: %v", err)
	}
	defer r.Close()
	fmt.Println("OK")

	stop := make(chan struct{})
	serveErr := make(chan error, 1)
	go func() { serveErr <- r.Serve(stop) }()
	defer close(stop)

	fmt.Print("Connecting through proxy... ")
	d, err := wlclient.Connect(listenPath)
	if err != nil {
		log.Fatalf("FAILED: %v", err)
	}
	defer d.Close()
	fmt.Println("OK")

	fmt.Print("Performing a second roundtrip... ")
	start := time.Now()
	if err := d.Roundtrip(); err != nil {
		log.Fatalf("FAILED: %v", err)
	}
	fmt.Printf("OK (%s)\n", time.Since(start))

	globals := d.Registry().GetGlobals()
	fmt.Printf("\n%d globals forwarded from the real compositor:\n", len(globals))
	for _, g := range globals {
		fmt.Printf("  %s v%d\n", g.Interface, g.Version)
	}

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("reactor exited: %v", err)
		}
	default:
	}
}
