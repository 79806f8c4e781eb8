// Demo site server.
//
// Serves the pages the e2e suite runs against, for manual exploration:
//
//	go run ./cmd/demosite --addr :8080
//
// Then open http://localhost:8080 and walk through the login, dynamic
// content, upload, and download pages by hand.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flightcheck/flightcheck/internal/demosite"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "demosite",
		Short: "Serve the Flightcheck demo site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := demosite.DefaultConfig()
			cfg.Addr = addr

			srv, err := demosite.NewServer(cfg)
			if err != nil {
				return err
			}

			bound, err := srv.Start()
			if err != nil {
				return err
			}
			log.Printf("demo site listening on http://%s", bound)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			log.Print("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
