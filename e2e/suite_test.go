//go:build e2e

package e2e

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/flightcheck/flightcheck/internal/demosite"
	"github.com/flightcheck/flightcheck/pkg/e2ekit"
)

// startSite runs a demo site instance for one test and returns its base URL.
// The server is shut down when the test finishes.
func startSite(t *testing.T) string {
	t.Helper()

	srv, err := demosite.NewServer(demosite.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	addr, err := srv.Start()
	if err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Errorf("server shutdown error: %v", err)
		}
	})

	// The server binds [::]:port, Chrome wants an explicit host
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("bad server address %q: %v", addr, err)
	}
	return "http://localhost:" + port
}

// launchBrowser starts a Chrome instance configured from e2e.yaml (or the
// defaults when the file is absent) and closes it when the test finishes.
func launchBrowser(t *testing.T) *e2ekit.BrowserClient {
	t.Helper()

	cfg, err := e2ekit.LoadSuiteConfig("e2e.yaml")
	if err != nil {
		t.Fatalf("failed to load suite config: %v", err)
	}

	client, err := e2ekit.NewBrowserClient(cfg.BrowserConfig())
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("browser close error: %v", err)
		}
	})
	return client
}
