// Package e2ekit provides browser automation helpers for the end-to-end
// suite. It wraps Rod with the launch flags and operations the demo-site
// scenarios need: opening pages, uploading files, awaiting downloads, and
// mocking routes.
package e2ekit

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserConfig configures Chrome launch options.
type BrowserConfig struct {
	Headless bool          // Run in headless mode (default: true)
	Timeout  time.Duration // Default operation timeout (default: 30s)
}

// DefaultBrowserConfig returns sensible defaults for E2E testing.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless: true,
		Timeout:  30 * time.Second,
	}
}

// BrowserClient wraps a Rod browser. Every page is opened fresh via OpenPage
// so tests (and page objects) own their page handle for its whole lifetime.
type BrowserClient struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewBrowserClient launches Chrome and connects to it.
// The browser runs without a sandbox for container compatibility.
func NewBrowserClient(cfg BrowserConfig) (*BrowserClient, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	return &BrowserClient{
		browser: browser,
		timeout: cfg.Timeout,
	}, nil
}

// Browser exposes the underlying Rod browser for operations the kit does not
// wrap.
func (c *BrowserClient) Browser() *rod.Browser {
	return c.browser
}

// OpenPage creates a new page, navigates it to url, and waits for the load
// event. The navigation is bounded by the client timeout.
func (c *BrowserClient) OpenPage(url string) (*rod.Page, error) {
	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	p := page.Timeout(c.timeout)
	if err := p.Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("page %s did not finish loading: %w", url, err)
	}

	return page, nil
}

// NewPage creates an empty page for callers that drive navigation
// themselves, such as page objects.
func (c *BrowserClient) NewPage() (*rod.Page, error) {
	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// AwaitDownload registers a download waiter, runs trigger, and blocks until
// the download that trigger started has been written into dir. Returns the
// path of the saved file. The waiter must be registered before the trigger
// runs, which is why the trigger is passed as a callback.
func (c *BrowserClient) AwaitDownload(dir string, trigger func() error) (string, error) {
	wait := c.browser.Timeout(c.timeout).WaitDownload(dir)

	if err := trigger(); err != nil {
		return "", fmt.Errorf("download trigger failed: %w", err)
	}

	info := wait()
	if info == nil {
		return "", fmt.Errorf("no download started within %s", c.timeout)
	}

	return filepath.Join(dir, info.GUID), nil
}

// Close cleans up browser resources.
// Always call this (via defer) to prevent orphaned Chrome processes.
func (c *BrowserClient) Close() error {
	if c.browser != nil {
		return c.browser.Close()
	}
	return nil
}
