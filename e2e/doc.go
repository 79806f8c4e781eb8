//go:build e2e

// Package e2e contains the browser end-to-end scenarios: title assertions,
// the page-object login flow, dynamic content re-verification, file upload
// and download, and API response mocking.
//
// These tests are isolated from the standard test suite via build tags.
// They require a Chrome browser (auto-downloaded by Rod if not present)
// and are intended for CI pipelines or explicit local testing.
//
// Running E2E tests:
//
//	go test -tags=e2e ./e2e/...
//
// Running all tests except E2E:
//
//	go test ./...
//
// E2E tests use:
//   - Rod for browser automation (Chrome DevTools Protocol)
//   - internal/demosite for the pages under test
//   - BrowserClient from pkg/e2ekit for Chrome helpers
//
// Test isolation:
// Each test starts its own demo site on a random port and launches its own
// browser instance. Set HEADLESS=false to watch a scenario locally.
package e2e
