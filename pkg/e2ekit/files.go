package e2ekit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/sethvargo/go-retry"
)

// UploadFiles attaches the given local files to the file input matched by
// selector. Paths are made absolute first; Chrome rejects relative ones.
func UploadFiles(page *rod.Page, selector string, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files to upload")
	}

	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		if _, err := os.Stat(a); err != nil {
			return fmt.Errorf("fixture %s: %w", a, err)
		}
		abs[i] = a
	}

	el, err := page.Element(selector)
	if err != nil {
		return fmt.Errorf("file input %s: %w", selector, err)
	}
	if err := el.SetFiles(abs); err != nil {
		return fmt.Errorf("set files on %s: %w", selector, err)
	}
	return nil
}

// WaitForFile polls until path exists and is non-empty, with fibonacci
// backoff capped at 10s. Downloads are reported complete by the browser
// slightly before the file is flushed, so callers poll instead of stat-ing
// once.
func WaitForFile(ctx context.Context, path string) error {
	b := retry.WithMaxDuration(10*time.Second, retry.NewFibonacci(50*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		info, err := os.Stat(path)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("waiting for %s: %w", path, err))
		}
		if info.Size() == 0 {
			return retry.RetryableError(fmt.Errorf("%s exists but is empty", path))
		}
		return nil
	})
}
