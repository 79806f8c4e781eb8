package e2ekit

import (
	"fmt"

	"github.com/go-rod/rod"
)

// MockRoute intercepts requests from page matching pattern (rod glob syntax,
// e.g. "*/api/users/2") and fulfills them with the given body instead of
// hitting the network. Byte and string bodies are sent as-is, anything else
// is JSON-encoded. Requests that do not match the pattern pass through
// untouched.
//
// The route must be registered before the navigation or fetch that should be
// intercepted. The returned stop function removes the interception.
func MockRoute(page *rod.Page, pattern, contentType string, body any) (stop func() error, err error) {
	router := page.HijackRequests()

	err = router.Add(pattern, "", func(h *rod.Hijack) {
		h.Response.SetHeader("Content-Type", contentType)
		h.Response.SetBody(body)
	})
	if err != nil {
		return nil, fmt.Errorf("register mock for %s: %w", pattern, err)
	}

	go router.Run()
	return router.Stop, nil
}
