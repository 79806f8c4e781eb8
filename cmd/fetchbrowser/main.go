// Pre-downloads the Rod-managed browser binary.
//
// CI runs this before the e2e suite so the download happens in its own
// pipeline step instead of silently inside the first test:
//
//	go run ./cmd/fetchbrowser
package main

import (
	"fmt"
	"log"

	"github.com/go-rod/rod/lib/launcher"
)

func main() {
	b := launcher.NewBrowser()

	path, err := b.Get()
	if err != nil {
		log.Fatalf("failed to fetch browser: %v", err)
	}
	fmt.Println(path)
}
