//go:build !xmobile

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "life-mobile requires the xmobile build tag.")
	fmt.Fprintln(os.Stderr, "Build it with `gomobile build -tags xmobile ./cmd/life-mobile` or `go run -tags xmobile ./cmd/life-mobile`.")
	os.Exit(2)
}
