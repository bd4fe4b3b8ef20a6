// Command bigfiles finds large files in a directory tree.
package main

import (
	"os"

	"github.com/idelchi/bigfiles/internal/cli"
)

// version is injected at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // Set by the linker

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
