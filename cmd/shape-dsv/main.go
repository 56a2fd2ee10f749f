// Command shape-dsv converts and inspects delimiter-separated text.
package main

import (
	"os"

	"github.com/shapestone/shape-dsv/internal/cli"
)

// version is overridden at release time via -ldflags.
var version = "v0.1.0-dev"

func main() {
	cli.Version = version
	os.Exit(cli.Execute())
}
