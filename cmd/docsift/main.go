package main

import (
	"github.com/docsift/docsift-cli/internal/adapters/driving/cli"
)

// version is injected at build time via
// -ldflags "-X main.version=v1.2.3".
var version = ""

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
