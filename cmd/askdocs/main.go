package main

import (
	"os"

	"github.com/arkestra-labs/askdocs-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
