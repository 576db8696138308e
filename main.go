package main

import (
	"os"

	"github.com/crewlint/crewlint/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
