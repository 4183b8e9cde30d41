// Package main is the entry point for the ocfg CLI.
package main

import (
	"os"

	"github.com/oc-tools/ocfg/cmd/ocfg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
