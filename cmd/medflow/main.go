// Package main is the entry point for the medflow CLI/TUI.
package main

import (
	"os"

	"github.com/medflow-io/medflow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
