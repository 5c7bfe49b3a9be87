// Package main is the entry point of the datatypes CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/datatypes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
