// Package main is the entry point for the errdoc CLI.
package main

import (
	"os"

	"github.com/bookrab/errdoc/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
