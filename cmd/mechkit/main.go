// Package main is the entry point for the mechkit CLI.
package main

import (
	"os"

	"mechkit/cmd/mechkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
