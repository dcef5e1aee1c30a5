// main is the entry point for the fplassist CLI.
package main

import (
	"os"

	"fplassist/cmd"
	"fplassist/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
