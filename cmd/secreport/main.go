// Package main is the entry point for the secreport CLI, which
// consolidates heterogeneous security-scan outputs into a single
// normalized report.
package main

import (
	"os"

	"github.com/codepal/secreport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
