// Command signkeys inspects and maintains the premium key ledger offline.
package main

import (
	"os"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgHiGreen)
	warnColor = color.New(color.FgHiYellow)
	errColor  = color.New(color.FgHiRed, color.Bold)
	dimColor  = color.New(color.FgHiBlack)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
