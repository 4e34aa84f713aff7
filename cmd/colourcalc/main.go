// colourcalc - A colour notation converter
//
// colourcalc reads a colour in RGB, HEX, DEC, HSB/HSV, HSL or CMYK notation
// and writes it back out in every one of them.
package main

import (
	"os"

	"github.com/jmylchreest/colourcalc/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
