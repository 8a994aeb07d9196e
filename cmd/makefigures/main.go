// Command makefigures renders the transmission chart used in the BCM-3000
// documentation.
package main

import (
	"flag"
	"fmt"
	"os"

	"BCM3000-Tools/internal/transmission"
)

func main() {
	out := flag.String("o", transmission.DefaultOutput, "output image path")
	flag.Parse()

	fig, err := transmission.NewFigure(transmission.DefaultCurves())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building figure: %v\n", err)
		os.Exit(1)
	}
	if err := fig.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
