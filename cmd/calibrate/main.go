// Command calibrate prints the BCM-3000 calibration polynomial as a firmware
// expression.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"BCM3000-Tools/internal/calibration"
)

func main() {
	calPath := flag.String("cal", "", "path to calibration JSON (defaults to the built-in reference beers)")
	inputName := flag.String("var", calibration.DefaultInputName, "name of the absorbance variable in the expression")
	absStr := flag.String("abs", "", "absorbance to convert to EBC with the fitted polynomial")
	jsonOut := flag.String("json-out", "", "write the calibration result as JSON to this path")
	flag.Parse()

	if *inputName == "" {
		fmt.Fprintln(os.Stderr, "error: -var must not be empty")
		flag.Usage()
		os.Exit(2)
	}

	data := calibration.DefaultData()
	if *calPath != "" {
		dataBytes, err := os.ReadFile(*calPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading calibration file: %v\n", err)
			os.Exit(1)
		}
		data = calibration.CalibrationData{}
		if err := json.Unmarshal(dataBytes, &data); err != nil {
			fmt.Fprintf(os.Stderr, "error parsing calibration JSON: %v\n", err)
			os.Exit(1)
		}
	}

	result, err := calibration.Calibrate(data, *inputName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculation error: %v\n", err)
		os.Exit(1)
	}

	var absorbance float64
	if *absStr != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(*absStr), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing absorbance %q: %v\n", *absStr, err)
			os.Exit(2)
		}
		absorbance = v
	}

	if *jsonOut != "" {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error encoding result: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, append(b, '\n'), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *jsonOut, err)
			os.Exit(1)
		}
	}

	fmt.Println(result.Expression)
	if *absStr != "" {
		fmt.Printf("%.6g\n", result.Predict(absorbance))
	}
}
