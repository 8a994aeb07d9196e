// Package transmission models how much light passes through beer of a given
// SRM colour in the BCM-3000 cuvette.
package transmission

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

const (
	// UnitsPerAbsorbance is the SRM value giving an absorbance of 1.0 at 1 cm.
	UnitsPerAbsorbance = 12.7

	PathLength10mm = 1.0
	PathLength5mm  = 0.5

	MaxSRM = 50
)

// Absorbance returns the absorbance of beer with colour srm over a path of
// pathCM centimetres.
func Absorbance(srm, pathCM float64) float64 {
	return srm / UnitsPerAbsorbance * pathCM
}

// Transmission converts absorbance to percent transmitted light.
func Transmission(absorbance float64) float64 {
	return math.Pow(10, -absorbance) * 100
}

// Curve is the transmission over the SRM scale for one path length.
type Curve struct {
	Label  string
	PathCM float64
	Points plotter.XYs
}

// NewCurve samples transmission at every integer SRM value from 0 to maxSRM.
func NewCurve(label string, pathCM float64, maxSRM int) Curve {
	srm := []float64{0}
	if maxSRM > 0 {
		srm = floats.Span(make([]float64, maxSRM+1), 0, float64(maxSRM))
	}
	pts := make(plotter.XYs, len(srm))
	for i, s := range srm {
		pts[i].X = s
		pts[i].Y = Transmission(Absorbance(s, pathCM))
	}
	return Curve{Label: label, PathCM: pathCM, Points: pts}
}

// DefaultCurves returns the 1.0 cm and 0.5 cm curves.
func DefaultCurves() []Curve {
	return []Curve{
		NewCurve("1.0 cm path length", PathLength10mm, MaxSRM),
		NewCurve("0.5 cm path length", PathLength5mm, MaxSRM),
	}
}
