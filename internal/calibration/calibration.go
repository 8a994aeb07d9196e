// Package calibration computes the absorbance-to-colour polynomial embedded in
// the BCM-3000 firmware.
package calibration

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrLengthMismatch = errors.New("absorbance and target lengths differ")
	ErrTooFewPoints   = errors.New("not enough points for polynomial degree")
	ErrSingular       = errors.New("normal matrix is singular")
)

// Polynomial holds coefficients ordered from the highest power down to the
// constant term.
type Polynomial []float64

// Degree returns the polynomial degree, -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	v := 0.0
	for _, c := range p {
		v = v*x + c
	}
	return v
}

// Fit is a fitted polynomial along with the diagnostics of the fit.
type Fit struct {
	Poly        Polynomial
	DetNormal   float64
	RSS         float64
	ResidualVar float64
}

// Normalize splits samples into absorbance values and colour targets divided
// by divisor.
func Normalize(samples []ReferenceSample, divisor float64) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.MeasuredAbsorbance
		ys[i] = s.KnownUnits / divisor
	}
	return xs, ys
}

// FitPolynomial performs a least-squares fit of a polynomial of the given
// degree through (xs[i], ys[i]).
//
// We construct the Vandermonde matrix X (n x degree+1, highest power first)
// and solve (X^T X + ridge*I) c = X^T y for c. With as many points as
// coefficients the fit interpolates the points exactly.
func FitPolynomial(xs, ys []float64, degree int, ridge float64) (Fit, error) {
	if len(xs) != len(ys) {
		return Fit{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	n := len(xs)
	p := degree + 1
	if degree < 0 || n < p {
		return Fit{}, fmt.Errorf("%w: %d points, degree %d", ErrTooFewPoints, n, degree)
	}

	X := mat.NewDense(n, p, nil)
	for i, x := range xs {
		v := 1.0
		for j := p - 1; j >= 0; j-- {
			X.Set(i, j, v)
			v *= x
		}
	}
	y := mat.NewVecDense(n, append([]float64(nil), ys...))

	var A mat.Dense
	A.Mul(X.T(), X)
	var b mat.VecDense
	b.MulVec(X.T(), y)

	det := mat.Det(&A)
	if ridge != 0 {
		for i := 0; i < p; i++ {
			A.Set(i, i, A.At(i, i)+ridge)
		}
	}

	var c mat.VecDense
	if err := c.SolveVec(&A, &b); err != nil {
		return Fit{}, fmt.Errorf("could not solve normal equations: %w: %v", ErrSingular, err)
	}

	var pred mat.VecDense
	pred.MulVec(X, &c)
	res := floats.SubTo(make([]float64, n), ys, pred.RawVector().Data)
	rss := floats.Dot(res, res)
	resVar := 0.0
	if n > p {
		resVar = rss / float64(n-p)
	}

	coeffs := make(Polynomial, p)
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
	}
	return Fit{Poly: coeffs, DetNormal: det, RSS: rss, ResidualVar: resVar}, nil
}

// Calibrate fits the calibration polynomial for data and renders it as a
// firmware expression using inputName as the absorbance variable.
func Calibrate(data CalibrationData, inputName string) (CalibrationResult, error) {
	if data.Divisor == 0 {
		data.Divisor = DefaultDivisor
	}
	if data.Degree == 0 {
		data.Degree = DefaultDegree
	}
	if data.Samples == nil {
		data.Samples = DefaultSamples()
	}
	if inputName == "" {
		inputName = DefaultInputName
	}

	xs, ys := Normalize(data.Samples, data.Divisor)
	fit, err := FitPolynomial(xs, ys, data.Degree, data.Ridge)
	if err != nil {
		return CalibrationResult{}, err
	}
	return CalibrationResult{
		Coefficients: fit.Poly,
		Expression:   FormatHorner(fit.Poly, inputName),
		Divisor:      data.Divisor,
		RSS:          fit.RSS,
		ResidualVar:  fit.ResidualVar,
		DetNormal:    fit.DetNormal,
	}, nil
}

// Predict returns the colour value for an absorbance reading, undoing the
// normalization applied before fitting.
func (r CalibrationResult) Predict(absorbance float64) float64 {
	return Polynomial(r.Coefficients).Eval(absorbance) * r.Divisor
}
