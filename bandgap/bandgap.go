package bandgap

import "math"

// Fit coefficients of the empirical gap model, in meV.
// Composition enters as a cubic polynomial, temperature through
// sqrt(tempOffset + tempQuad·(T − tempRef)²).
const (
	coefConst = 72.0    // constant term
	coefX1    = -710.0  // linear composition term
	coefX2    = 2440.0  // quadratic composition term
	coefX3    = -4750.0 // cubic composition term
	coefShift = -22.5   // overall shift

	tempOffset = 506.0 // inside-sqrt offset
	tempQuad   = 0.1   // inside-sqrt curvature
	tempRef    = 4.2   // reference temperature, K

	meVPerEV = 1000.0 // meV → eV conversion
)

// Func converts a composition fraction and a temperature into a band gap
// in eV. Sweeps over composition take the conversion as a value of this
// type so that alternative fits can be substituted without touching the
// sweep code.
type Func func(x, T float64) float64

// Eg returns the band gap of Pb(1-x)Eu(x)Se in eV for composition
// fraction x (dimensionless) and temperature T (Kelvin):
//
//	Eg(x,T) = (72 − 710x + 2440x² − 4750x³ − 22.5 + √(506 + 0.1(T−4.2)²)) / 1000
//
// Deterministic and pure: identical inputs always yield the bit-identical
// output. Inputs are not validated; out-of-range values silently produce
// a numerically valid but physically meaningless gap.
//
// Complexity: O(1).
func Eg(x, T float64) float64 {
	poly := coefConst + coefX1*x + coefX2*x*x + coefX3*x*x*x
	dT := T - tempRef

	return (poly + coefShift + math.Sqrt(tempOffset+tempQuad*dT*dT)) / meVPerEV
}
