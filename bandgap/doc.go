// Package bandgap provides the empirical band-gap model of Pb(1-x)Eu(x)Se.
//
// The gap Eg is a function of the Eu composition fraction x and the
// temperature T in Kelvin, fitted as a cubic in x plus a square-root
// temperature term (Kryzman et al., SPIE 2019; fitted on PbSnSe, applied
// here to PbEuSe as the best available parametrization).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/valleymag/bandgap"
//
//	eg := bandgap.Eg(0.1, 10) // gap in eV at x=0.1, T=10 K
//
// The model is a pure function: no validation, no state, no side effects.
// Inputs outside the physical range (x∉[0,1], negative T) still produce a
// finite number; interpreting it is the caller's responsibility.
package bandgap
