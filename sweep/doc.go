// Package sweep computes and plots valley energy levels over a swept
// independent variable.
//
// 🚀 What does a sweep do?
//
//	For every sample of the domain it rebuilds the band-edge Hamiltonian
//	at the sampled gap (the oblique valley gets the extra gap shift from
//	the ~1% Bi doping), diagonalizes both valleys, classifies the spectra
//	against the benchmark Hamiltonian, and renders the resulting level or
//	transition curves as PNG figures.
//
// ✨ Sweep modes:
//   - band gap as the independent variable over a [lo,hi] domain, or
//   - Eu composition x at a fixed temperature, converted to a gap per
//     sample through a bandgap.Func.
//
// Both valleys can share one axis (central solid, oblique dashed) or get
// a figure each, the original "both" flag.
//
// ⚙️ Usage:
//
//	opts := sweep.DefaultOptions()
//	opts.BothValleysOnOneAxis = true
//	err := sweep.EgSweepBothValleys(bulk, exch, [2]float64{-0.1, 0.1},
//	    0.15, sweep.GapAxis(), opts)
//
// Validation failures surface as package sentinels (ErrBadDomain,
// ErrBadPoints, ErrNilGapFunc); collaborator failures propagate wrapped
// with the entry-point tag. There are no retries.
package sweep
