// Package exchange selects tabulated magnetic exchange parameters for
// Pb(1-x)Eu(x)Se.
//
// 🚀 What is in the table?
//
//	Four experimentally measured rows (Bauer & Zawadzki 1992, Table 3),
//	one per (composition, temperature) condition. Each row carries the
//	mean-field and fluctuation exchange couplings for the conduction band
//	(A, a1, a2) and the valence band (B, b1, b2), all in eV.
//
// ✨ Key properties:
//   - Closed enumeration: exactly the datasets 0..3 exist. Any other index
//     fails fast with ErrUnknownDataset: no default, no fallback.
//   - The fluctuation terms are derived at lookup as a2 = a1 − A and
//     b2 = b1 − B (deviation from the mean-field value); the table stores
//     only the measured constants.
//   - An optional uniform scale factor multiplies all six values, for
//     what-if studies with artificially enhanced exchange.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/valleymag/exchange"
//
//	p, err := exchange.Select(exchange.Dataset0, exchange.WithScaleFactor(10))
//	if err != nil {
//	    // errors.Is(err, exchange.ErrUnknownDataset)
//	}
//
// Select logs a human-readable description of the chosen physical
// condition; route it with WithLogger.
package exchange
