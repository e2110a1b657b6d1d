// Package valleymag computes and plots electronic energy levels of the
// semimagnetic lead chalcogenide Pb(1-x)Eu(x)Se.
//
// 🚀 What is valleymag?
//
//	A small research-analysis toolkit built around the band-edge picture
//	of the L-point valleys with mean-field magnetic exchange:
//		• bandgap/      — empirical Eg(x, T) fit
//		• exchange/     — the four Bauer & Zawadzki 1992 exchange datasets
//		• hamiltonian/  — 4×4 valley Hamiltonian assembly + diagonalization
//		• levels/       — valence/conduction classification & transitions
//		• sweep/        — parameter sweeps rendered as PNG figures
//		• cmd/valleymag — the experiment driver
//
// ✨ Why this shape?
//
//   - Deterministic – pure functions, explicit immutable parameter
//     structs, no ambient global state
//   - Fail-fast – closed dataset enumeration, sentinel errors, no silent
//     fallbacks
//   - Small-matrix numerics – gonum's symmetric eigensolver on a fixed
//     4×4 model; domain correctness over systems architecture
//
// The driver iterates the experimental datasets over gap and composition
// sweeps and writes comparison figures for the central (Γ̄, φ=0) and
// oblique (M̄, φ=70.5°) valleys.
package valleymag
