// Package levels classifies a valley spectrum into valence and conduction
// bands and derives optical transition energies.
//
// Exchange and Zeeman corrections can push individual levels across zero,
// so "which band is which" is not decidable from a single spectrum. The
// convention here follows the benchmark-Hamiltonian idea: a reference
// spectrum computed at a comfortably positive gap (0.15 eV in the driver)
// fixes the labeling (its lower half is valence, its upper half
// conduction) and a measured spectrum inherits the labels by rank.
//
// Transition energies are the conduction−valence differences, the
// quantities magneto-optical experiments actually resolve.
package levels
