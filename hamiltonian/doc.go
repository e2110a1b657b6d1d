// Package hamiltonian builds and diagonalizes the band-edge Hamiltonian of
// a lead-chalcogenide valley with mean-field magnetic exchange.
//
// The model is the four-level picture of Bauer & Zawadzki 1992: the
// conduction and valence band-edge doublets {c↑, c↓, v↑, v↓} of one
// L-point valley whose axis is tilted by an angle φ from the applied
// magnetic field. Three contributions enter the 4×4 real symmetric matrix:
//
//	bulk     diag(+Eg/2, +Eg/2, −Eg/2, −Eg/2)
//	Zeeman   ±½ μB·|B| (g∥ cosφ σz + g⊥ sinφ σx) per doublet, with the
//	         two-band-model g-factors g∥ = 4·m0·vt²/Eg, g⊥ = 4·m0·vt·vl/Eg
//	exchange ±½ (J cos²φ + J1 sin²φ) σz ± ½ J2 sinφ cosφ σx, with
//	         (J,J1,J2) = (A,a1,a2) for conduction and (B,b1,b2) for valence
//
// At φ = 0 (central Γ̄ valley) the conduction doublet splits by exactly A
// and the valence doublet by exactly B; the oblique M̄ valleys sit at
// φ = 70.5°. Diagonalization is delegated to gonum's symmetric eigensolver;
// a failed factorization surfaces as ErrEigenFailed, never as a silent
// zero spectrum.
package hamiltonian
