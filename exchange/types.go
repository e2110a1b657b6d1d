// SPDX-License-Identifier: MIT

package exchange

// Dataset identifies one measured row of the Bauer Table 3 data. The set
// is closed: only the four constants below are valid selector inputs.
type Dataset int

const (
	// Dataset0 corresponds to x = 0.0142, T = 1.7 K.
	Dataset0 Dataset = iota
	// Dataset1 corresponds to x = 0.024, T = 1.7 K.
	Dataset1
	// Dataset2 corresponds to x = 0.024, T = 6 K.
	Dataset2
	// Dataset3 corresponds to x = 0.024, T = 12 K.
	Dataset3

	// numDatasets bounds the valid range; kept private so the enum stays closed.
	numDatasets
)

// Params holds the six exchange coupling constants of one dataset, in eV,
// after the scale factor has been applied. A/A1/A2 act on the conduction
// band, B/B1/B2 on the valence band; the *2 members are the fluctuation
// terms derived as deviation from the mean-field value.
type Params struct {
	A  float64 // conduction mean-field coupling
	A1 float64 // conduction transverse coupling
	A2 float64 // conduction fluctuation, A1 − A
	B  float64 // valence mean-field coupling
	B1 float64 // valence transverse coupling
	B2 float64 // valence fluctuation, B1 − B
}

// Condition describes the physical measurement condition a dataset row was
// taken at: Eu composition fraction X and temperature T in Kelvin.
type Condition struct {
	X float64
	T float64
}

// row is one stored table entry. Only measured constants live here; the
// fluctuation terms are computed at lookup (see Select).
type row struct {
	cond  Condition
	a, a1 float64
	b, b1 float64
}
