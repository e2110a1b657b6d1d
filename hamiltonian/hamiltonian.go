// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/valleymag/exchange"
)

// Dim is the dimension of the band-edge basis {c↑, c↓, v↑, v↓}.
const Dim = 4

// Fundamental constants (eV-based unit system).
const (
	// BohrMagneton in eV/T. Change only when changing unit systems.
	BohrMagneton = 5.79e-5

	// electronMassEV is m0·c² in eV, used to express the free-electron
	// mass in the eV/velocity unit system of the g-factor formulas.
	electronMassEV = 0.511e6

	// lightSpeed in m/s.
	lightSpeed = 2.99792458e8
)

// Valley angles between the applied field direction and the valley axis.
// Built into the geometry of the L-point band structure; do not change.
const (
	// PhiCentral is the Γ̄-point (central) valley angle, radians.
	PhiCentral = 0.0

	// PhiOblique is the M̄-point (oblique) valley angle, radians.
	PhiOblique = 70.5 * math.Pi / 180
)

// Params is the immutable bulk configuration of the Hamiltonian, fixed
// once per run and threaded explicitly into every construction (there is
// no ambient global state).
type Params struct {
	Eg     float64    // band gap, eV
	MuBohr float64    // Bohr magneton, eV/T
	BField [3]float64 // applied magnetic field, T
	Vt     float64    // transverse velocity matrix element, m/s
	Vl     float64    // longitudinal velocity matrix element, m/s
}

// WithGap returns a copy of p with the gap replaced; the sweep packages
// use it to rebuild the model at each sampled gap value.
func (p Params) WithGap(eg float64) Params {
	p.Eg = eg

	return p
}

// fieldMagnitude is |B| in T.
func (p Params) fieldMagnitude() float64 {
	return math.Sqrt(p.BField[0]*p.BField[0] + p.BField[1]*p.BField[1] + p.BField[2]*p.BField[2])
}

// Hamiltonian is the opaque model object built from Params. It is
// stateless beyond its parameters and safe to reuse across valleys.
type Hamiltonian struct {
	p Params
}

// New constructs a Hamiltonian from the bulk parameters.
func New(p Params) *Hamiltonian { return &Hamiltonian{p: p} }

// Params returns the bulk configuration the model was built with.
func (h *Hamiltonian) Params() Params { return h.p }

// Matrix assembles the 4×4 real symmetric band-edge matrix for a valley
// at angle phi with exchange couplings exch.
//
// Basis ordering: index 0 = c↑, 1 = c↓, 2 = v↑, 3 = v↓. The conduction
// and valence doublets are decoupled at the band edge (k = 0), so the
// matrix is block diagonal in 2×2 blocks; it is still assembled and
// diagonalized as a full symmetric matrix to keep the spectrum extraction
// uniform.
//
// No input validation: a zero gap in nonzero field yields infinite
// g-factors, which propagate into the matrix and fail the factorization
// (see Levels).
func (h *Hamiltonian) Matrix(phi float64, exch exchange.Params) *mat.SymDense {
	halfEg := h.p.Eg / 2
	sin, cos := math.Sin(phi), math.Cos(phi)
	bMag := h.p.fieldMagnitude()
	m := mat.NewSymDense(Dim, nil)

	// σz / σx Zeeman coefficients, conduction sign.
	var zeemanZ, zeemanX float64

	if bMag != 0 {
		// Two-band-model g-factors; m0 expressed via m0c² so that
		// (m0 v²) carries eV directly.
		m0 := electronMassEV / (lightSpeed * lightSpeed)
		gPar := 4 * m0 * h.p.Vt * h.p.Vt / h.p.Eg
		gPerp := 4 * m0 * h.p.Vt * h.p.Vl / h.p.Eg
		zeemanZ = 0.5 * h.p.MuBohr * bMag * gPar * cos
		zeemanX = 0.5 * h.p.MuBohr * bMag * gPerp * sin
	}

	// Exchange coefficients per doublet: σz mean-field term mixes the
	// longitudinal and transverse couplings with the valley angle, σx
	// carries the fluctuation term.
	zc := 0.5 * (exch.A*cos*cos + exch.A1*sin*sin)
	xc := 0.5 * exch.A2 * sin * cos
	zv := 0.5 * (exch.B*cos*cos + exch.B1*sin*sin)
	xv := 0.5 * exch.B2 * sin * cos

	// Conduction doublet.
	m.SetSym(0, 0, +halfEg+zc+zeemanZ)
	m.SetSym(1, 1, +halfEg-zc-zeemanZ)
	m.SetSym(0, 1, xc+zeemanX)

	// Valence doublet, opposite sign of the magnetic terms.
	m.SetSym(2, 2, -halfEg-zv-zeemanZ)
	m.SetSym(3, 3, -halfEg+zv+zeemanZ)
	m.SetSym(2, 3, -(xv + zeemanX))

	return m
}

// Levels diagonalizes the valley matrix and returns its four eigenvalues
// in ascending order.
//
// Returns ErrEigenFailed when the symmetric factorization does not
// converge (non-finite entries, see Matrix). The input parameters are
// never mutated; repeated calls with identical inputs produce identical
// spectra.
//
// Complexity: O(Dim³), constant for this fixed-size model.
func (h *Hamiltonian) Levels(phi float64, exch exchange.Params) ([]float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(h.Matrix(phi, exch), false); !ok {
		return nil, ErrEigenFailed
	}

	return eig.Values(nil), nil
}
