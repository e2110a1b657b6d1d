// SPDX-License-Identifier: MIT
// Package hamiltonian: sentinel error set. Tests match via errors.Is.

package hamiltonian

import "errors"

// ErrEigenFailed indicates that the symmetric eigendecomposition of the
// assembled matrix did not converge. Non-finite matrix entries (e.g. a
// Zeeman term evaluated at Eg = 0 in nonzero field) are the usual cause.
var ErrEigenFailed = errors.New("hamiltonian: eigendecomposition failed")
