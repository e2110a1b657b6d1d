// SPDX-License-Identifier: MIT
// Package sweep: sentinel error set. Entry points return these sentinels
// (wrapped with an operation tag); tests match via errors.Is.

package sweep

import "errors"

var (
	// ErrBadDomain indicates a swept domain with lo ≥ hi.
	ErrBadDomain = errors.New("sweep: domain lower bound must be below upper bound")

	// ErrBadPoints indicates a sample count below two; a sweep needs at
	// least its two endpoints.
	ErrBadPoints = errors.New("sweep: at least 2 sample points required")

	// ErrNilGapFunc indicates a composition sweep without a gap
	// conversion function.
	ErrNilGapFunc = errors.New("sweep: composition axis requires a gap conversion function")

	// ErrBadAxis indicates an Axis value outside the defined enum.
	ErrBadAxis = errors.New("sweep: unknown independent-variable axis")
)
