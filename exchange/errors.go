// SPDX-License-Identifier: MIT
// Package exchange: sentinel error set. All selector failures are reported
// through these sentinels and tests check them via errors.Is; the package
// never panics on user-triggered conditions.

package exchange

import "errors"

// ErrUnknownDataset is returned when the requested dataset index is outside
// the closed set {0,1,2,3}. There are only four experimental datasets; the
// selector refuses anything else instead of substituting a default.
var ErrUnknownDataset = errors.New("exchange: only 4 experimental datasets, index must be one of 0,1,2,3")
