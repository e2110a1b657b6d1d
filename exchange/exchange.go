// SPDX-License-Identifier: MIT

package exchange

// table holds the measured Bauer Table 3 rows, indexed by Dataset.
// Values are in eV. The fluctuation terms a2/b2 are intentionally absent:
// they are derived in Select so the published measured constants remain
// the single source of truth.
var table = [numDatasets]row{
	Dataset0: {cond: Condition{X: 0.0142, T: 1.7}, a: 0.032, a1: 0.03, b: 0.0066, b1: 0.0075},
	Dataset1: {cond: Condition{X: 0.024, T: 1.7}, a: 0.0244, a1: 0.02, b: 0.006, b1: 0.0025},
	Dataset2: {cond: Condition{X: 0.024, T: 6}, a: 0.024, a1: 0.018, b: 0.0078, b1: 0.0009},
	Dataset3: {cond: Condition{X: 0.024, T: 12}, a: 0.022, a1: 0.0175, b: 0.0097, b1: 0.0022},
}

// Valid reports whether d names one of the four measured datasets.
func (d Dataset) Valid() bool { return d >= Dataset0 && d < numDatasets }

// Condition returns the (x, T) measurement condition of dataset d and
// reports whether d names a measured dataset. An invalid index yields
// (Condition{}, false); there is no default condition to fall back to.
func (d Dataset) Condition() (Condition, bool) {
	if !d.Valid() {
		return Condition{}, false
	}

	return table[d].cond, true
}

// Select returns the six exchange parameters of dataset d with the
// configured scale factor applied (default 1).
//
// The fluctuation terms are derived here, exactly as published:
// A2 = a1 − A and B2 = b1 − B, computed from the stored measured values
// before scaling. The selection itself is announced on the configured
// logger before validation, so a rejected index still leaves a trace of
// the attempt; the physical condition follows for valid indices only.
//
// Returns ErrUnknownDataset for any index outside {0,1,2,3}; there is no
// silent fallback and no default substitution.
//
// Complexity: O(1).
func Select(d Dataset, opts ...Option) (Params, error) {
	o := gatherOptions(opts...)
	o.logger.Printf("exchange: Bauer PbEuSe data set %d selected with scale factor %g", d, o.scale)

	if !d.Valid() {
		return Params{}, ErrUnknownDataset
	}

	r := table[d]
	o.logger.Printf("exchange: this data corresponds to x = %g, T = %g K", r.cond.X, r.cond.T)

	return Params{
		A:  r.a * o.scale,
		A1: r.a1 * o.scale,
		A2: (r.a1 - r.a) * o.scale,
		B:  r.b * o.scale,
		B1: r.b1 * o.scale,
		B2: (r.b1 - r.b) * o.scale,
	}, nil
}
