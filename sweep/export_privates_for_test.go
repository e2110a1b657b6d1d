// SPDX-License-Identifier: MIT

package sweep

import (
	"github.com/katalvlaran/valleymag/exchange"
	"github.com/katalvlaran/valleymag/hamiltonian"
	"github.com/katalvlaran/valleymag/levels"
)

// Test bridge (white-box) for the private sweep kernel.
//
// Exposes computeCurves to the external sweep_test package so curve
// values can be asserted sample by sample without rendering figures.
// Compiles only during tests; invisible in production builds.

// ComputeCurvesForTest runs the private sweep kernel and flattens its
// result: the sampled axis plus the per-level (or per-transition) series
// of both valleys.
func ComputeCurvesForTest(bulk hamiltonian.Params, exch exchange.Params, gapLim [2]float64, benchGap float64, ax AxisConfig, opts Options, transitions bool) (axis []float64, central, oblique [levels.BandLevels][]float64, err error) {
	c, err := computeCurves(bulk, exch, gapLim, benchGap, ax, opts, transitions)
	if err != nil {
		return nil, central, oblique, err
	}

	return c.axis, c.central, c.oblique, nil
}
