// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/valleymag/exchange"
	"github.com/katalvlaran/valleymag/hamiltonian"
	"github.com/katalvlaran/valleymag/levels"
)

// Operation tags for unified error wrapping.
const (
	opLevels     = "EgSweepBothValleys"
	opTransition = "EgSweepTransition"
)

// sweepErrorf wraps err with the entry-point tag, preserving the
// underlying sentinel for errors.Is. Call only with err != nil.
func sweepErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Curve legends, matching the classification order (valence ascending,
// then conduction ascending) and the v-outer/c-inner transition order.
var (
	levelNames      = [levels.BandLevels]string{"v1", "v2", "c1", "c2"}
	transitionNames = [levels.BandLevels]string{"v1-c1", "v1-c2", "v2-c1", "v2-c2"}
)

// validate enforces the domain/sampling contract shared by both entry
// points. Returns plain sentinels; callers wrap with the operation tag.
func validate(gapLim [2]float64, ax AxisConfig, opts Options) error {
	if opts.Points < 2 {
		return ErrBadPoints
	}
	switch ax.Axis {
	case AxisGap:
		if gapLim[0] >= gapLim[1] {
			return ErrBadDomain
		}
	case AxisComposition:
		if ax.XLim[0] >= ax.XLim[1] {
			return ErrBadDomain
		}
		if ax.GapFunc == nil {
			return ErrNilGapFunc
		}
	default:
		return ErrBadAxis
	}

	return nil
}

// linspace samples [lo,hi] inclusively with n points, endpoints exact.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}

// curves holds the computed per-level (or per-transition) series of both
// valleys over the sampled axis.
type curves struct {
	axis    []float64
	central [levels.BandLevels][]float64
	oblique [levels.BandLevels][]float64
}

// valleySample diagonalizes one valley at one sample and classifies the
// spectrum against the benchmark.
func valleySample(bulk hamiltonian.Params, gap, phi float64, exch exchange.Params, bench []float64) (levels.Bands, error) {
	spectrum, err := hamiltonian.New(bulk.WithGap(gap)).Levels(phi, exch)
	if err != nil {
		return levels.Bands{}, err
	}

	return levels.Classify(spectrum, bench)
}

// computeCurves runs the sweep: per sample it derives the gap from the
// active axis, diagonalizes the central valley at that gap and the
// oblique valley at gap+LongGapShift, classifies both against the
// benchmark spectrum, and collects either the level values or the
// transition energies.
func computeCurves(bulk hamiltonian.Params, exch exchange.Params, gapLim [2]float64, benchGap float64, ax AxisConfig, opts Options, transitions bool) (*curves, error) {
	// Benchmark spectrum: bare benchmark-gap Hamiltonian, no exchange.
	bench, err := hamiltonian.New(bulk.WithGap(benchGap)).Levels(hamiltonian.PhiCentral, exchange.Params{})
	if err != nil {
		return nil, err
	}

	c := &curves{}
	switch ax.Axis {
	case AxisGap:
		c.axis = linspace(gapLim[0], gapLim[1], opts.Points)
	case AxisComposition:
		c.axis = linspace(ax.XLim[0], ax.XLim[1], opts.Points)
	}
	for i := range c.central {
		c.central[i] = make([]float64, opts.Points)
		c.oblique[i] = make([]float64, opts.Points)
	}

	var gap float64
	for i, v := range c.axis {
		gap = v
		if ax.Axis == AxisComposition {
			gap = ax.GapFunc(v, ax.Temperature)
		}

		centralBands, err := valleySample(bulk, gap, hamiltonian.PhiCentral, exch, bench)
		if err != nil {
			return nil, err
		}
		obliqueBands, err := valleySample(bulk, gap+opts.LongGapShift, hamiltonian.PhiOblique, exch, bench)
		if err != nil {
			return nil, err
		}

		centralVals := bandValues(centralBands, transitions)
		obliqueVals := bandValues(obliqueBands, transitions)
		for k := 0; k < levels.BandLevels; k++ {
			c.central[k][i] = centralVals[k]
			c.oblique[k][i] = obliqueVals[k]
		}
	}

	return c, nil
}

// bandValues flattens a classified spectrum into the plotted quantities:
// the four level energies, or the four transition energies.
func bandValues(b levels.Bands, transitions bool) []float64 {
	if transitions {
		return b.Transitions()
	}

	out := make([]float64, 0, levels.BandLevels)
	out = append(out, b.Valence...)

	return append(out, b.Conduction...)
}

// EgSweepBothValleys computes the energy levels of both valleys over the
// swept domain and renders them as PNG figures.
//
// The independent variable is either the gap itself over gapLim, or the
// composition configured in ax (the gap then derives per sample through
// ax.GapFunc at ax.Temperature). benchGap fixes the benchmark spectrum
// the levels are classified against. With opts.BothValleysOnOneAxis both
// valleys share one figure (central solid, oblique dashed); otherwise a
// figure per valley is written.
//
// Plotting is a side effect; the only returned value is an error: a
// validation sentinel, or a wrapped collaborator failure. No retries.
func EgSweepBothValleys(bulk hamiltonian.Params, exch exchange.Params, gapLim [2]float64, benchGap float64, ax AxisConfig, opts Options) error {
	if err := validate(gapLim, ax, opts); err != nil {
		return sweepErrorf(opLevels, err)
	}

	c, err := computeCurves(bulk, exch, gapLim, benchGap, ax, opts, false)
	if err != nil {
		return sweepErrorf(opLevels, err)
	}

	xLabel, axisName := axisLabels(ax)
	title := fmt.Sprintf("%s energy levels", opts.Material)

	if opts.BothValleysOnOneAxis {
		series := make([]namedSeries, 0, 2*levels.BandLevels)
		for i, name := range levelNames {
			series = append(series, namedSeries{name: "central " + name, ys: c.central[i]})
		}
		for i, name := range levelNames {
			series = append(series, namedSeries{name: "oblique " + name, ys: c.oblique[i], dashed: true})
		}
		if err = renderLines(title, xLabel, "E (eV)", outPath(opts, "levels", axisName, ""), c.axis, series); err != nil {
			return sweepErrorf(opLevels, err)
		}

		return nil
	}

	central := make([]namedSeries, 0, levels.BandLevels)
	oblique := make([]namedSeries, 0, levels.BandLevels)
	for i, name := range levelNames {
		central = append(central, namedSeries{name: name, ys: c.central[i]})
		oblique = append(oblique, namedSeries{name: name, ys: c.oblique[i], dashed: true})
	}
	if err = renderLines(title+", central valley", xLabel, "E (eV)", outPath(opts, "levels", axisName, "_central"), c.axis, central); err != nil {
		return sweepErrorf(opLevels, err)
	}
	if err = renderLines(title+", oblique valley", xLabel, "E (eV)", outPath(opts, "levels", axisName, "_oblique"), c.axis, oblique); err != nil {
		return sweepErrorf(opLevels, err)
	}

	return nil
}

// EgSweepTransition computes the conduction−valence transition energies
// of both valleys over the gap domain and renders them on one figure
// (central solid, oblique dashed). Same validation and propagation
// contract as EgSweepBothValleys; the independent variable is always the
// gap.
func EgSweepTransition(bulk hamiltonian.Params, exch exchange.Params, gapLim [2]float64, benchGap float64, opts Options) error {
	ax := GapAxis()
	if err := validate(gapLim, ax, opts); err != nil {
		return sweepErrorf(opTransition, err)
	}

	c, err := computeCurves(bulk, exch, gapLim, benchGap, ax, opts, true)
	if err != nil {
		return sweepErrorf(opTransition, err)
	}

	xLabel, axisName := axisLabels(ax)
	series := make([]namedSeries, 0, 2*levels.BandLevels)
	for i, name := range transitionNames {
		series = append(series, namedSeries{name: "central " + name, ys: c.central[i]})
	}
	for i, name := range transitionNames {
		series = append(series, namedSeries{name: "oblique " + name, ys: c.oblique[i], dashed: true})
	}

	title := fmt.Sprintf("%s transition energies", opts.Material)
	if err = renderLines(title, xLabel, "transition energy (eV)", outPath(opts, "transitions", axisName, ""), c.axis, series); err != nil {
		return sweepErrorf(opTransition, err)
	}

	return nil
}

// axisLabels maps the active axis to its x-axis label and filename token.
func axisLabels(ax AxisConfig) (label, name string) {
	if ax.Axis == AxisComposition {
		return "x (Eu fraction)", "x"
	}

	return "Eg (eV)", "gap"
}
