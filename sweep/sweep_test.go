package sweep_test

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/katalvlaran/valleymag/bandgap"
	"github.com/katalvlaran/valleymag/exchange"
	"github.com/katalvlaran/valleymag/hamiltonian"
	"github.com/katalvlaran/valleymag/levels"
	"github.com/katalvlaran/valleymag/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bulk mirrors the driver's baseline configuration.
func bulk() hamiltonian.Params {
	return hamiltonian.Params{
		Eg:     0.15,
		MuBohr: hamiltonian.BohrMagneton,
		Vt:     4e5,
		Vl:     4e5,
	}
}

// exch is the Bauer dataset-0 tuple used across the sweep tests.
func exch() exchange.Params {
	return exchange.Params{A: 0.032, A1: 0.03, A2: -0.002, B: 0.0066, B1: 0.0075, B2: 0.0009}
}

// smallOpts keeps test sweeps cheap and writes into a scratch dir.
func smallOpts(t *testing.T) sweep.Options {
	t.Helper()
	opts := sweep.DefaultOptions()
	opts.Points = 11
	opts.OutDir = t.TempDir()

	return opts
}

// TestEgSweepBothValleys_BadDomain verifies the fail-fast domain check on
// the gap axis, with the sentinel preserved under the operation tag.
func TestEgSweepBothValleys_BadDomain(t *testing.T) {
	err := sweep.EgSweepBothValleys(bulk(), exch(), [2]float64{0.1, -0.1}, 0.15, sweep.GapAxis(), smallOpts(t))
	assert.ErrorIs(t, err, sweep.ErrBadDomain)
}

// TestEgSweepBothValleys_BadPoints verifies the minimum sample count.
func TestEgSweepBothValleys_BadPoints(t *testing.T) {
	opts := smallOpts(t)
	opts.Points = 1
	err := sweep.EgSweepBothValleys(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, sweep.GapAxis(), opts)
	assert.ErrorIs(t, err, sweep.ErrBadPoints)
}

// TestEgSweepBothValleys_NilGapFunc verifies that a composition sweep
// without a conversion function is rejected.
func TestEgSweepBothValleys_NilGapFunc(t *testing.T) {
	ax := sweep.CompositionAxis(0, 0.5, 10, nil)
	err := sweep.EgSweepBothValleys(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, ax, smallOpts(t))
	assert.ErrorIs(t, err, sweep.ErrNilGapFunc)
}

// TestEgSweepBothValleys_BadAxis verifies the closed axis enum.
func TestEgSweepBothValleys_BadAxis(t *testing.T) {
	ax := sweep.AxisConfig{Axis: sweep.Axis(9)}
	err := sweep.EgSweepBothValleys(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, ax, smallOpts(t))
	assert.ErrorIs(t, err, sweep.ErrBadAxis)
}

// TestEgSweepBothValleys_OneFigure runs a real gap sweep with both
// valleys on one axis and checks the single PNG lands in OutDir.
func TestEgSweepBothValleys_OneFigure(t *testing.T) {
	opts := smallOpts(t)
	opts.BothValleysOnOneAxis = true
	opts.Tag = "d0_s1"

	err := sweep.EgSweepBothValleys(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, sweep.GapAxis(), opts)
	require.NoError(t, err)

	assertFile(t, filepath.Join(opts.OutDir, "PbEuSe_d0_s1_levels_vs_gap.png"))
}

// TestEgSweepBothValleys_SplitFigures runs a composition sweep on split
// axes and checks one PNG per valley.
func TestEgSweepBothValleys_SplitFigures(t *testing.T) {
	opts := smallOpts(t)
	ax := sweep.CompositionAxis(0, 0.5, 1.7, bandgap.Eg)

	err := sweep.EgSweepBothValleys(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, ax, opts)
	require.NoError(t, err)

	assertFile(t, filepath.Join(opts.OutDir, "PbEuSe_levels_vs_x_central.png"))
	assertFile(t, filepath.Join(opts.OutDir, "PbEuSe_levels_vs_x_oblique.png"))
}

// TestEgSweepTransition_Figure runs the transition-energy sweep and
// checks its figure.
func TestEgSweepTransition_Figure(t *testing.T) {
	opts := smallOpts(t)
	opts.Tag = "d2_s1"

	err := sweep.EgSweepTransition(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, opts)
	require.NoError(t, err)

	assertFile(t, filepath.Join(opts.OutDir, "PbEuSe_d2_s1_transitions_vs_gap.png"))
}

// TestEgSweepTransition_BadDomain verifies validation on the transition
// entry point too.
func TestEgSweepTransition_BadDomain(t *testing.T) {
	err := sweep.EgSweepTransition(bulk(), exch(), [2]float64{0, 0}, 0.15, smallOpts(t))
	assert.ErrorIs(t, err, sweep.ErrBadDomain)
}

// TestComputeCurves_SeriesMatchSpectra verifies the core sweep invariant
// sample by sample: the four level values of each valley equal the
// classified ascending eigenvalues of the Hamiltonian rebuilt at that
// sample's gap (the oblique valley at gap+LongGapShift and its own
// angle).
func TestComputeCurves_SeriesMatchSpectra(t *testing.T) {
	opts := smallOpts(t)
	axis, central, oblique, err := sweep.ComputeCurvesForTest(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, sweep.GapAxis(), opts, false)
	require.NoError(t, err)
	require.Len(t, axis, opts.Points)

	bench, err := hamiltonian.New(bulk().WithGap(0.15)).Levels(hamiltonian.PhiCentral, exchange.Params{})
	require.NoError(t, err)

	check := func(series [levels.BandLevels][]float64, gap, phi float64, i int) {
		t.Helper()
		spectrum, err := hamiltonian.New(bulk().WithGap(gap)).Levels(phi, exch())
		require.NoError(t, err)
		b, err := levels.Classify(spectrum, bench)
		require.NoError(t, err)

		want := append(append([]float64(nil), b.Valence...), b.Conduction...)
		got := make([]float64, 0, levels.BandLevels)
		for k := 0; k < levels.BandLevels; k++ {
			got = append(got, series[k][i])
		}
		assert.Equal(t, want, got, "sample %d at gap %g", i, gap)
		assert.True(t, sort.Float64sAreSorted(got), "sample %d must be ascending", i)
	}

	for i, g := range axis {
		check(central, g, hamiltonian.PhiCentral, i)
		check(oblique, g+opts.LongGapShift, hamiltonian.PhiOblique, i)
	}
}

// TestComputeCurves_BranchCrossing pins the shape of the classified v1
// series over an inverting gap at zero field. Labeling is by rank, so the
// series follows whichever eigenvalue branch lies lowest: it tracks
// Eg/2 − A/2 up to the crossing near Eg = (A−B)/2 and −Eg/2 − B/2 beyond
// it. The series is therefore not monotone and peaks strictly inside the
// domain.
func TestComputeCurves_BranchCrossing(t *testing.T) {
	opts := smallOpts(t)
	opts.Points = 201

	axis, central, _, err := sweep.ComputeCurvesForTest(bulk(), exch(), [2]float64{-0.1, 0.1}, 0.15, sweep.GapAxis(), opts, false)
	require.NoError(t, err)

	v1 := central[0]
	require.Len(t, v1, opts.Points)

	// Dataset-0 couplings: A = 0.032, B = 0.0066.
	for i, g := range axis {
		want := math.Min(g/2-0.032/2, -g/2-0.0066/2)
		assert.InDelta(t, want, v1[i], 1e-12, "sample %d at gap %g", i, g)
	}

	peak := 0
	for i := range v1 {
		if v1[i] > v1[peak] {
			peak = i
		}
	}
	assert.Greater(t, peak, 0, "v1 must rise from the lower domain edge")
	assert.Less(t, peak, len(v1)-1, "v1 must fall toward the upper domain edge")
	assert.Less(t, v1[0], v1[peak])
	assert.Less(t, v1[len(v1)-1], v1[peak])

	assert.InDelta(t, -0.066, v1[0], 1e-12)
	assert.InDelta(t, -0.0533, v1[len(v1)-1], 1e-12)
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := sweep.DefaultOptions()
	assert.Equal(t, sweep.DefaultPoints, opts.Points)
	assert.Equal(t, sweep.DefaultLongGapShift, opts.LongGapShift)
	assert.Equal(t, sweep.DefaultMaterial, opts.Material)
	assert.Equal(t, ".", opts.OutDir)
	assert.False(t, opts.BothValleysOnOneAxis)
}

// assertFile fails unless path exists and is non-empty.
func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "expected figure %s", path)
	assert.Positive(t, info.Size(), "figure %s must not be empty", path)
}
