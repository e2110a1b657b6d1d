// SPDX-License-Identifier: MIT

package sweep

import "github.com/katalvlaran/valleymag/bandgap"

// Axis selects the independent variable of a level sweep.
type Axis int

const (
	// AxisGap sweeps the band gap directly over the gap domain.
	AxisGap Axis = iota

	// AxisComposition sweeps the Eu composition x at a fixed temperature
	// and converts each sample to a gap through a bandgap.Func.
	AxisComposition
)

// AxisConfig bundles the independent-variable selection with the data a
// composition sweep needs. Constructed per sweep call and consumed
// immediately; the zero value is a plain gap sweep.
type AxisConfig struct {
	Axis        Axis
	XLim        [2]float64   // composition domain, AxisComposition only
	Temperature float64      // fixed T in K, AxisComposition only
	GapFunc     bandgap.Func // x → Eg conversion, AxisComposition only
}

// GapAxis configures a sweep with the band gap as independent variable.
func GapAxis() AxisConfig { return AxisConfig{Axis: AxisGap} }

// CompositionAxis configures a sweep over Eu composition in [lo,hi] at
// temperature temp, with f converting composition to gap.
func CompositionAxis(lo, hi, temp float64, f bandgap.Func) AxisConfig {
	return AxisConfig{
		Axis:        AxisComposition,
		XLim:        [2]float64{lo, hi},
		Temperature: temp,
		GapFunc:     f,
	}
}

// Documented defaults; DefaultOptions is the single source of truth that
// must mirror these constants.
const (
	// DefaultPoints samples the domain densely enough for smooth curves
	// at the 4-level model's cost (O(Points) tiny diagonalizations).
	DefaultPoints = 201

	// DefaultLongGapShift is the extra gap of the oblique valley in eV:
	// valence moved further down, conduction further up, as produced by
	// ~1% Bi doping (Mandal & Springholz 2017).
	DefaultLongGapShift = 0.09

	// DefaultMaterial labels plot titles and output files.
	DefaultMaterial = "PbEuSe"
)

// Options configures rendering and sampling of one sweep.
//
// Fields:
//   - Points               — number of samples across the domain (≥ 2).
//   - BothValleysOnOneAxis — true: one figure, central solid + oblique
//     dashed; false: one figure per valley.
//   - LongGapShift         — extra oblique-valley gap in eV.
//   - Material             — plot title / filename prefix.
//   - OutDir               — directory the PNG figures are written to.
//   - Tag                  — optional filename suffix distinguishing runs
//     (the driver uses the dataset index and scale factor).
type Options struct {
	Points               int
	BothValleysOnOneAxis bool
	LongGapShift         float64
	Material             string
	OutDir               string
	Tag                  string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Points:       DefaultPoints,
		LongGapShift: DefaultLongGapShift,
		Material:     DefaultMaterial,
		OutDir:       ".",
	}
}
