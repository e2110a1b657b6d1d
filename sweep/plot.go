// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure geometry shared by all sweep plots.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// dashedStyle selects the non-solid entry of plotutil's dash table for
// oblique-valley curves.
const dashedStyle = 1

// namedSeries is one legend-labeled curve over the shared sweep axis.
type namedSeries struct {
	name   string
	ys     []float64
	dashed bool
}

// outPath builds the output filename for one figure:
// <Material>[_<Tag>]_<kind>_vs_<axis><suffix>.png inside opts.OutDir.
func outPath(opts Options, kind, axisName, suffix string) string {
	prefix := opts.Material
	if opts.Tag != "" {
		prefix += "_" + opts.Tag
	}

	return filepath.Join(opts.OutDir, fmt.Sprintf("%s_%s_vs_%s%s.png", prefix, kind, axisName, suffix))
}

// renderLines draws the series over xs into a single figure and saves it
// as a PNG at path. Colors cycle through plotutil's palette in series
// order; dashed series use the shared dash pattern.
func renderLines(title, xLabel, yLabel, path string, xs []float64, series []namedSeries) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	for i, s := range series {
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j].X, pts[j].Y = xs[j], s.ys[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		if s.dashed {
			line.Dashes = plotutil.Dashes(dashedStyle)
		}
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	return p.Save(plotWidth, plotHeight, path)
}
