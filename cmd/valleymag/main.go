// Command valleymag computes and plots the electronic energy levels of
// semimagnetic PbEuSe from the Bauer & Zawadzki 1992 exchange data.
//
// This is the experiment driver: it fixes the bulk Hamiltonian inputs,
// walks the four experimental datasets (times the scale-factor list),
// and renders three figure sets per iteration: levels vs gap with both
// valleys on one axis, levels vs composition on split axes, and
// transition energies vs gap.
//
// All parameters are edited here in source before a run; the tool
// deliberately has no flags, environment knobs, or config files. It runs
// to completion or aborts on the first error.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/valleymag/bandgap"
	"github.com/katalvlaran/valleymag/exchange"
	"github.com/katalvlaran/valleymag/hamiltonian"
	"github.com/katalvlaran/valleymag/sweep"
)

// Material and baseline condition of the bulk Hamiltonian.
const (
	material    = "PbEuSe"
	composition = 0.1  // Eu fraction, unitless
	temperature = 10.0 // K

	// Velocity matrix elements, m/s.
	velocityT = 4e5
	velocityL = 4e5

	// benchGap is the benchmark gap in eV: it decides which bands count
	// as valence and which as conduction across the sweeps.
	benchGap = 0.15
)

// Sweep domains and per-dataset conditions.
var (
	// gapLim bounds the band-gap domain, eV.
	gapLim = [2]float64{-0.1, 0.1}

	// xLim bounds the composition domain.
	xLim = [2]float64{0, 0.5}

	// datasetTemps are the measurement temperatures of the four Bauer
	// datasets, K; composition sweeps inherit them.
	datasetTemps = [4]float64{1.7, 1.7, 6, 12}

	// scaleFactors multiply the exchange parameters per pass; extend to
	// e.g. {1, 10, 50, 100} for enhanced-exchange studies.
	scaleFactors = []float64{1}
)

func main() {
	bulk := hamiltonian.Params{
		Eg:     bandgap.Eg(composition, temperature),
		MuBohr: hamiltonian.BohrMagneton,
		BField: [3]float64{}, // zero field
		Vt:     velocityT,
		Vl:     velocityL,
	}
	log.Printf("valleymag: baseline gap Eg(%g, %g K) = %g eV", composition, temperature, bulk.Eg)

	for d := exchange.Dataset0; d <= exchange.Dataset3; d++ {
		for _, scale := range scaleFactors {
			exch, err := exchange.Select(d, exchange.WithScaleFactor(scale))
			if err != nil {
				log.Fatalf("valleymag: %v", err)
			}

			opts := sweep.DefaultOptions()
			opts.Material = material
			opts.Tag = fmt.Sprintf("d%d_s%g", d, scale)

			// Levels against the gap, both valleys on one axis.
			opts.BothValleysOnOneAxis = true
			if err = sweep.EgSweepBothValleys(bulk, exch, gapLim, benchGap, sweep.GapAxis(), opts); err != nil {
				log.Fatalf("valleymag: %v", err)
			}

			// Levels against composition at the dataset's temperature,
			// one figure per valley.
			opts.BothValleysOnOneAxis = false
			ax := sweep.CompositionAxis(xLim[0], xLim[1], datasetTemps[d], bandgap.Eg)
			if err = sweep.EgSweepBothValleys(bulk, exch, gapLim, benchGap, ax, opts); err != nil {
				log.Fatalf("valleymag: %v", err)
			}

			// Transition energies against the gap, both valleys.
			if err = sweep.EgSweepTransition(bulk, exch, gapLim, benchGap, opts); err != nil {
				log.Fatalf("valleymag: %v", err)
			}
		}
	}
}
