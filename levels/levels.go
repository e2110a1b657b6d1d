package levels

import (
	"errors"
	"sort"
)

// BandLevels is the spectrum size of the four-level band-edge model:
// one spin doublet per band.
const BandLevels = 4

// half splits a spectrum into its valence and conduction ranks.
const half = BandLevels / 2

var (
	// ErrLevelCount indicates a spectrum whose size is not BandLevels.
	ErrLevelCount = errors.New("levels: spectrum must contain exactly 4 levels")

	// ErrBenchOverlap indicates a benchmark spectrum whose halves touch or
	// cross, which leaves the valence/conduction labeling undefined. Use a
	// benchmark gap comfortably above zero.
	ErrBenchOverlap = errors.New("levels: benchmark halves overlap, labeling undefined")
)

// Bands is a classified spectrum: both slices ascending, in eV.
type Bands struct {
	Valence    []float64
	Conduction []float64
}

// Classify labels the four levels of spectrum as valence or conduction by
// rank against the benchmark spectrum bench.
//
// Both inputs are copied and sorted ascending; the positions occupied by
// the benchmark's lower half become valence, its upper half conduction.
// Returns ErrLevelCount unless both spectra hold exactly BandLevels
// values, and ErrBenchOverlap when the benchmark's halves are not
// strictly separated.
func Classify(spectrum, bench []float64) (Bands, error) {
	if len(spectrum) != BandLevels || len(bench) != BandLevels {
		return Bands{}, ErrLevelCount
	}

	sortedBench := append([]float64(nil), bench...)
	sort.Float64s(sortedBench)
	if sortedBench[half-1] >= sortedBench[half] {
		return Bands{}, ErrBenchOverlap
	}

	sorted := append([]float64(nil), spectrum...)
	sort.Float64s(sorted)

	return Bands{
		Valence:    sorted[:half],
		Conduction: sorted[half:],
	}, nil
}

// Transitions returns the conduction−valence differences in a fixed
// order: valence levels ascending in the outer loop, conduction levels
// ascending in the inner loop. For the four-level model this is four
// values; all are non-negative when the classified gap is open.
func (b Bands) Transitions() []float64 {
	out := make([]float64, 0, len(b.Valence)*len(b.Conduction))
	for _, v := range b.Valence {
		for _, c := range b.Conduction {
			out = append(out, c-v)
		}
	}

	return out
}
