package bandgap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/valleymag/bandgap"
	"github.com/stretchr/testify/assert"
)

// TestEg_Deterministic verifies that Eg is pure: repeated calls with the
// same inputs yield the bit-identical result (exact float equality).
func TestEg_Deterministic(t *testing.T) {
	inputs := [][2]float64{
		{0, 0},
		{0.1, 10},
		{0.024, 1.7},
		{0.5, 300},
		{1, 4.2},
	}
	for _, in := range inputs {
		first := bandgap.Eg(in[0], in[1])
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, bandgap.Eg(in[0], in[1]),
				"Eg(%g,%g) must be deterministic", in[0], in[1])
		}
	}
}

// TestEg_FormulaRegression pins Eg against a direct evaluation of the
// documented formula for a spread of inputs, including the driver's
// baseline point (x=0.1, T=10 K).
func TestEg_FormulaRegression(t *testing.T) {
	formula := func(x, T float64) float64 {
		return (72 - 710*x + 2440*x*x - 4750*x*x*x - 22.5 +
			math.Sqrt(506+0.1*(T-4.2)*(T-4.2))) / 1000
	}

	cases := []struct {
		name string
		x, T float64
	}{
		{"driver baseline", 0.1, 10},
		{"pure PbSe at low T", 0, 1.7},
		{"bauer composition", 0.024, 6},
		{"upper sweep bound", 0.5, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, formula(tc.x, tc.T), bandgap.Eg(tc.x, tc.T),
				"Eg must equal the direct formula evaluation")
		})
	}
}

// TestEg_BaselineValue fixes the numeric value at the driver's baseline
// so that accidental coefficient edits are caught immediately.
func TestEg_BaselineValue(t *testing.T) {
	// (72 − 71 + 24.4 − 4.75 − 22.5 + √(506 + 0.1·(5.8)²)) / 1000
	want := (72 - 71 + 24.4 - 4.75 - 22.5 + math.Sqrt(509.364)) / 1000
	assert.InDelta(t, want, bandgap.Eg(0.1, 10), 1e-15)
	assert.InDelta(t, 0.0207191, bandgap.Eg(0.1, 10), 1e-6)
}

// TestEg_TemperatureSymmetry checks the sqrt term: temperatures
// equidistant from the 4.2 K reference give identical gaps.
func TestEg_TemperatureSymmetry(t *testing.T) {
	assert.Equal(t, bandgap.Eg(0.1, 4.2+7), bandgap.Eg(0.1, 4.2-7),
		"gap must be symmetric about the reference temperature")
}

// TestEg_NoValidation documents that out-of-range inputs are accepted and
// still return a finite value (the model does not enforce physicality).
func TestEg_NoValidation(t *testing.T) {
	assert.False(t, math.IsNaN(bandgap.Eg(-1, -50)))
	assert.False(t, math.IsInf(bandgap.Eg(3, 1e6), 0))
}
