package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepMask(t *testing.T) {
	thetas := []float64{0.1, 0.5, 0.3, 1.2, 0.5}

	mask, kept := keepMask(thetas, 0.5)
	assert.Equal(t, []bool{true, true, true, false, true}, mask)
	assert.Equal(t, 4, kept)

	mask, kept = keepMask(thetas, 0)
	assert.Equal(t, []bool{false, false, false, false, false}, mask)
	assert.Equal(t, 0, kept)

	mask, kept = keepMask(nil, math.Pi)
	assert.Empty(t, mask)
	assert.Equal(t, 0, kept)
}

func TestAppendMasked(t *testing.T) {
	var (
		src  = []float64{1, 2, 3, 4}
		mask = []bool{true, false, false, true}
	)
	out := appendMasked(nil, src, mask)
	assert.Equal(t, []float64{1, 4}, out)

	// rows of a second file are appended after the first, order preserved
	out = appendMasked(out, []float64{5, 6, 7}, []bool{false, true, true})
	assert.Equal(t, []float64{1, 4, 6, 7}, out)

	out = appendMasked(out, []float64{8}, []bool{false})
	assert.Equal(t, []float64{1, 4, 6, 7}, out)
}

func TestDiffColumns(t *testing.T) {
	ref := []string{"inclination", "mass1", "mass2", "tc"}

	missing, extra := diffColumns(ref, []string{"inclination", "mass1", "mass2", "tc"})
	assert.Empty(t, missing)
	assert.Empty(t, extra)

	missing, extra = diffColumns(ref, []string{"distance", "mass1", "tc"})
	assert.Equal(t, []string{"inclination", "mass2"}, missing)
	assert.Equal(t, []string{"distance"}, extra)

	missing, extra = diffColumns(nil, nil)
	assert.Empty(t, missing)
	assert.Empty(t, extra)
}

func TestBinaryAt(t *testing.T) {
	cols := map[string][]float64{
		"mass1":       {30, 10},
		"mass2":       {25, 5},
		"spin1x":      {0.1, 0},
		"spin1y":      {0.2, 0},
		"spin1z":      {0.3, 0.9},
		"spin2x":      {-0.1, 0},
		"spin2y":      {-0.2, 0},
		"spin2z":      {-0.3, -0.9},
		"inclination": {0.5, 2.5},
	}

	b := binaryAt(cols, 0)
	assert.Equal(t, 30.0, b.Mass1)
	assert.Equal(t, 25.0, b.Mass2)
	assert.Equal(t, 0.1, b.Spin1.X)
	assert.Equal(t, 0.2, b.Spin1.Y)
	assert.Equal(t, 0.3, b.Spin1.Z)
	assert.Equal(t, -0.3, b.Spin2.Z)
	assert.Equal(t, 0.5, b.Inclination)

	b = binaryAt(cols, 1)
	assert.Equal(t, 10.0, b.Mass1)
	assert.Equal(t, 0.9, b.Spin1.Z)
	assert.Equal(t, 2.5, b.Inclination)
}

func TestScanThetasAgainstMask(t *testing.T) {
	// a full scan over in-memory columns: every row at or below the
	// threshold is kept, every row above is dropped
	cols := map[string][]float64{
		"mass1":       {30, 30, 30},
		"mass2":       {25, 25, 25},
		"spin1x":      {0, 0, 0},
		"spin1y":      {0, 0, 0},
		"spin1z":      {0, 0, 0},
		"spin2x":      {0, 0, 0},
		"spin2y":      {0, 0, 0},
		"spin2z":      {0, 0, 0},
		"inclination": {0.1, 0.9, 0.4},
	}
	thetas := make([]float64, 3)
	for i := range thetas {
		th, err := Theta(binaryAt(cols, i), 30)
		require.NoError(t, err)
		thetas[i] = th
	}
	mask, kept := keepMask(thetas, 0.5)
	assert.Equal(t, []bool{true, false, true}, mask)
	assert.Equal(t, 2, kept)
}
