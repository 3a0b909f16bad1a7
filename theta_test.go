package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestThetaNoSpin(t *testing.T) {
	// without spins the total angular momentum is the orbital one, so
	// theta reduces to the inclination
	for _, incl := range []float64{0, 0.3, math.Pi / 2, 2.5, math.Pi} {
		b := Binary{
			Mass1:       30,
			Mass2:       25,
			Inclination: incl,
		}
		th, err := Theta(b, 30)
		require.NoError(t, err)
		assert.InDelta(t, incl, th, 1e-9, "inclination %g", incl)
	}
}

func TestThetaAlignedSpin(t *testing.T) {
	b := Binary{
		Mass1:       36,
		Mass2:       29,
		Spin1:       r3.Vec{Z: 0.8},
		Spin2:       r3.Vec{Z: -0.4},
		Inclination: 0.7,
	}
	th, err := Theta(b, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, th, 1e-9)
}

func TestThetaInPlaneSpin(t *testing.T) {
	// with an in-plane spin on a face-on binary, theta is the tilt of J
	// away from z: atan(S1x / |L|)
	b := Binary{
		Mass1: 10,
		Mass2: 10,
		Spin1: r3.Vec{X: 0.9},
	}
	var (
		v    = math.Cbrt(math.Pi * 20 * MTSunSI * 30)
		l    = 100 / v
		want = math.Atan2(90, l)
	)
	th, err := Theta(b, 30)
	require.NoError(t, err)
	assert.InDelta(t, want, th, 1e-12)
}

func TestThetaRange(t *testing.T) {
	spins := []r3.Vec{
		{},
		{X: 0.9},
		{Y: -0.7},
		{Z: 0.99},
		{X: 0.4, Y: 0.4, Z: -0.6},
	}
	for _, s1 := range spins {
		for _, s2 := range spins {
			for _, incl := range []float64{0, 1, 2, math.Pi} {
				b := Binary{
					Mass1:       50,
					Mass2:       5,
					Spin1:       s1,
					Spin2:       s2,
					Inclination: incl,
				}
				th, err := Theta(b, 25)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, th, 0.0)
				assert.LessOrEqual(t, th, math.Pi)
			}
		}
	}
}

func TestThetaInvalid(t *testing.T) {
	b := Binary{Mass1: 10, Mass2: 10}
	for _, f := range []float64{0, -30} {
		_, err := Theta(b, f)
		assert.Error(t, err, "f-lower %g", f)
	}
	_, err := Theta(Binary{Mass1: 10}, 30)
	assert.Error(t, err)
	_, err = Theta(Binary{Mass2: 10}, 30)
	assert.Error(t, err)
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi/2, radians(90), 1e-12)
	assert.InDelta(t, 180.0, degrees(math.Pi), 1e-12)
	assert.InDelta(t, 12.5, degrees(radians(12.5)), 1e-12)
}
