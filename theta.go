package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// MTSunSI is the solar mass in seconds (GM_sun/c^3).
const MTSunSI = 4.925491025543576e-06

// Binary holds the injection parameters entering the theta computation.
// Masses are in solar masses, spins are dimensionless, the inclination is
// the angle in radians between the orbital angular momentum and the line
// of sight.
type Binary struct {
	Mass1, Mass2 float64
	Spin1, Spin2 r3.Vec
	Inclination  float64
}

// Theta returns the angle in radians between the total angular momentum of
// the binary and the line of sight. The orbital angular momentum is
// Newtonian, evaluated at the reference frequency fLower, in the frame where
// it points along z and the line of sight lies in the x-z plane.
func Theta(b Binary, fLower float64) (float64, error) {
	if fLower <= 0 {
		return 0, badUsage("reference frequency must be positive")
	}
	if b.Mass1 <= 0 || b.Mass2 <= 0 {
		return 0, genericErr(fmt.Sprintf("invalid masses: %g, %g", b.Mass1, b.Mass2))
	}
	var (
		v = math.Cbrt(math.Pi * (b.Mass1 + b.Mass2) * MTSunSI * fLower)
		l = r3.Vec{Z: b.Mass1 * b.Mass2 / v}
		s = r3.Add(r3.Scale(b.Mass1*b.Mass1, b.Spin1), r3.Scale(b.Mass2*b.Mass2, b.Spin2))
		j = r3.Add(l, s)
		n = r3.Vec{X: math.Sin(b.Inclination), Z: math.Cos(b.Inclination)}
	)
	return math.Atan2(r3.Norm(r3.Cross(j, n)), r3.Dot(j, n)), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
