package launchplan

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	deg2rad = math.Pi / 180
)

// eclipticToCartesian returns the Cartesian vector of the heliocentric ecliptic
// longitude l, latitude b (both in radians) and radius r.
func eclipticToCartesian(l, b, r float64) r3.Vec {
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	return r3.Vec{X: r * cB * cL, Y: r * cB * sL, Z: r * sB}
}

// separation returns the angle between two vectors in degrees, in [0, 180].
// Computed with atan2 to keep precision near 0 and 180 degrees.
func separation(a, b r3.Vec) float64 {
	θ := math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b)) / deg2rad
	// Guard against -0 and rounding past the bounds.
	return math.Min(math.Max(θ, 0), 180)
}

// normalizeDegrees returns the angle in [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// solveKepler returns the eccentric anomaly for the mean anomaly M (radians) and eccentricity e.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for i := 0; i < 30; i++ {
		δ := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= δ
		if math.Abs(δ) < 1e-14 {
			break
		}
	}
	return E
}

// round2 and round4 implement the display rounding of the output records.
func round2(v float64) float64 { return scalar.Round(v, 2) }

func round4(v float64) float64 { return scalar.Round(v, 4) }
