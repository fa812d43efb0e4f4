package launchplan

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// fakeSource places each body on a unit circle at the angle (in degrees) returned by its function.
type fakeSource struct {
	angles  map[string]func(Epoch) float64
	failOn  Epoch // Position returns errFake on this epoch, if set
	queries int64
}

var errFake = errors.New("fake ephemeris failure")

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Supports(b Body) bool {
	_, ok := f.angles[b.Name]
	return b.IsSun() || ok
}

func (f *fakeSource) Position(b Body, e Epoch) (r3.Vec, error) {
	atomic.AddInt64(&f.queries, 1)
	if !f.failOn.IsZero() && e.Equal(f.failOn) {
		return r3.Vec{}, errFake
	}
	θ := f.angles[b.Name](e) * deg2rad
	return r3.Vec{X: math.Cos(θ), Y: math.Sin(θ)}, nil
}

// fixedAngle returns a constant angle function.
func fixedAngle(deg float64) func(Epoch) float64 {
	return func(Epoch) float64 { return deg }
}

// daysSince returns the number of days between ref and e.
func daysSince(ref Epoch) func(Epoch) float64 {
	return func(e Epoch) float64 { return e.Time().Sub(ref.Time()).Hours() / 24 }
}

func mustParse(t *testing.T, date string) Epoch {
	t.Helper()
	e, err := ParseDate(date)
	if err != nil {
		t.Fatalf("could not parse %s: %s", date, err)
	}
	return e
}

func elementsPlanner(workers int, metrics *Metrics) *Planner {
	return NewPlanner(NewEphemerides(NewMeanElements(), workers, metrics), nil, metrics)
}

func floatEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
