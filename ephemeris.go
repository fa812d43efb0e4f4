package launchplan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Source provides heliocentric positions of solar system bodies.
// Implementations must be safe for concurrent use.
type Source interface {
	// Name identifies the source in logs, metrics and errors.
	Name() string
	// Supports returns whether positions of this body are available.
	Supports(b Body) bool
	// Position returns the heliocentric ecliptic (J2000) position of the body in AU.
	Position(b Body, e Epoch) (r3.Vec, error)
}

// Ephemerides reduces the positions of a Source to the scalar quantities needed by the planner.
// A nil metrics is valid.
type Ephemerides struct {
	src     Source
	workers int
	metrics *Metrics
}

// NewEphemerides returns the adapter over the provided source. Batch queries run on up to
// `workers` goroutines; set to 0 to use all CPUs and to 1 for a sequential evaluation.
func NewEphemerides(src Source, workers int, metrics *Metrics) *Ephemerides {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Ephemerides{src: src, workers: workers, metrics: metrics}
}

// Source returns the underlying source.
func (e *Ephemerides) Source() Source {
	return e.src
}

// Resolve returns the body from its case-insensitive identifier, provided the source covers it.
func (e *Ephemerides) Resolve(name string) (Body, error) {
	body, err := BodyFromString(name)
	if err != nil {
		return Body{}, err
	}
	if !e.src.Supports(body) {
		return Body{}, &UnknownBodyError{Name: name, Source: e.src.Name()}
	}
	return body, nil
}

func (e *Ephemerides) position(b Body, dt Epoch) (r3.Vec, error) {
	if b.IsSun() {
		return r3.Vec{}, nil
	}
	e.metrics.ephemerisQuery(e.src.Name())
	return e.src.Position(b, dt)
}

// DistanceFromSun returns the heliocentric distance of the body in AU.
func (e *Ephemerides) DistanceFromSun(b Body, dt Epoch) (float64, error) {
	if b.IsSun() {
		return 0, ErrCentralBody
	}
	R, err := e.position(b, dt)
	if err != nil {
		return 0, err
	}
	return r3.Norm(R), nil
}

// AngularSeparation returns the angle in degrees, within [0, 180], between both bodies as seen
// from the Sun at the provided epoch.
func (e *Ephemerides) AngularSeparation(a, b Body, dt Epoch) (float64, error) {
	if a.IsSun() || b.IsSun() {
		return 0, ErrCentralBody
	}
	Ra, err := e.position(a, dt)
	if err != nil {
		return 0, err
	}
	Rb, err := e.position(b, dt)
	if err != nil {
		return 0, err
	}
	return separation(Ra, Rb), nil
}

// Distances is the batch variant of DistanceFromSun: the i-th result corresponds to the i-th epoch.
func (e *Ephemerides) Distances(ctx context.Context, b Body, epochs []Epoch) ([]float64, error) {
	if b.IsSun() {
		return nil, ErrCentralBody
	}
	rslt := make([]float64, len(epochs))
	err := e.each(ctx, len(epochs), func(i int) (err error) {
		rslt[i], err = e.DistanceFromSun(b, epochs[i])
		return
	})
	if err != nil {
		return nil, err
	}
	return rslt, nil
}

// AngularSeparations is the batch variant of AngularSeparation: the i-th result corresponds to the i-th epoch.
func (e *Ephemerides) AngularSeparations(ctx context.Context, a, b Body, epochs []Epoch) ([]float64, error) {
	if a.IsSun() || b.IsSun() {
		return nil, ErrCentralBody
	}
	rslt := make([]float64, len(epochs))
	err := e.each(ctx, len(epochs), func(i int) (err error) {
		rslt[i], err = e.AngularSeparation(a, b, epochs[i])
		return
	})
	if err != nil {
		return nil, err
	}
	return rslt, nil
}

// each calls fn for every index in [0, n) on the worker pool and returns the first error.
// Each index is written by exactly one goroutine, so callers may store results by index.
func (e *Ephemerides) each(ctx context.Context, n int, fn func(i int) error) error {
	if e.workers == 1 || n < 2 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
