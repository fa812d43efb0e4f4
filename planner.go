package launchplan

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Planner computes transfers and launch windows from an ephemeris.
// It holds no mutable state and is safe for concurrent use.
type Planner struct {
	eph     *Ephemerides
	logger  log.Logger
	metrics *Metrics
}

// NewPlanner returns a new planner. A nil logger discards all logs and a nil metrics records nothing.
func NewPlanner(eph *Ephemerides, logger log.Logger, metrics *Metrics) *Planner {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Planner{eph: eph, logger: log.With(logger, "component", "planner", "ephemeris", eph.Source().Name()), metrics: metrics}
}

// Ephemerides returns the adapter used by this planner.
func (p *Planner) Ephemerides() *Ephemerides {
	return p.eph
}

// resolvePair resolves both endpoints through the ephemerides.
func (p *Planner) resolvePair(sourceID, targetID string) (src, tgt Body, err error) {
	if src, err = p.eph.Resolve(sourceID); err != nil {
		level.Debug(p.logger).Log("msg", "could not resolve source", "body", sourceID, "err", err)
		return
	}
	if tgt, err = p.eph.Resolve(targetID); err != nil {
		level.Debug(p.logger).Log("msg", "could not resolve target", "body", targetID, "err", err)
	}
	return
}
