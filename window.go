package launchplan

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log/level"
)

// DefaultThreshold is the default angular separation threshold of a launch window, in degrees.
const DefaultThreshold = 3.0

// LaunchWindowCandidate is an epoch at which both bodies are angularly close as seen from the Sun.
type LaunchWindowCandidate struct {
	Date       Epoch
	Separation float64 // degrees, in [0, 180]
}

func (c LaunchWindowCandidate) String() string {
	return fmt.Sprintf("%s (%.2f deg)", c.Date, c.Separation)
}

// FindWindows scans every calendar day in [startDate, endDate) and returns, in chronological
// order, the days when the angular separation between both bodies, as seen from the Sun, is
// strictly less than thresholdDeg.
// An empty range or no qualifying day returns an empty slice and no error.
func (p *Planner) FindWindows(ctx context.Context, sourceID, targetID, startDate, endDate string, thresholdDeg float64) ([]LaunchWindowCandidate, error) {
	src, tgt, err := p.resolvePair(sourceID, targetID)
	if err != nil {
		return nil, err
	}
	epochs, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return p.Windows(ctx, src, tgt, epochs, thresholdDeg)
}

// Windows is FindWindows for already resolved bodies and an explicit, ascending, sequence of epochs.
func (p *Planner) Windows(ctx context.Context, src, tgt Body, epochs []Epoch, thresholdDeg float64) ([]LaunchWindowCandidate, error) {
	if src.IsSun() || tgt.IsSun() {
		return nil, fmt.Errorf("cannot scan %s to %s: %w", src.Name, tgt.Name, ErrCentralBody)
	}
	candidates := []LaunchWindowCandidate{}
	if len(epochs) == 0 {
		return candidates, nil
	}
	start := time.Now()
	separations, err := p.eph.AngularSeparations(ctx, src, tgt, epochs)
	if err != nil {
		return nil, err
	}
	for i, sep := range separations {
		if sep < thresholdDeg {
			candidates = append(candidates, LaunchWindowCandidate{Date: epochs[i], Separation: sep})
		}
	}
	p.metrics.scanned(len(epochs), len(candidates), time.Since(start))
	level.Info(p.logger).Log("msg", "launch windows scanned", "source", src.Name, "target", tgt.Name, "from", epochs[0], "until", epochs[len(epochs)-1], "days", len(epochs), "threshold_deg", thresholdDeg, "found", len(candidates))
	return candidates, nil
}

// BestWindow returns the candidate of smallest separation, the earliest one on ties.
// The boolean is false when there are no candidates.
func BestWindow(candidates []LaunchWindowCandidate) (LaunchWindowCandidate, bool) {
	if len(candidates) == 0 {
		return LaunchWindowCandidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Separation < best.Separation {
			best = c
		}
	}
	return best, true
}
