package launchplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChristopherRabotin/launchplan/weather"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// WeatherAdvisor provides launch site weather advisories. *weather.Client implements it.
type WeatherAdvisor interface {
	Advisory(ctx context.Context, city string, date time.Time) (weather.Advisory, error)
}

// MissionRequest describes the mission to plan.
type MissionRequest struct {
	Source, Target string
	From, Until    string  // launch period, "YYYY-MM-DD", until is exclusive
	Threshold      float64 // degrees
	PayloadMass    float64 // kg
	Engine         Engine
	LaunchSite     string // city for the weather advisory, skipped if empty
}

// MissionPlan is the outcome of a mission plan. Launch, Transfer and Propellant are nil when
// no launch window exists in the requested period; Weather is nil when it was not requested or
// when no forecast covers the launch date.
type MissionPlan struct {
	Windows    WindowReport
	Launch     *LaunchWindowCandidate
	Transfer   *TransferSolution
	Propellant *PropellantEstimate
	Weather    *weather.Advisory
}

// MissionRecord is the flat presentation of a plan.
type MissionRecord struct {
	Windows    WindowReport      `json:"launch_windows"`
	Transfer   *TransferRecord   `json:"trajectory,omitempty"`
	Propellant *PropellantRecord `json:"propellant,omitempty"`
	Weather    *weather.Advisory `json:"weather,omitempty"`
}

// Record returns the rounded presentation of this plan.
func (m MissionPlan) Record() MissionRecord {
	rec := MissionRecord{Windows: m.Windows, Weather: m.Weather}
	if m.Transfer != nil {
		tr := m.Transfer.Record()
		rec.Transfer = &tr
	}
	if m.Propellant != nil {
		pr := m.Propellant.Record()
		rec.Propellant = &pr
	}
	return rec
}

// Mission chains the window scan, the transfer, the propellant sizing and the weather advisory.
type Mission struct {
	planner    *Planner
	propellant PropellantConfig
	weather    WeatherAdvisor
	logger     log.Logger
}

// NewMission returns a new mission planner. The weather advisor may be nil, in which case no
// advisory is ever requested.
func NewMission(planner *Planner, propellant PropellantConfig, advisor WeatherAdvisor, logger log.Logger) *Mission {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Mission{planner: planner, propellant: propellant, weather: advisor, logger: log.With(logger, "component", "mission")}
}

// Plan plans the mission: the launch date is the window of smallest angular separation in the
// requested period, and the propellant is sized for the total delta-v of the transfer from that date.
func (m *Mission) Plan(ctx context.Context, req MissionRequest) (MissionPlan, error) {
	src, tgt, err := m.planner.resolvePair(req.Source, req.Target)
	if err != nil {
		return MissionPlan{}, err
	}
	epochs, err := ParseDateRange(req.From, req.Until)
	if err != nil {
		return MissionPlan{}, err
	}
	if req.Engine == nil {
		return MissionPlan{}, fmt.Errorf("%w: no engine provided", ErrInvalidPropellantInput)
	}
	candidates, err := m.planner.Windows(ctx, src, tgt, epochs, req.Threshold)
	if err != nil {
		return MissionPlan{}, err
	}
	plan := MissionPlan{Windows: NewWindowReport(src, tgt, req.Threshold, candidates)}
	best, ok := BestWindow(candidates)
	if !ok {
		level.Info(m.logger).Log("msg", "no launch window", "source", src.Name, "target", tgt.Name, "from", req.From, "until", req.Until)
		return plan, nil
	}
	plan.Launch = &best

	sol, err := m.planner.Transfer(src, tgt, best.Date)
	if err != nil {
		return MissionPlan{}, err
	}
	plan.Transfer = &sol

	fuel, err := EstimatePropellantFor(sol, req.PayloadMass, req.Engine, m.propellant)
	if err != nil {
		return MissionPlan{}, err
	}
	plan.Propellant = &fuel
	level.Info(m.logger).Log("msg", "mission planned", "launch", best.Date, "engine", req.Engine.Name(), "dv_km_s", sol.DeltaVTotal, "propellant_kg", fuel.PropellantMass)

	if m.weather == nil || req.LaunchSite == "" {
		return plan, nil
	}
	adv, err := m.weather.Advisory(ctx, req.LaunchSite, best.Date.Time())
	switch {
	case errors.Is(err, weather.ErrNoForecast):
		// Forecasts only cover the next few days, most windows are further out.
		level.Warn(m.logger).Log("msg", "no weather forecast for launch date", "site", req.LaunchSite, "launch", best.Date)
	case err != nil:
		return MissionPlan{}, err
	default:
		plan.Weather = &adv
	}
	return plan, nil
}
