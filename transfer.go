package launchplan

import (
	"fmt"
	"math"
	"time"

	"github.com/go-kit/log/level"
)

// HohmannTransfer is a two-impulse transfer between two coplanar circular orbits.
// All velocities are in km/s, distances in km.
type HohmannTransfer struct {
	RI, RF                 float64 // initial and final radii
	A                      float64 // semi-major axis of the transfer ellipse
	VI, VF                 float64 // circular velocities at RI and RF
	VDeparture, VArrival   float64 // velocities on the transfer ellipse at RI and RF
	ΔvDeparture, ΔvArrival float64
	TOF                    time.Duration
	tofSeconds             float64
}

// Hohmann computes an Hohmann transfer between the circular orbits of radii rI and rF about the
// provided body. Both radii must be strictly positive.
func Hohmann(rI, rF float64, body Body) HohmannTransfer {
	μ := body.GM()
	aTransfer := 0.5 * (rI + rF)
	tofSec := math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/μ)
	h := HohmannTransfer{
		RI:         rI,
		RF:         rF,
		A:          aTransfer,
		VI:         math.Sqrt(μ / rI),
		VF:         math.Sqrt(μ / rF),
		VDeparture: math.Sqrt(2 * μ * rF / (rI * (rI + rF))),
		VArrival:   math.Sqrt(2 * μ * rI / (rF * (rI + rF))),
		TOF:        time.Duration(tofSec * float64(time.Second)),
		tofSeconds: tofSec,
	}
	h.ΔvDeparture = math.Abs(h.VDeparture - h.VI)
	h.ΔvArrival = math.Abs(h.VF - h.VArrival)
	return h
}

// Δv returns the total delta-v of the transfer.
func (h HohmannTransfer) Δv() float64 {
	return h.ΔvDeparture + h.ΔvArrival
}

// TOFDays returns the time of flight in days, without the nanosecond truncation of TOF.
func (h HohmannTransfer) TOFDays() float64 {
	return h.tofSeconds / secondsPerDay
}

// TransferSolution is the heliocentric Hohmann transfer from one body to another at a departure epoch.
// Values are kept at full precision; use Record for the rounded presentation.
type TransferSolution struct {
	Source, Target  Body
	Departure       Epoch
	SemiMajorAxis   float64 // km
	TransferTime    float64 // days
	DeltaVDeparture float64 // km/s
	DeltaVArrival   float64 // km/s
	DeltaVTotal     float64 // km/s
	R1, R2          float64 // heliocentric distances at departure, km
}

// TimeOfFlight returns the transfer time as a duration.
func (s TransferSolution) TimeOfFlight() time.Duration {
	return time.Duration(s.TransferTime * secondsPerDay * float64(time.Second))
}

// ArrivalDate returns the date at which the transfer reaches the target orbit.
func (s TransferSolution) ArrivalDate() time.Time {
	return s.Departure.Time().Add(s.TimeOfFlight())
}

func (s TransferSolution) String() string {
	return fmt.Sprintf("%s -> %s @ %s: TOF=%.2f days\tΔv=%.4f km/s (departure=%.4f, arrival=%.4f)", s.Source.Name, s.Target.Name, s.Departure, s.TransferTime, s.DeltaVTotal, s.DeltaVDeparture, s.DeltaVArrival)
}

// PlanTransfer computes the Hohmann transfer from sourceID to targetID departing on the provided
// "YYYY-MM-DD" date.
// Both orbits are taken as circular and coplanar, of radius equal to the heliocentric distance of
// each body at departure: this is the accepted approximation, not true orbital radii.
func (p *Planner) PlanTransfer(sourceID, targetID, departureDate string) (TransferSolution, error) {
	src, tgt, err := p.resolvePair(sourceID, targetID)
	if err != nil {
		return TransferSolution{}, err
	}
	departure, err := ParseDate(departureDate)
	if err != nil {
		return TransferSolution{}, err
	}
	return p.Transfer(src, tgt, departure)
}

// Transfer is PlanTransfer for already resolved bodies and parsed epoch.
func (p *Planner) Transfer(src, tgt Body, departure Epoch) (TransferSolution, error) {
	if src.IsSun() || tgt.IsSun() {
		return TransferSolution{}, fmt.Errorf("cannot transfer from %s to %s: %w", src.Name, tgt.Name, ErrCentralBody)
	}
	r1AU, err := p.eph.DistanceFromSun(src, departure)
	if err != nil {
		return TransferSolution{}, err
	}
	r2AU, err := p.eph.DistanceFromSun(tgt, departure)
	if err != nil {
		return TransferSolution{}, err
	}
	hohmann := Hohmann(r1AU*AU, r2AU*AU, Sun)
	sol := TransferSolution{
		Source:          src,
		Target:          tgt,
		Departure:       departure,
		SemiMajorAxis:   hohmann.A,
		TransferTime:    hohmann.TOFDays(),
		DeltaVDeparture: hohmann.ΔvDeparture,
		DeltaVArrival:   hohmann.ΔvArrival,
		DeltaVTotal:     hohmann.Δv(),
		R1:              hohmann.RI,
		R2:              hohmann.RF,
	}
	p.metrics.transferPlanned()
	level.Debug(p.logger).Log("msg", "transfer planned", "source", src.Name, "target", tgt.Name, "departure", departure, "tof_days", sol.TransferTime, "dv_km_s", sol.DeltaVTotal)
	return sol, nil
}
