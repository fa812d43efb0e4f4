package launchplan

import (
	"errors"
	"fmt"
	"math"
)

// StandardGravity is the standard acceleration of gravity in m/s^2.
const StandardGravity = 9.80665

// ErrInvalidPropellantInput is returned when a propellant estimate is requested for non physical inputs.
var ErrInvalidPropellantInput = errors.New("invalid propellant input")

// PropellantConfig configures the rocket equation. There is no implicit default: G0 must be set.
type PropellantConfig struct {
	G0 float64 // m/s^2, converts the specific impulse to an exhaust velocity
}

// DefaultPropellantConfig returns the configuration using the standard gravity.
func DefaultPropellantConfig() PropellantConfig {
	return PropellantConfig{G0: StandardGravity}
}

// PropellantEstimate is the propellant budget for a given delta-v, from the Tsiolkovsky rocket equation.
type PropellantEstimate struct {
	PayloadMass        float64 // kg, final mass once all propellant is burned
	DeltaV             float64 // m/s
	Isp                float64 // s
	PropellantMass     float64 // kg
	InitialMass        float64 // kg
	PropellantFraction float64 // propellant mass over initial mass, in [0, 1)
}

func (p PropellantEstimate) String() string {
	return fmt.Sprintf("propellant=%.2f kg\tinitial=%.2f kg\t(%.2f%%) for Δv=%.2f m/s @ Isp=%.2f s", p.PropellantMass, p.InitialMass, 100*p.PropellantFraction, p.DeltaV, p.Isp)
}

// EstimatePropellant returns the propellant needed to impart deltaV (m/s) to payloadMass (kg)
// with an engine of the provided specific impulse (s).
func EstimatePropellant(payloadMass, deltaV, isp float64, cfg PropellantConfig) (PropellantEstimate, error) {
	switch {
	case !(payloadMass > 0):
		return PropellantEstimate{}, fmt.Errorf("%w: payload mass must be positive, got %f kg", ErrInvalidPropellantInput, payloadMass)
	case !(deltaV >= 0):
		return PropellantEstimate{}, fmt.Errorf("%w: delta-v must not be negative, got %f m/s", ErrInvalidPropellantInput, deltaV)
	case !(isp > 0):
		return PropellantEstimate{}, fmt.Errorf("%w: specific impulse must be positive, got %f s", ErrInvalidPropellantInput, isp)
	case !(cfg.G0 > 0):
		return PropellantEstimate{}, fmt.Errorf("%w: g0 must be positive, got %f m/s^2", ErrInvalidPropellantInput, cfg.G0)
	}
	massRatio := math.Exp(deltaV / (isp * cfg.G0))
	initial := payloadMass * massRatio
	propellant := initial - payloadMass
	return PropellantEstimate{
		PayloadMass:        payloadMass,
		DeltaV:             deltaV,
		Isp:                isp,
		PropellantMass:     propellant,
		InitialMass:        initial,
		PropellantFraction: propellant / initial,
	}, nil
}

// EstimatePropellantFor sizes the propellant of the transfer's total delta-v with the provided engine.
func EstimatePropellantFor(sol TransferSolution, payloadMass float64, engine Engine, cfg PropellantConfig) (PropellantEstimate, error) {
	_, isp := engine.Thrust()
	return EstimatePropellant(payloadMass, sol.DeltaVTotal*1e3, isp, cfg)
}
