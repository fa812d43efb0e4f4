package launchplan

import (
	"fmt"
	"strings"
)

// Engine defines an upper stage engine.
type Engine interface {
	// Name returns the engine designation.
	Name() string
	// Returns the vacuum thrust in Newtons and the specific impulse in seconds.
	Thrust() (thrust, isp float64)
}

// ChemicalEngine is a chemical rocket engine of fixed performance.
type ChemicalEngine struct {
	name   string
	thrust float64
	isp    float64
}

// Name implements the Engine interface.
func (e ChemicalEngine) Name() string {
	return e.name
}

// Thrust implements the Engine interface.
func (e ChemicalEngine) Thrust() (thrust, isp float64) {
	return e.thrust, e.isp
}

func (e ChemicalEngine) String() string {
	return fmt.Sprintf("%s (%.0f kN, Isp=%.1f s)", e.name, e.thrust/1e3, e.isp)
}

// NewGenericEngine returns an engine of the provided thrust (N) and specific impulse (s).
func NewGenericEngine(name string, thrust, isp float64) ChemicalEngine {
	return ChemicalEngine{name, thrust, isp}
}

/* Available engines */

// RL10 is the Aerojet Rocketdyne RL10B-2 used on the Delta IV upper stage.
var RL10 = ChemicalEngine{"RL10B-2", 110.1e3, 465.5}

// MerlinVacuum is the SpaceX Merlin 1D Vacuum of the Falcon 9 second stage.
var MerlinVacuum = ChemicalEngine{"Merlin-1D-Vac", 981e3, 348}

// RS25 is the Space Shuttle Main Engine.
var RS25 = ChemicalEngine{"RS-25", 2279e3, 452.3}

// Vinci is the ArianeGroup upper stage engine of Ariane 6.
var Vinci = ChemicalEngine{"Vinci", 180e3, 457.2}

// EngineFromString returns the engine from its name (case-insensitive).
func EngineFromString(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rl10", "rl10b-2":
		return RL10, nil
	case "merlin", "merlin-1d-vac":
		return MerlinVacuum, nil
	case "rs25", "rs-25":
		return RS25, nil
	case "vinci":
		return Vinci, nil
	default:
		return nil, fmt.Errorf("undefined engine '%s'", name)
	}
}
