package launchplan

import (
	"fmt"
	"os"
	"sync"

	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"gonum.org/v1/gonum/spatial/r3"
)

// VSOP87 is a Source backed by the VSOP87B files (VSOP87B.mer to VSOP87B.nep) and by
// Meeus' analytic theory for Pluto.
// Each planet file is read once, on first use or on Load, and shared for the lifetime of the process.
type VSOP87 struct {
	dir    string
	series [8]vsopSeries
}

type vsopSeries struct {
	once   sync.Once
	planet *planetposition.V87Planet
	err    error
}

// NewVSOP87 returns a VSOP87 source reading its files from dir. An empty dir falls back to
// the VSOP87 environment variable, which is also what the meeus library uses.
func NewVSOP87(dir string) *VSOP87 {
	if dir == "" {
		dir = os.Getenv("VSOP87")
	}
	return &VSOP87{dir: dir}
}

// Name implements the Source interface.
func (v *VSOP87) Name() string {
	return "vsop87"
}

// Dir returns the directory of the VSOP87 files.
func (v *VSOP87) Dir() string {
	return v.dir
}

// vsopIndex returns the planetposition index of the body, or -1 if none.
func vsopIndex(b Body) int {
	switch b.Name {
	case Mercury.Name:
		return planetposition.Mercury
	case Venus.Name:
		return planetposition.Venus
	case Earth.Name:
		return planetposition.Earth
	case Mars.Name:
		return planetposition.Mars
	case Jupiter.Name:
		return planetposition.Jupiter
	case Saturn.Name:
		return planetposition.Saturn
	case Uranus.Name:
		return planetposition.Uranus
	case Neptune.Name:
		return planetposition.Neptune
	default:
		return -1
	}
}

// Supports implements the Source interface.
func (v *VSOP87) Supports(b Body) bool {
	return b.IsSun() || b.Equals(Pluto) || vsopIndex(b) >= 0
}

// Load reads every planet file now instead of on first use.
func (v *VSOP87) Load() error {
	for i := range v.series {
		if _, err := v.planet(i); err != nil {
			return err
		}
	}
	return nil
}

func (v *VSOP87) planet(idx int) (*planetposition.V87Planet, error) {
	s := &v.series[idx]
	s.once.Do(func() {
		if v.dir == "" {
			s.err = &EphemerisLoadError{Source: v.Name(), Path: "(unset)", Err: fmt.Errorf("no VSOP87 directory configured")}
			return
		}
		planet, err := planetposition.LoadPlanetPath(idx, v.dir)
		if err != nil {
			s.err = &EphemerisLoadError{Source: v.Name(), Path: v.dir, Err: fmt.Errorf("planet number %d: %w", idx+1, err)}
			return
		}
		s.planet = planet
	})
	return s.planet, s.err
}

// Position implements the Source interface.
func (v *VSOP87) Position(b Body, e Epoch) (r3.Vec, error) {
	if b.IsSun() {
		return r3.Vec{}, nil
	}
	jde := e.JD()
	if b.Equals(Pluto) {
		// Special case in Sonia Keys' Meeus
		if y := e.Year(); y < 1885 || y > 2099 {
			return r3.Vec{}, fmt.Errorf("%w: Pluto is only available from 1885 to 2099, got %s", ErrOutOfRange, e)
		}
		l, lat, r := pluto.Heliocentric(jde)
		return eclipticToCartesian(l.Rad(), lat.Rad(), r), nil
	}
	idx := vsopIndex(b)
	if idx < 0 {
		return r3.Vec{}, &UnknownBodyError{Name: b.ID(), Source: v.Name()}
	}
	planet, err := v.planet(idx)
	if err != nil {
		return r3.Vec{}, err
	}
	l, lat, r := planet.Position2000(jde)
	return eclipticToCartesian(l.Rad(), lat.Rad(), r), nil
}
