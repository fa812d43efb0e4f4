package launchplan

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/spatial/r3"
)

// j2000 is the Julian date of the J2000 epoch.
const j2000 = 2451545.0

// meanElements are heliocentric Keplerian elements referred to the J2000 ecliptic and their
// rates per Julian century: a (AU), e, I (deg), L (deg), ϖ longitude of perihelion (deg) and
// Ω longitude of the ascending node (deg).
type meanElements struct {
	a, e, I, L, ϖ, Ω       float64
	da, de, dI, dL, dϖ, dΩ float64
}

// Approximate positions of the planets, Standish (JPL), table 1, valid from 1800 to 2050.
// Earth is the Earth-Moon barycenter.
var standishElements = map[string]meanElements{
	"Mercury": {0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	"Venus": {0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	"Earth": {1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
	"Mars": {1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	"Jupiter": {5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	"Saturn": {9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	"Uranus": {19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	"Neptune": {30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
	"Pluto": {39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684,
		-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482},
}

// MeanElements is a Source computing positions from mean Keplerian elements. It needs no data
// file and is accurate to a fraction of a degree between 1800 and 2050.
type MeanElements struct{}

// NewMeanElements returns the mean elements source.
func NewMeanElements() *MeanElements {
	return &MeanElements{}
}

// Name implements the Source interface.
func (m *MeanElements) Name() string {
	return "elements"
}

// Supports implements the Source interface.
func (m *MeanElements) Supports(b Body) bool {
	if b.IsSun() {
		return true
	}
	_, ok := standishElements[b.Name]
	return ok
}

// Position implements the Source interface.
func (m *MeanElements) Position(b Body, e Epoch) (r3.Vec, error) {
	if b.IsSun() {
		return r3.Vec{}, nil
	}
	el, ok := standishElements[b.Name]
	if !ok {
		return r3.Vec{}, &UnknownBodyError{Name: b.ID(), Source: m.Name()}
	}
	if y := e.Year(); y < 1800 || y > 2050 {
		return r3.Vec{}, fmt.Errorf("%w: mean elements are valid from 1800 to 2050, got %s", ErrOutOfRange, e)
	}
	T := (e.JD() - j2000) / 36525
	a := el.a + T*el.da
	ecc := el.e + T*el.de
	I := unit.AngleFromDeg(el.I + T*el.dI)
	L := el.L + T*el.dL
	ϖ := el.ϖ + T*el.dϖ
	Ω := unit.AngleFromDeg(el.Ω + T*el.dΩ)
	ω := unit.AngleFromDeg(ϖ - Ω.Deg())
	M := unit.AngleFromDeg(normalizeDegrees(L - ϖ))

	E := solveKepler(M.Rad(), ecc)
	// Position in the orbital plane, perihelion along x.
	xp := a * (math.Cos(E) - ecc)
	yp := a * math.Sqrt(1-ecc*ecc) * math.Sin(E)

	sω, cω := math.Sincos(ω.Rad())
	sΩ, cΩ := math.Sincos(Ω.Rad())
	sI, cI := math.Sincos(I.Rad())
	return r3.Vec{
		X: (cω*cΩ-sω*sΩ*cI)*xp + (-sω*cΩ-cω*sΩ*cI)*yp,
		Y: (cω*sΩ+sω*cΩ*cI)*xp + (-sω*sΩ+cω*cΩ*cI)*yp,
		Z: (sω*sI)*xp + (cω*sI)*yp,
	}, nil
}
