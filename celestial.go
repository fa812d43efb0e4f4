package launchplan

import (
	"strings"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.495978707e8
	// SunGM is the standard gravitational parameter of the Sun in km^3/s^2.
	SunGM = 1.32712440018e11
)

// Body defines a celestial body known to the planner.
// Bodies are identified by their lowercase name; Name is title cased for display.
type Body struct {
	Name   string
	Radius float64 // km
	a      float64 // mean heliocentric semi-major axis, km
	μ      float64
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (b Body) GM() float64 {
	return b.μ
}

// SemiMajorAxis returns the mean heliocentric semi-major axis of this body in km.
// It is -1 for the Sun.
func (b Body) SemiMajorAxis() float64 {
	return b.a
}

// ID returns the case-folded identifier of this body, as used by the ephemeris sources.
func (b Body) ID() string {
	return strings.ToLower(b.Name)
}

// IsSun returns whether this body is the central body.
func (b Body) IsSun() bool {
	return b.Name == Sun.Name
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// Equals returns whether the provided body is the same.
func (b Body) Equals(o Body) bool {
	return b.Name == o.Name && b.Radius == o.Radius && b.a == o.a && b.μ == o.μ
}

// BodyFromString returns the body from its name, ignoring case and surrounding spaces.
// This is the only place where identifiers are normalized.
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	case "pluto":
		return Pluto, nil
	default:
		return Body{}, &UnknownBodyError{Name: name}
	}
}

// Bodies returns every body of the catalog, Sun first then by increasing distance.
func Bodies() []Body {
	return []Body{Sun, Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
}

/* Definitions */

// Sun is our closest star.
var Sun = Body{"Sun", 695700, -1, SunGM}

// Mercury is fast.
var Mercury = Body{"Mercury", 2439.7, 57909050, 2.2032e4}

// Venus is poisonous.
var Venus = Body{"Venus", 6051.8, 108208601, 3.24858599e5}

// Earth is home.
var Earth = Body{"Earth", 6378.1363, 149598023, 3.98600433e5}

// Mars is the vacation place.
var Mars = Body{"Mars", 3396.19, 227939282.5616, 4.28283100e4}

// Jupiter is big.
var Jupiter = Body{"Jupiter", 71492.0, 778298361, 1.266865361e8}

// Saturn floats and that's really cool.
var Saturn = Body{"Saturn", 60268.0, 1429394133, 3.7931208e7}

// Uranus is no joke.
var Uranus = Body{"Uranus", 25559.0, 2875038615, 5.7939513e6}

// Neptune is windy.
var Neptune = Body{"Neptune", 24764.0, 4498396441, 6.836529e6}

// Pluto is not a planet and had that down ranking coming. It should have stayed in its lane.
var Pluto = Body{"Pluto", 1188.3, 5906376272, 8.696e2}
