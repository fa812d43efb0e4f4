package launchplan

import (
	"errors"
	"fmt"
)

var (
	// ErrDateFormat is matched by every *DateFormatError.
	ErrDateFormat = errors.New("invalid date")
	// ErrUnknownBody is matched by every *UnknownBodyError.
	ErrUnknownBody = errors.New("unknown body")
	// ErrEphemerisLoad is matched by every *EphemerisLoadError.
	ErrEphemerisLoad = errors.New("ephemeris could not be loaded")
	// ErrCentralBody is returned when the Sun is used where an orbiting body is required.
	ErrCentralBody = errors.New("the Sun is the central body and has no heliocentric orbit")
	// ErrOutOfRange is returned when an epoch is outside the time span covered by an ephemeris source.
	ErrOutOfRange = errors.New("epoch outside of the ephemeris time span")
)

// DateFormatError is returned for any date which is not a valid "YYYY-MM-DD" calendar date.
type DateFormatError struct {
	Input string
	Err   error
}

func (e *DateFormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid date %q: use YYYY-MM-DD", e.Input)
	}
	return fmt.Sprintf("invalid date %q: use YYYY-MM-DD: %s", e.Input, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DateFormatError) Unwrap() error { return e.Err }

// Is allows errors.Is(err, ErrDateFormat).
func (e *DateFormatError) Is(target error) bool { return target == ErrDateFormat }

// UnknownBodyError is returned when a body identifier is not in the catalog or not
// covered by the ephemeris source.
type UnknownBodyError struct {
	Name   string
	Source string // set when the catalog knows the body but the source does not
}

func (e *UnknownBodyError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("body '%s' is not available in the %s ephemeris", e.Name, e.Source)
	}
	return fmt.Sprintf("undefined body '%s'", e.Name)
}

// Is allows errors.Is(err, ErrUnknownBody).
func (e *UnknownBodyError) Is(target error) bool { return target == ErrUnknownBody }

// EphemerisLoadError is returned when the dataset backing a source is missing or corrupt.
// It is not recoverable per call: the same error is returned until the process restarts.
type EphemerisLoadError struct {
	Source string
	Path   string
	Err    error
}

func (e *EphemerisLoadError) Error() string {
	return fmt.Sprintf("could not load %s ephemeris from %s: %s", e.Source, e.Path, e.Err)
}

// Unwrap returns the underlying I/O or parse error.
func (e *EphemerisLoadError) Unwrap() error { return e.Err }

// Is allows errors.Is(err, ErrEphemerisLoad).
func (e *EphemerisLoadError) Is(target error) bool { return target == ErrEphemerisLoad }
