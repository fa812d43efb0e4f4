package launchplan

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// DateFormat is the only accepted calendar date format.
const DateFormat = "2006-01-02"

const secondsPerDay = 86400.0

// Epoch is a calendar date at 00:00 UTC, without any time of day.
type Epoch struct {
	t time.Time
}

// NewEpoch returns the epoch at midnight UTC of the given calendar date.
// Out of range days are normalized the same way time.Date does.
func NewEpoch(year int, month time.Month, day int) Epoch {
	return Epoch{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// EpochFromTime truncates the provided time to its UTC calendar date.
func EpochFromTime(dt time.Time) Epoch {
	y, m, d := dt.UTC().Date()
	return NewEpoch(y, m, d)
}

// ParseDate parses a strict "YYYY-MM-DD" date. Anything else, including dates which do not
// exist on the calendar such as 2026-02-30, returns a *DateFormatError.
func ParseDate(text string) (Epoch, error) {
	if len(text) != len(DateFormat) {
		return Epoch{}, &DateFormatError{Input: text}
	}
	dt, err := time.Parse(DateFormat, text)
	if err != nil {
		return Epoch{}, &DateFormatError{Input: text, Err: err}
	}
	return Epoch{dt}, nil
}

// Time returns the epoch as a UTC time.
func (e Epoch) Time() time.Time {
	return e.t
}

// JD returns the Julian date of this epoch.
func (e Epoch) JD() float64 {
	return julian.TimeToJD(e.t)
}

// Year returns the calendar year of this epoch.
func (e Epoch) Year() int {
	return e.t.Year()
}

// AddDays returns the epoch n calendar days later (or earlier if n is negative).
func (e Epoch) AddDays(n int) Epoch {
	return Epoch{e.t.AddDate(0, 0, n)}
}

// Before returns whether e is strictly before o.
func (e Epoch) Before(o Epoch) bool {
	return e.t.Before(o.t)
}

// Equal returns whether both epochs are the same calendar date.
func (e Epoch) Equal(o Epoch) bool {
	return e.t.Equal(o.t)
}

// IsZero returns whether this epoch was never set.
func (e Epoch) IsZero() bool {
	return e.t.IsZero()
}

// String returns the epoch formatted as YYYY-MM-DD.
func (e Epoch) String() string {
	return e.t.Format(DateFormat)
}

// MarshalText implements encoding.TextMarshaler.
func (e Epoch) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same rules as ParseDate.
func (e *Epoch) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// DateRange returns one epoch per calendar day in [start, end), in ascending order.
// It is empty when start is not before end.
func DateRange(start, end Epoch) []Epoch {
	if !start.Before(end) {
		return []Epoch{}
	}
	days := int(end.t.Sub(start.t).Hours() / 24)
	epochs := make([]Epoch, 0, days)
	for dt := start; dt.Before(end); dt = dt.AddDays(1) {
		epochs = append(epochs, dt)
	}
	return epochs
}

// ParseDateRange parses both bounds and returns DateRange(start, end).
func ParseDateRange(start, end string) ([]Epoch, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	until, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	return DateRange(from, until), nil
}
