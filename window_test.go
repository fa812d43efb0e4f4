package launchplan

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestFindWindowsEarthMars(t *testing.T) {
	for _, workers := range []int{1, 0} {
		windows, err := elementsPlanner(workers, nil).FindWindows(context.Background(), "earth", "mars", "2026-01-01", "2027-12-31", DefaultThreshold)
		if err != nil {
			t.Fatal(err)
		}
		if len(windows) != 8 {
			t.Fatalf("[%d workers] expected 8 windows, got %v", workers, windows)
		}
		for i, w := range windows {
			if d := w.Date.String(); d < "2027-02-16" || d > "2027-02-23" {
				t.Fatalf("unexpected window %s", w)
			}
			if w.Separation < 0 || w.Separation >= DefaultThreshold {
				t.Fatalf("window %s is not below the threshold", w)
			}
			if i > 0 && !windows[i-1].Date.Before(w.Date) {
				t.Fatalf("windows not in chronological order: %s then %s", windows[i-1], w)
			}
		}
		best, ok := BestWindow(windows)
		if !ok || best.Date.String() != "2027-02-20" {
			t.Fatalf("best window %s", best)
		}
	}
}

func TestFindWindowsNone(t *testing.T) {
	p := elementsPlanner(0, nil)
	for _, rng := range [][2]string{{"2026-01-01", "2026-07-01"}, {"2026-10-12", "2026-10-12"}, {"2027-01-01", "2026-01-01"}} {
		windows, err := p.FindWindows(context.Background(), "earth", "mars", rng[0], rng[1], DefaultThreshold)
		if err != nil {
			t.Fatal(err)
		}
		if windows == nil || len(windows) != 0 {
			t.Fatalf("%v: expected an empty non nil result, got %v", rng, windows)
		}
		if _, ok := BestWindow(windows); ok {
			t.Fatal("best window of no window")
		}
	}
	for _, threshold := range []float64{0, -1, math.NaN()} {
		windows, err := p.FindWindows(context.Background(), "earth", "mars", "2027-02-01", "2027-03-01", threshold)
		if err != nil || len(windows) != 0 {
			t.Fatalf("threshold %f: got %v (%v)", threshold, windows, err)
		}
	}
}

func TestFindWindowsThresholdIsStrict(t *testing.T) {
	ref := mustParse(t, "2026-01-01")
	src := &fakeSource{angles: map[string]func(Epoch) float64{
		"Earth": fixedAngle(0),
		"Mars":  daysSince(ref),
	}}
	p := NewPlanner(NewEphemerides(src, 1, nil), nil, nil)
	sep, err := p.Ephemerides().AngularSeparation(Earth, Mars, ref.AddDays(3))
	if err != nil {
		t.Fatal(err)
	}
	windows, err := p.FindWindows(context.Background(), "earth", "mars", "2026-01-01", "2026-01-11", sep)
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 3 || windows[2].Date.String() != "2026-01-03" {
		t.Fatalf("a separation equal to the threshold must be excluded, got %v", windows)
	}
	windows, _ = p.FindWindows(context.Background(), "earth", "mars", "2026-01-01", "2026-01-11", math.Nextafter(sep, 180))
	if len(windows) != 4 || windows[3].Date.String() != "2026-01-04" {
		t.Fatalf("got %v", windows)
	}
	// The end date is exclusive.
	windows, _ = p.FindWindows(context.Background(), "earth", "mars", "2026-01-01", "2026-01-03", 180)
	if len(windows) != 2 || windows[1].Date.String() != "2026-01-02" {
		t.Fatalf("got %v", windows)
	}
}

func TestFindWindowsIdempotent(t *testing.T) {
	p := elementsPlanner(0, nil)
	first, err := p.FindWindows(context.Background(), "earth", "venus", "2026-01-01", "2027-01-01", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) == 0 {
		t.Fatal("expected a Venus window in October 2026")
	}
	second, err := p.FindWindows(context.Background(), "EARTH", "Venus", "2026-01-01", "2027-01-01", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("%v != %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("%s != %s", first[i], second[i])
		}
	}
}

func TestFindWindowsErrors(t *testing.T) {
	p := elementsPlanner(1, nil)
	ctx := context.Background()
	if _, err := p.FindWindows(ctx, "earth", "mars", "2026-01-01", "2026-13-01", 3); !errors.Is(err, ErrDateFormat) {
		t.Fatalf("expected ErrDateFormat, got %v", err)
	}
	if _, err := p.FindWindows(ctx, "earth", "nibiru", "2026-01-01", "2026-02-01", 3); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}
	if _, err := p.FindWindows(ctx, "sun", "mars", "2026-01-01", "2026-02-01", 3); !errors.Is(err, ErrCentralBody) {
		t.Fatalf("expected ErrCentralBody, got %v", err)
	}
	if _, err := p.FindWindows(ctx, "earth", "mars", "2050-12-01", "2051-02-01", 3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBestWindowTies(t *testing.T) {
	ref := mustParse(t, "2026-01-01")
	best, ok := BestWindow([]LaunchWindowCandidate{{ref, 2}, {ref.AddDays(1), 1}, {ref.AddDays(2), 1}, {ref.AddDays(3), 1.5}})
	if !ok || !best.Date.Equal(ref.AddDays(1)) {
		t.Fatalf("got %s", best)
	}
}
