package launchplan

import (
	"errors"
	"math"
	"testing"
)

func TestEstimatePropellant(t *testing.T) {
	cfg := DefaultPropellantConfig()
	// A delta-v of Isp*g0*ln(2) doubles the mass.
	dv := 450 * StandardGravity * math.Ln2
	est, err := EstimatePropellant(1000, dv, 450, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !floatEqual(est.InitialMass, 2000, 1e-9) || !floatEqual(est.PropellantMass, 1000, 1e-9) || !floatEqual(est.PropellantFraction, 0.5, 1e-12) {
		t.Fatalf("unexpected estimate %s", est)
	}
	rec := est.Record()
	if rec.PropellantPercentage != 50 || rec.PayloadMass != 1000 || rec.Isp != 450 {
		t.Fatalf("unexpected record %+v", rec)
	}

	none, err := EstimatePropellant(1000, 0, 450, cfg)
	if err != nil || none.PropellantMass != 0 || none.InitialMass != 1000 {
		t.Fatalf("no delta-v requires no propellant, got %s (%v)", none, err)
	}
}

func TestEstimatePropellantFor(t *testing.T) {
	sol, err := elementsPlanner(1, nil).PlanTransfer("earth", "mars", "2026-10-12")
	if err != nil {
		t.Fatal(err)
	}
	est, err := EstimatePropellantFor(sol, 1000, RL10, DefaultPropellantConfig())
	if err != nil {
		t.Fatal(err)
	}
	if est.DeltaV != sol.DeltaVTotal*1e3 || est.Isp != 465.5 {
		t.Fatalf("unexpected inputs %s", est)
	}
	if !floatEqual(est.InitialMass, 3702.8, 0.5) {
		t.Fatalf("unexpected initial mass %s", est)
	}
	if !floatEqual(est.InitialMass, est.PayloadMass+est.PropellantMass, 1e-9) {
		t.Fatalf("masses do not add up: %s", est)
	}
	// A lower Isp requires more propellant.
	merlin, _ := EstimatePropellantFor(sol, 1000, MerlinVacuum, DefaultPropellantConfig())
	if merlin.PropellantMass <= est.PropellantMass {
		t.Fatalf("Merlin %s <= RL10 %s", merlin, est)
	}
}

func TestEstimatePropellantInvalid(t *testing.T) {
	cfg := DefaultPropellantConfig()
	for _, in := range [][4]float64{
		{0, 1000, 300, cfg.G0},
		{-1, 1000, 300, cfg.G0},
		{1000, -1, 300, cfg.G0},
		{1000, math.NaN(), 300, cfg.G0},
		{1000, 1000, 0, cfg.G0},
		{1000, 1000, math.NaN(), cfg.G0},
		{1000, 1000, 300, 0},
	} {
		if _, err := EstimatePropellant(in[0], in[1], in[2], PropellantConfig{G0: in[3]}); !errors.Is(err, ErrInvalidPropellantInput) {
			t.Fatalf("%v: expected ErrInvalidPropellantInput, got %v", in, err)
		}
	}
}
