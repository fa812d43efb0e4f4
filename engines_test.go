package launchplan

import "testing"

func TestEngineFromString(t *testing.T) {
	for name, exp := range map[string]Engine{"RL10": RL10, "rl10b-2": RL10, "merlin": MerlinVacuum, " RS-25": RS25, "rs25": RS25, "Vinci": Vinci} {
		engine, err := EngineFromString(name)
		if err != nil {
			t.Fatalf("%q: %s", name, err)
		}
		if engine.Name() != exp.Name() {
			t.Fatalf("%q returned %s", name, engine.Name())
		}
	}
	if _, err := EngineFromString("raptor"); err == nil {
		t.Fatal("raptor is not in the catalog")
	}
}

func TestGenericEngine(t *testing.T) {
	e := NewGenericEngine("test", 1e3, 321)
	if thrust, isp := e.Thrust(); thrust != 1e3 || isp != 321 || e.Name() != "test" {
		t.Fatalf("unexpected engine %s", e)
	}
}
