package launchplan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConf(t *testing.T, dir, contents string) string {
	t.Helper()
	fname := filepath.Join(dir, "conf.toml")
	if err := os.WriteFile(fname, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, `
[ephemeris]
source = "Elements"

[scanner]
threshold_deg = 2.5
workers = 2

[propellant]
engine = "rl10"
`)
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EphemerisSource != "elements" || cfg.Threshold != 2.5 || cfg.Workers != 2 || cfg.Engine != "rl10" {
		t.Fatalf("unexpected configuration %+v", cfg)
	}
	if cfg.G0 != StandardGravity || cfg.OutputDir != "." {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.PropellantConfig().G0 != StandardGravity {
		t.Fatal("propellant configuration")
	}
	src, err := cfg.Source()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*MeanElements); !ok {
		t.Fatalf("expected the mean elements source, got %T", src)
	}
	if _, err := NewPlannerFromConfig(cfg, nil, nil); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LAUNCHPLAN_SCANNER_THRESHOLD_DEG", "1.5")
	t.Setenv(ConfigEnv, dir)
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != 1.5 {
		t.Fatalf("environment override not applied: %f", cfg.Threshold)
	}
}

func TestLoadConfigVSOP87(t *testing.T) {
	dir := t.TempDir()
	fname := writeConf(t, dir, `
[ephemeris]
source = "vsop87"
directory = "vsop"
`)
	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VSOP87Dir != filepath.Join(dir, "vsop") {
		t.Fatalf("directory not relative to the configuration: %s", cfg.VSOP87Dir)
	}
	if cfg.Threshold != DefaultThreshold {
		t.Fatalf("default threshold %f", cfg.Threshold)
	}
	if _, err := NewPlannerFromConfig(cfg, nil, nil); !errors.Is(err, ErrEphemerisLoad) {
		t.Fatalf("expected an ephemeris load error, got %v", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, contents := range map[string]string{
		"no source":      "[scanner]\nthreshold_deg = 2",
		"unknown source": "[ephemeris]\nsource = \"horizons\"",
		"g0":             "[ephemeris]\nsource = \"elements\"\n[propellant]\ng0 = 0",
		"engine":         "[ephemeris]\nsource = \"elements\"\n[propellant]\nengine = \"raptor\"",
		"syntax":         "[ephemeris\nsource = ",
	} {
		if _, err := LoadConfig(writeConf(t, t.TempDir(), contents)); err == nil {
			t.Fatalf("%s: configuration should be invalid", name)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing configuration file should fail")
	}
	t.Setenv(ConfigEnv, "")
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("no configuration should fail")
	}
}
