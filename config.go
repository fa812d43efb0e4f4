package launchplan

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable pointing to the configuration file or to its directory.
const ConfigEnv = "LAUNCHPLAN_CONFIG"

// Config is the configuration of the launch planner. It is passed explicitly to whoever needs it.
type Config struct {
	EphemerisSource string  // "vsop87" or "elements"
	VSOP87Dir       string  // directory of the VSOP87B files
	Threshold       float64 // degrees
	Workers         int
	G0              float64 // m/s^2
	Engine          string  // default engine for propellant sizing, may be empty
	OutputDir       string
}

// LoadConfig reads the TOML configuration from path, which may be a file or a directory
// containing conf.toml. An empty path uses the LAUNCHPLAN_CONFIG environment variable.
// Every key may be overridden by a LAUNCHPLAN_ prefixed environment variable, e.g.
// LAUNCHPLAN_EPHEMERIS_SOURCE.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return Config{}, fmt.Errorf("no configuration provided and environment variable `%s` is missing or empty", ConfigEnv)
	}
	v := viper.New()
	v.SetConfigType("toml")
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		v.SetConfigName("conf")
		v.AddConfigPath(path)
	} else {
		v.SetConfigFile(path)
	}
	v.SetEnvPrefix("launchplan")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scanner.threshold_deg", DefaultThreshold)
	v.SetDefault("scanner.workers", runtime.NumCPU())
	v.SetDefault("propellant.g0", StandardGravity)
	v.SetDefault("general.output_path", ".")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading configuration %s: %w", path, err)
	}
	cfg := Config{
		EphemerisSource: strings.ToLower(v.GetString("ephemeris.source")),
		VSOP87Dir:       v.GetString("ephemeris.directory"),
		Threshold:       v.GetFloat64("scanner.threshold_deg"),
		Workers:         v.GetInt("scanner.workers"),
		G0:              v.GetFloat64("propellant.g0"),
		Engine:          v.GetString("propellant.engine"),
		OutputDir:       v.GetString("general.output_path"),
	}
	if cfg.VSOP87Dir != "" && !filepath.IsAbs(cfg.VSOP87Dir) {
		// Relative directories are relative to the configuration.
		base := path
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			base = filepath.Dir(path)
		}
		cfg.VSOP87Dir = filepath.Join(base, cfg.VSOP87Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	switch c.EphemerisSource {
	case "vsop87", "elements":
	case "":
		return fmt.Errorf("ephemeris.source must be set to `vsop87` or `elements`")
	default:
		return fmt.Errorf("unknown ephemeris.source `%s` (want `vsop87` or `elements`)", c.EphemerisSource)
	}
	if c.G0 <= 0 {
		return fmt.Errorf("propellant.g0 must be positive, got %f", c.G0)
	}
	if c.Engine != "" {
		if _, err := EngineFromString(c.Engine); err != nil {
			return err
		}
	}
	return nil
}

// Source returns the ephemeris source selected by this configuration.
func (c Config) Source() (Source, error) {
	switch c.EphemerisSource {
	case "vsop87":
		return NewVSOP87(c.VSOP87Dir), nil
	case "elements":
		return NewMeanElements(), nil
	default:
		return nil, c.Validate()
	}
}

// PropellantConfig returns the rocket equation configuration.
func (c Config) PropellantConfig() PropellantConfig {
	return PropellantConfig{G0: c.G0}
}

// NewPlannerFromConfig builds the configured source, loads its dataset if it has one, and returns
// the planner over it. Load failures are returned as *EphemerisLoadError.
func NewPlannerFromConfig(cfg Config, logger log.Logger, metrics *Metrics) (*Planner, error) {
	src, err := cfg.Source()
	if err != nil {
		return nil, err
	}
	if loader, ok := src.(interface{ Load() error }); ok {
		if err := loader.Load(); err != nil {
			return nil, err
		}
	}
	return NewPlanner(NewEphemerides(src, cfg.Workers, metrics), logger, metrics), nil
}
