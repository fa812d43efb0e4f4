package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ChristopherRabotin/launchplan"
	"github.com/ChristopherRabotin/launchplan/weather"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/viper"
)

// Reads a mission scenario, finds the best launch window in the launch period and sizes the
// transfer from it.

const defaultScenario = "~~unset~~"

var (
	scenario string
	confPath string
	pushURL  string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "mission scenario TOML file")
	flag.StringVar(&confPath, "config", "", "configuration file or directory (defaults to $LAUNCHPLAN_CONFIG)")
	flag.StringVar(&pushURL, "push", "", "Prometheus pushgateway URL, metrics are not pushed if unset")
	flag.BoolVar(&verbose, "verbose", false, "debug logging")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	cfg, err := launchplan.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("configuration: %s", err)
	}

	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	viper.SetConfigType("toml")
	viper.SetDefault("launch.threshold", cfg.Threshold)
	viper.SetDefault("spacecraft.engine", cfg.Engine)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}
	engineName := viper.GetString("spacecraft.engine")
	if engineName == "" {
		log.Fatal("no engine in spacecraft.engine nor in propellant.engine")
	}
	engine, err := launchplan.EngineFromString(engineName)
	if err != nil {
		log.Fatalf("spacecraft.engine: %s", err)
	}
	req := launchplan.MissionRequest{
		Source:      viper.GetString("mission.source"),
		Target:      viper.GetString("mission.target"),
		From:        viper.GetString("launch.from"),
		Until:       viper.GetString("launch.until"),
		Threshold:   viper.GetFloat64("launch.threshold"),
		PayloadMass: viper.GetFloat64("spacecraft.payload"),
		Engine:      engine,
		LaunchSite:  viper.GetString("launch.site"),
	}

	logger := launchplan.NewLogger(os.Stderr, verbose)
	reg := prometheus.NewRegistry()
	metrics, err := launchplan.NewMetrics(reg)
	if err != nil {
		log.Fatalf("metrics: %s", err)
	}
	planner, err := launchplan.NewPlannerFromConfig(cfg, logger, metrics)
	if err != nil {
		log.Fatalf("ephemeris: %s", err)
	}

	var advisor launchplan.WeatherAdvisor
	if req.LaunchSite != "" {
		wcfg, err := weather.ConfigFromEnv()
		if err != nil {
			log.Fatalf("launch.site is set but the weather client is not configured: %s", err)
		}
		client, err := weather.NewClient(wcfg)
		if err != nil {
			log.Fatalf("weather: %s", err)
		}
		advisor = client
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	plan, err := launchplan.NewMission(planner, cfg.PropellantConfig(), advisor, logger).Plan(ctx, req)
	if err != nil {
		log.Fatalf("mission %s -> %s: %s", req.Source, req.Target, err)
	}
	if err := launchplan.WriteJSON(os.Stdout, plan.Record()); err != nil {
		log.Fatal(err)
	}
	if plan.Launch == nil {
		log.Println(launchplan.NoWindowsMessage)
	}

	if pushURL != "" {
		if err := push.New(pushURL, "launchplan_mission").Gatherer(reg).Push(); err != nil {
			log.Fatalf("pushing metrics to %s: %s", pushURL, err)
		}
	}
}
