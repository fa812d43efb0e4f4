package main

import (
	"flag"
	"log"
	"os"

	"github.com/ChristopherRabotin/launchplan"
)

// Prints the Hohmann transfer between two planets for a departure date.

var (
	confPath  string
	sourceID  string
	targetID  string
	departure string
	verbose   bool
)

func init() {
	flag.StringVar(&confPath, "config", "", "configuration file or directory (defaults to $LAUNCHPLAN_CONFIG)")
	flag.StringVar(&sourceID, "source", "earth", "departure planet")
	flag.StringVar(&targetID, "target", "mars", "arrival planet")
	flag.StringVar(&departure, "date", "", "departure date, YYYY-MM-DD")
	flag.BoolVar(&verbose, "verbose", false, "debug logging")
}

func main() {
	flag.Parse()
	if departure == "" {
		log.Fatal("no departure date provided (-date YYYY-MM-DD)")
	}
	cfg, err := launchplan.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("configuration: %s", err)
	}
	logger := launchplan.NewLogger(os.Stderr, verbose)
	planner, err := launchplan.NewPlannerFromConfig(cfg, logger, nil)
	if err != nil {
		log.Fatalf("ephemeris: %s", err)
	}
	sol, err := planner.PlanTransfer(sourceID, targetID, departure)
	if err != nil {
		log.Fatalf("transfer %s -> %s on %s: %s", sourceID, targetID, departure, err)
	}
	if err := launchplan.WriteJSON(os.Stdout, sol.Record()); err != nil {
		log.Fatal(err)
	}
}
