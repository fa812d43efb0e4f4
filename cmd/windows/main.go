package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/ChristopherRabotin/launchplan"
)

// Scans a date range for launch windows between two planets.

var (
	confPath  string
	sourceID  string
	targetID  string
	from      string
	until     string
	threshold float64
	asCSV     bool
	outName   string
	stamp     bool
	verbose   bool
)

func init() {
	flag.StringVar(&confPath, "config", "", "configuration file or directory (defaults to $LAUNCHPLAN_CONFIG)")
	flag.StringVar(&sourceID, "source", "earth", "departure planet")
	flag.StringVar(&targetID, "target", "mars", "arrival planet")
	flag.StringVar(&from, "from", "", "first date of the scan, YYYY-MM-DD")
	flag.StringVar(&until, "until", "", "end of the scan (exclusive), YYYY-MM-DD")
	flag.Float64Var(&threshold, "threshold", math.NaN(), "angular separation threshold in degrees (defaults to scanner.threshold_deg)")
	flag.BoolVar(&asCSV, "csv", false, "export as CSV instead of JSON")
	flag.StringVar(&outName, "out", "", "export file name, without extension (prints to stdout if unset)")
	flag.BoolVar(&stamp, "timestamp", false, "append a timestamp to the export file name")
	flag.BoolVar(&verbose, "verbose", false, "debug logging")
}

func main() {
	flag.Parse()
	if from == "" || until == "" {
		log.Fatal("both -from and -until must be provided")
	}
	cfg, err := launchplan.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("configuration: %s", err)
	}
	if math.IsNaN(threshold) {
		threshold = cfg.Threshold
	}
	logger := launchplan.NewLogger(os.Stderr, verbose)
	planner, err := launchplan.NewPlannerFromConfig(cfg, logger, nil)
	if err != nil {
		log.Fatalf("ephemeris: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	candidates, err := planner.FindWindows(ctx, sourceID, targetID, from, until, threshold)
	if err != nil {
		log.Fatalf("scan %s -> %s: %s", sourceID, targetID, err)
	}
	src, _ := launchplan.BodyFromString(sourceID)
	tgt, _ := launchplan.BodyFromString(targetID)
	report := launchplan.NewWindowReport(src, tgt, threshold, candidates)

	exp := launchplan.ExportConfig{OutputDir: cfg.OutputDir, Filename: outName, AsCSV: asCSV, Timestamp: stamp}
	if !exp.IsUseless() {
		fname, err := exp.Export(report)
		if err != nil {
			log.Fatalf("export: %s", err)
		}
		log.Printf("%d launch windows written to %s", len(report.Dates), fname)
		return
	}
	if report.Empty() {
		fmt.Println(launchplan.NoWindowsMessage)
		return
	}
	if asCSV {
		err = launchplan.WriteWindowsCSV(os.Stdout, report)
	} else {
		err = launchplan.WriteJSON(os.Stdout, report)
	}
	if err != nil {
		log.Fatal(err)
	}
}
