package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/airspacelab/deconflict/internal/deconflict"
	"github.com/airspacelab/deconflict/internal/report"
	"github.com/airspacelab/deconflict/internal/scenario"
)

// #region main

func main() {
	scenarioName := flag.String("scenario", "", "run one canned scenario by name")
	all := flag.Bool("all", false, "run every canned scenario")
	fixturePath := flag.String("fixture", "", "run a fixture JSON and compare against its expected outcome")
	buffer := flag.Float64("buffer", 50.0, "safety buffer in meters")
	resolution := flag.Float64("resolution", 1.0, "sampling time resolution in seconds")
	groupByFlight := flag.Bool("group-by-flight", false, "consolidate windows per flight instead of stream order")
	workers := flag.Int("workers", 0, "parallel sampling workers (0 or 1 = sequential)")
	flag.Parse()

	modes := 0
	for _, set := range []bool{*scenarioName != "", *all, *fixturePath != ""} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "usage: deconflict --scenario name [--buffer M] [--resolution S]")
		fmt.Fprintln(os.Stderr, "       deconflict --all")
		fmt.Fprintln(os.Stderr, "       deconflict --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "canned scenarios:")
		for _, sc := range scenario.Library() {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", sc.Name, sc.Description)
		}
		os.Exit(2)
	}

	cfg := deconflict.Config{
		SafetyBuffer:   *buffer,
		TimeResolution: *resolution,
		GroupByFlight:  *groupByFlight,
		Workers:        *workers,
	}

	var exitCode int
	switch {
	case *fixturePath != "":
		exitCode = runFixture(*fixturePath)
	case *all:
		exitCode = runAll(cfg)
	default:
		exitCode = runScenario(*scenarioName, cfg)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region scenario-mode

func runScenario(name string, cfg deconflict.Config) int {
	sc, ok := scenario.ByName(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", name)
		return 2
	}
	if _, err := runOne(sc, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runAll(cfg deconflict.Config) int {
	printHeader(cfg)
	for i, sc := range scenario.Library() {
		fmt.Printf("\nSCENARIO %d: %s\n", i+1, sc.Name)
		if _, err := runOne(sc, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}

func runOne(sc scenario.Scenario, cfg deconflict.Config) (deconflict.Result, error) {
	result, err := deconflict.Check(sc.Primary, sc.Others, cfg)
	if err != nil {
		return deconflict.Result{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	report.Write(os.Stdout, result.Status, result.Windows, result.Summary, cfg.SafetyBuffer)
	return result, nil
}

func printHeader(cfg deconflict.Config) {
	fmt.Println("4D PATH DECONFLICTION")
	fmt.Printf("  Safety Buffer: %gm | Time Resolution: %gs\n", cfg.SafetyBuffer, cfg.TimeResolution)
}

// #endregion scenario-mode

// #region fixture-mode

// runFixture replays a fixture and compares the outcome against its
// recorded expectation. Exit 1 on divergence, like a failing regression.
func runFixture(path string) int {
	f, err := scenario.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	cfg := f.Config.ToConfig()
	result, err := deconflict.Check(f.Primary, f.Others, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		return 1
	}

	report.Write(os.Stdout, result.Status, result.Windows, result.Summary, cfg.SafetyBuffer)

	if f.Expected == nil {
		fmt.Println("No expected outcome recorded; nothing to compare.")
		return 0
	}

	fmt.Printf("%-14s| %-20s| %-20s| %s\n", "Field", "Expected", "Got", "Match")
	fmt.Printf("%-14s+%-21s+%-21s+%s\n",
		"--------------", "---------------------", "---------------------", "------")

	diverge := 0
	diverge += compareRow("status", f.Expected.Status, string(result.Status))
	diverge += compareRow("windows", fmt.Sprintf("%d", f.Expected.WindowCount), fmt.Sprintf("%d", len(result.Windows)))

	if diverge > 0 {
		fmt.Printf("\n%d field(s) diverge\n", diverge)
		return 1
	}
	fmt.Println("\nFixture matches.")
	return 0
}

func compareRow(field, expected, got string) int {
	match := "OK"
	diverge := 0
	if expected != got {
		match = "DIFF"
		diverge = 1
	}
	fmt.Printf("%-14s| %-20s| %-20s| %s\n", field, expected, got, match)
	return diverge
}

// #endregion fixture-mode
