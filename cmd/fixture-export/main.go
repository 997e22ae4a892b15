package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/airspacelab/deconflict/internal/deconflict"
	"github.com/airspacelab/deconflict/internal/scenario"
)

// #region main

// fixture-export writes a canned scenario as a replayable JSON fixture,
// running the check once to record the expected outcome.
func main() {
	name := flag.String("scenario", "", "canned scenario name")
	outPath := flag.String("out", "", "output fixture JSON path")
	buffer := flag.Float64("buffer", 50.0, "safety buffer in meters")
	resolution := flag.Float64("resolution", 1.0, "sampling time resolution in seconds")
	groupByFlight := flag.Bool("group-by-flight", false, "consolidate windows per flight")
	flag.Parse()

	if *name == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --scenario name --out path/to/fixture.json [--buffer M] [--resolution S]")
		os.Exit(2)
	}

	if err := run(*name, *outPath, *buffer, *resolution, *groupByFlight); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(name, outPath string, buffer, resolution float64, groupByFlight bool) error {
	sc, ok := scenario.ByName(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}

	cfg := deconflict.Config{
		SafetyBuffer:   buffer,
		TimeResolution: resolution,
		GroupByFlight:  groupByFlight,
	}

	result, err := deconflict.Check(sc.Primary, sc.Others, cfg)
	if err != nil {
		return fmt.Errorf("check %q: %w", name, err)
	}

	fixture := scenario.FromScenario(sc, cfg)
	fixture.Expected = &scenario.FixtureExpected{
		Status:      string(result.Status),
		WindowCount: len(result.Windows),
	}

	if err := scenario.WriteFixture(fixture, outPath); err != nil {
		return err
	}

	fmt.Printf("Wrote fixture to %s (status=%s, %d window(s))\n",
		outPath, result.Status, len(result.Windows))
	return nil
}

// #endregion export
