package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/airspacelab/deconflict/internal/scenario"
	"github.com/airspacelab/deconflict/internal/store"
)

// #region main

// seed populates a scenario store with the canned library so the daemon
// has something to serve on a fresh install.
func main() {
	dbPath := flag.String("db", "", "path to deconflict.db")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: seed --db path/to/deconflict.db")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	seeded := 0
	for _, sc := range scenario.Library() {
		if _, _, err := st.GetScenarioByName(sc.Name); err == nil {
			fmt.Printf("  %-10s already present, skipping\n", sc.Name)
			continue
		}
		id, err := st.SaveScenario(sc)
		if err != nil {
			log.Fatalf("seed %q: %v", sc.Name, err)
		}
		fmt.Printf("  %-10s -> %s\n", sc.Name, id)
		seeded++
	}

	fmt.Printf("Seeded %d scenario(s) into %s\n", seeded, *dbPath)
}

// #endregion main
