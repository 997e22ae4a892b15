package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/airspacelab/deconflict/internal/config"
	"github.com/airspacelab/deconflict/internal/server"
	"github.com/airspacelab/deconflict/internal/store"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults used when omitted)")
	listen := flag.String("listen", "", "override listen address")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	st, err := store.NewStore(cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	srv := server.New(st, cfg)
	router := srv.Router()

	slog.Info("deconflictd listening",
		"addr", cfg.Listen,
		"store", cfg.StorePath,
		"safety_buffer", cfg.Check.SafetyBuffer,
		"time_resolution", cfg.Check.TimeResolution)

	if err := router.Run(cfg.Listen); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// #endregion main
