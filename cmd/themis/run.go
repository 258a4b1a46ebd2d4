package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/themis/pkg/backendfactory"
	"mercator-hq/themis/pkg/config"
	"mercator-hq/themis/pkg/server"
	"mercator-hq/themis/pkg/telemetry/logging"
	"mercator-hq/themis/pkg/telemetry/metrics"
	"mercator-hq/themis/pkg/verdict"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the evaluation server",
	Long: `Start the HTTP server serving the rule-evaluation API.

Configuration is loaded from the --config file (missing file falls back to
defaults) overlaid with THEMIS_* environment variables. Backend credentials
come from THEMIS_GROQ_API_KEY, THEMIS_MISTRAL_API_KEY, and
THEMIS_OPENAI_API_KEY; with no credential configured the service still runs,
answering every rule with the keyword heuristic.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	log, err := logging.Setup(cfg.Telemetry.Logging)
	if err != nil {
		return err
	}

	registry, err := backendfactory.NewRegistry(cfg)
	if err != nil {
		return fmt.Errorf("failed to build backend registry: %w", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			log.Warn("failed to close backends cleanly", "error", err)
		}
	}()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics, nil)
	}

	orchestrator := verdict.NewOrchestrator(
		registry,
		cfg.Evaluation.MaxConcurrency,
		observerOrNil(collector),
		logging.Component(log, "verdict"),
	)

	router := server.NewRouter(cfg, orchestrator, collector, logging.Component(log, "http"))
	srv := server.New(cfg.Server, router, logging.Component(log, "server"))

	return srv.Start(context.Background())
}

// observerOrNil avoids handing the orchestrator a typed nil interface.
func observerOrNil(c *metrics.Collector) verdict.Observer {
	if c == nil {
		return nil
	}
	return c
}
