package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rtavil/salespipe/internal/config"
	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/adapters/genai"
	"github.com/rtavil/salespipe/pkg/adapters/memory"
	redisadapter "github.com/rtavil/salespipe/pkg/adapters/redis"
	"github.com/rtavil/salespipe/pkg/observability"
	"github.com/rtavil/salespipe/pkg/ports"
	"github.com/rtavil/salespipe/pkg/session"
	"github.com/rtavil/salespipe/pkg/tools"
	"github.com/rtavil/salespipe/pkg/workflow"
)

// app bundles everything a command needs after wiring.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *session.Store
	pipeline *workflow.Pipeline
	registry *prometheus.Registry
}

// newBackend picks the session backend: the --redis flag wins, then
// REDIS_ADDR, then process-local memory.
func newBackend(cmd *cobra.Command, cfg *config.Config) ports.SessionBackend {
	addr, _ := cmd.Flags().GetString("redis")
	if addr == "" {
		addr = cfg.RedisAddr
	}
	if addr == "" {
		return memory.NewStore()
	}
	return redisadapter.New(addr, cfg.RedisPassword, 0)
}

// newApp wires the pipeline from configuration. This is the composition
// point: the observability recorder is attached here, around every
// externally-facing tool call.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel)

	store := session.New(newBackend(cmd, cfg), session.WithLogger(logger))

	registry := prometheus.NewRegistry()
	recorder := observability.NewRecorder(registry, observability.WithLogger(logger))

	researcherOpts := []tools.ResearcherOption{tools.WithResearchLogger(logger)}
	if cfg.EnrichmentEnabled() {
		// Placeholder adapter; a real integration would use cfg.EnrichmentAPIKey.
		researcherOpts = append(researcherOpts,
			tools.WithEnrichment(tools.StaticEnrichment, cfg.EnrichRetry))
	}

	generator := tools.NewGenerator(
		tools.WithGeneratorLogger(logger),
		tools.WithPolishRetry(cfg.PolishRetry),
	)

	pipelineOpts := []workflow.Option{
		workflow.WithLogger(logger),
		workflow.WithRecorder(recorder),
	}
	if cfg.PolishEnabled() {
		model := genai.New(cfg.ModelEndpoint, cfg.APIKey, cfg.ModelName)
		pipelineOpts = append(pipelineOpts, workflow.WithModel(model))
	}

	pipeline := workflow.New(store, tools.NewResearcher(researcherOpts...), generator, pipelineOpts...)

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		pipeline: pipeline,
		registry: registry,
	}, nil
}
