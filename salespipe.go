package salespipe

import (
	"context"
	"log/slog"

	"github.com/rtavil/salespipe/pkg/adapters/memory"
	"github.com/rtavil/salespipe/pkg/observability"
	"github.com/rtavil/salespipe/pkg/ports"
	"github.com/rtavil/salespipe/pkg/session"
	"github.com/rtavil/salespipe/pkg/tools"
	"github.com/rtavil/salespipe/pkg/workflow"
)

// Engine is the high-level entry point for the salespipe library.
// It wires a workflow pipeline over a session store with sensible defaults:
// in-memory sessions, the deterministic mock researcher, and no polish
// capability. Every default can be replaced with an Option.
type Engine struct {
	backend   ports.SessionBackend
	provider  ports.ResearchProvider
	generator ports.OutreachGenerator
	model     ports.TextGenerator
	recorder  *observability.Recorder
	logger    *slog.Logger

	sessions *session.Store
	pipeline *workflow.Pipeline
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithBackend replaces the in-memory session backend.
func WithBackend(backend ports.SessionBackend) Option {
	return func(e *Engine) {
		e.backend = backend
	}
}

// WithProvider replaces the research provider.
func WithProvider(provider ports.ResearchProvider) Option {
	return func(e *Engine) {
		e.provider = provider
	}
}

// WithGenerator replaces the outreach generator.
func WithGenerator(generator ports.OutreachGenerator) Option {
	return func(e *Engine) {
		e.generator = generator
	}
}

// WithModel attaches the optional polish capability.
func WithModel(model ports.TextGenerator) Option {
	return func(e *Engine) {
		e.model = model
	}
}

// WithRecorder wraps externally-facing tool calls with the recorder.
func WithRecorder(rec *observability.Recorder) Option {
	return func(e *Engine) {
		e.recorder = rec
	}
}

// WithLogger sets a structured logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine with the given options applied over the defaults.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.backend == nil {
		e.backend = memory.NewStore()
	}

	var sessionOpts []session.Option
	var pipelineOpts []workflow.Option
	if e.logger != nil {
		sessionOpts = append(sessionOpts, session.WithLogger(e.logger))
		pipelineOpts = append(pipelineOpts, workflow.WithLogger(e.logger))
	}
	e.sessions = session.New(e.backend, sessionOpts...)

	if e.provider == nil {
		e.provider = tools.NewResearcher()
	}
	if e.generator == nil {
		e.generator = tools.NewGenerator()
	}
	if e.model != nil {
		pipelineOpts = append(pipelineOpts, workflow.WithModel(e.model))
	}
	if e.recorder != nil {
		pipelineOpts = append(pipelineOpts, workflow.WithRecorder(e.recorder))
	}

	e.pipeline = workflow.New(e.sessions, e.provider, e.generator, pipelineOpts...)
	return e
}

// Run executes the full pipeline for one lead: create a session, research
// the company, then score and generate outreach.
func (e *Engine) Run(ctx context.Context, companyName, contactName string) (*workflow.Result, error) {
	return e.pipeline.Run(ctx, companyName, contactName)
}

// Sessions exposes the underlying session store.
func (e *Engine) Sessions() *session.Store {
	return e.sessions
}
