package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/observability"
	"github.com/rtavil/salespipe/pkg/ports"
	"github.com/rtavil/salespipe/pkg/session"
)

// defaultIntentScore is a stubbed integration point: intent is not yet
// derived from research data.
const defaultIntentScore = 5

// Pipeline sequences the research and outreach stages over a shared session
// store. Stages receive session IDs, never the store's internals. Execution
// is synchronous: outreach strictly depends on the session state research
// wrote.
type Pipeline struct {
	sessions  *session.Store
	provider  ports.ResearchProvider
	generator ports.OutreachGenerator
	model     ports.TextGenerator // optional polish capability, may be nil
	intent    int
	recorder  *observability.Recorder
	logger    *slog.Logger
}

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithModel attaches the optional polish capability used on the repair
// attempt. Without it, repair regenerates the plain template.
func WithModel(model ports.TextGenerator) Option {
	return func(p *Pipeline) {
		p.model = model
	}
}

// WithIntentScore overrides the placeholder intent score.
func WithIntentScore(intent int) Option {
	return func(p *Pipeline) {
		p.intent = intent
	}
}

// WithRecorder wraps every externally-facing tool call with the recorder.
func WithRecorder(rec *observability.Recorder) Option {
	return func(p *Pipeline) {
		p.recorder = rec
	}
}

// WithLogger configures a logger for the Pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline over the given store and capabilities.
func New(sessions *session.Store, provider ports.ResearchProvider, generator ports.OutreachGenerator, opts ...Option) *Pipeline {
	p := &Pipeline{
		sessions:  sessions,
		provider:  provider,
		generator: generator,
		intent:    defaultIntentScore,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the aggregate returned by a full coordinator run.
type Result struct {
	SessionID string                `json:"session_id"`
	Research  domain.ResearchRecord `json:"research_results"`
	Outreach  OutreachResult        `json:"outreach_results"`
}

// OutreachResult pairs the score with the generated outreach.
type OutreachResult struct {
	Score    domain.ScoreRecord    `json:"score"`
	Outreach domain.OutreachRecord `json:"outreach"`
}

// Run is the coordinator: it creates a fresh session, runs the research
// stage then the outreach stage, and returns the aggregate. It performs no
// error handling of its own; a stage failure aborts the run and leaves the
// session in whatever partial state it reached.
func (p *Pipeline) Run(ctx context.Context, companyName, contactName string) (*Result, error) {
	sessionID := p.sessions.NewID()
	if _, err := p.sessions.Create(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	research, err := p.Research(ctx, companyName, sessionID)
	if err != nil {
		return nil, err
	}

	outreach, err := p.Outreach(ctx, companyName, contactName, sessionID)
	if err != nil {
		return nil, err
	}

	return &Result{
		SessionID: sessionID,
		Research:  research,
		Outreach:  *outreach,
	}, nil
}
