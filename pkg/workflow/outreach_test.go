package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtavil/salespipe/pkg/adapters/memory"
	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/ports"
	"github.com/rtavil/salespipe/pkg/session"
	"github.com/rtavil/salespipe/pkg/workflow"
)

// stubProvider returns a fixed research record.
type stubProvider struct {
	rec domain.ResearchRecord
}

func (s *stubProvider) Research(ctx context.Context, companyName string) (domain.ResearchRecord, error) {
	rec := s.rec
	rec.CompanyName = companyName
	return rec, nil
}

// scriptedGenerator returns canned emails in order and records the model it
// was handed on each call.
type scriptedGenerator struct {
	emails []string
	models []ports.TextGenerator
}

func (s *scriptedGenerator) Generate(ctx context.Context, companyName, contactName string, tier domain.Tier, model ports.TextGenerator) (domain.OutreachRecord, error) {
	s.models = append(s.models, model)
	i := len(s.models) - 1
	email := ""
	if i < len(s.emails) {
		email = s.emails[i]
	}
	return domain.OutreachRecord{Email: email, Tier: tier}, nil
}

// countingModel counts polish invocations.
type countingModel struct {
	calls int
}

func (m *countingModel) Polish(ctx context.Context, prompt string) (string, error) {
	m.calls++
	return "polished@example.com output", nil
}

func defaultResearch() domain.ResearchRecord {
	return domain.ResearchRecord{
		Industry:         "Technology / SaaS",
		Stage:            domain.StageSeriesA,
		EmployeeCountEst: 500,
		Summary:          "mock",
	}
}

func newPipeline(t *testing.T, gen ports.OutreachGenerator, opts ...workflow.Option) (*workflow.Pipeline, *session.Store) {
	t.Helper()
	store := session.New(memory.NewStore())
	p := workflow.New(store, &stubProvider{rec: defaultResearch()}, gen, opts...)
	return p, store
}

func runResearch(t *testing.T, p *workflow.Pipeline, store *session.Store, company string) string {
	t.Helper()
	ctx := context.Background()
	id := store.NewID()
	_, err := store.Create(ctx, id)
	require.NoError(t, err)
	_, err = p.Research(ctx, company, id)
	require.NoError(t, err)
	return id
}

func TestOutreach_ValidFirstAttempt(t *testing.T) {
	gen := &scriptedGenerator{emails: []string{"hello alice@acme.example, long enough"}}
	model := &countingModel{}
	p, store := newPipeline(t, gen, workflow.WithModel(model))
	id := runResearch(t, p, store, "Acme Corp")

	res, err := p.Outreach(context.Background(), "Acme Corp", "Alice", id)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusValid, res.Outreach.ValidationStatus)
	assert.Len(t, gen.models, 1, "repair path must not be entered")
	assert.Nil(t, gen.models[0], "first attempt never uses the polish capability")
	assert.Equal(t, 0, model.calls, "polish capability must never be invoked")
}

func TestOutreach_RepairedSecondAttempt(t *testing.T) {
	gen := &scriptedGenerator{emails: []string{"short", "now valid: alice@acme.example"}}
	model := &countingModel{}
	p, store := newPipeline(t, gen, workflow.WithModel(model))
	id := runResearch(t, p, store, "Acme Corp")

	res, err := p.Outreach(context.Background(), "Acme Corp", "Alice", id)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRepaired, res.Outreach.ValidationStatus)
	require.Len(t, gen.models, 2)
	assert.Nil(t, gen.models[0])
	assert.Same(t, model, gen.models[1], "repair attempt carries the polish capability")
}

func TestOutreach_FallbackAfterTwoInvalidAttempts(t *testing.T) {
	gen := &scriptedGenerator{emails: []string{"nope", "still nope"}}
	model := &countingModel{}
	p, store := newPipeline(t, gen, workflow.WithModel(model))
	id := runResearch(t, p, store, "Acme Corp")

	res, err := p.Outreach(context.Background(), "Acme Corp", "Alice", id)
	require.NoError(t, err)

	out := res.Outreach
	assert.Equal(t, domain.StatusFallback, out.ValidationStatus)
	assert.Contains(t, out.Email, "Alice")
	assert.Contains(t, out.Email, "Acme Corp")
	assert.Contains(t, out.Email, "Checking in regarding")
	assert.Len(t, gen.models, 2, "no more than two generation attempts total")
}

func TestOutreach_ScoreAndExplanation(t *testing.T) {
	gen := &scriptedGenerator{emails: []string{"hello alice@acme.example, long enough"}}
	p, store := newPipeline(t, gen)
	id := runResearch(t, p, store, "Acme Corp")

	res, err := p.Outreach(context.Background(), "Acme Corp", "Alice", id)
	require.NoError(t, err)

	// 500 employees, intent 5: 500/100 + 15 = 20 -> Tier A.
	assert.Equal(t, 20.0, res.Score.Score)
	assert.Equal(t, domain.TierA, res.Score.Tier)
	assert.Equal(t, "Score 20 (Tier A) based on 500 employees and intent 5.", res.Outreach.ScoreExplanation)
}

func TestOutreach_InjectableIntentScore(t *testing.T) {
	gen := &scriptedGenerator{emails: []string{"hello alice@acme.example, long enough"}}
	p, store := newPipeline(t, gen, workflow.WithIntentScore(0))
	id := runResearch(t, p, store, "Acme Corp")

	res, err := p.Outreach(context.Background(), "Acme Corp", "Alice", id)
	require.NoError(t, err)

	// 500/100 + 0 = 5 -> Tier C.
	assert.Equal(t, 5.0, res.Score.Score)
	assert.Equal(t, domain.TierC, res.Score.Tier)
}

func TestOutreach_MissingSessionIsFatal(t *testing.T) {
	gen := &scriptedGenerator{}
	p, _ := newPipeline(t, gen)

	_, err := p.Outreach(context.Background(), "Acme Corp", "Alice", "no-such-session")
	assert.ErrorIs(t, err, domain.ErrMissingResearch)
	assert.Empty(t, gen.models, "no generation happens when the precondition fails")
}

func TestOutreach_MissingResearchKeyIsFatal(t *testing.T) {
	gen := &scriptedGenerator{}
	p, store := newPipeline(t, gen)

	ctx := context.Background()
	id := store.NewID()
	_, err := store.Create(ctx, id)
	require.NoError(t, err)

	_, err = p.Outreach(ctx, "Acme Corp", "Alice", id)
	assert.ErrorIs(t, err, domain.ErrMissingResearch)
}

func TestOutreach_MergesResultsIntoSession(t *testing.T) {
	gen := &scriptedGenerator{emails: []string{"hello alice@acme.example, long enough"}}
	p, store := newPipeline(t, gen)
	id := runResearch(t, p, store, "Acme Corp")

	_, err := p.Outreach(context.Background(), "Acme Corp", "Alice", id)
	require.NoError(t, err)

	sess, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, sess.State, "research", "outreach update must not erase research")
	assert.Contains(t, sess.State, "score")
	assert.Contains(t, sess.State, "outreach")
}
