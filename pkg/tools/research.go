package tools

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/retry"
	"github.com/rtavil/salespipe/pkg/scrub"
)

// EnrichFunc fetches partial field overrides for a research record from an
// external source. Returned keys must match the record's field tags
// (industry, funding, website, summary).
type EnrichFunc func(ctx context.Context, companyName string) (map[string]any, error)

var (
	stageChoices = []domain.FundingStage{
		domain.StageSeed, domain.StageSeriesA, domain.StageSeriesB, domain.StagePublic,
	}
	employeeChoices = []int{25, 120, 500, 2000, 10000}
)

// Researcher produces research records from a deterministic mock baseline,
// optionally augmented by a best-effort enrichment adapter. Enrichment
// failures are retried per the policy and then swallowed: the baseline
// record is returned unmodified.
type Researcher struct {
	enrich EnrichFunc
	policy retry.Policy
	rng    *rand.Rand
	logger *slog.Logger
}

// ResearcherOption configures the Researcher.
type ResearcherOption func(*Researcher)

// WithEnrichment attaches an enrichment adapter with its retry policy.
func WithEnrichment(fn EnrichFunc, policy retry.Policy) ResearcherOption {
	return func(r *Researcher) {
		r.enrich = fn
		r.policy = policy
	}
}

// WithSeed makes the mock baseline deterministic, for tests.
func WithSeed(seed int64) ResearcherOption {
	return func(r *Researcher) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithResearchLogger sets the logger.
func WithResearchLogger(logger *slog.Logger) ResearcherOption {
	return func(r *Researcher) {
		r.logger = logger
	}
}

// NewResearcher creates a research provider.
func NewResearcher(opts ...ResearcherOption) *Researcher {
	r := &Researcher{
		policy: retry.Policy{Attempts: 2, InitialDelay: time.Second},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Research returns a schema-complete record for the company. The summary is
// scrubbed of PII-like tokens before it is returned.
func (r *Researcher) Research(ctx context.Context, companyName string) (domain.ResearchRecord, error) {
	name := strings.TrimSpace(companyName)
	r.logger.Info("research_company called", "company", name)

	rec := domain.ResearchRecord{
		CompanyName:      name,
		Industry:         "Technology / SaaS",
		Stage:            stageChoices[r.rng.Intn(len(stageChoices))],
		EmployeeCountEst: employeeChoices[r.rng.Intn(len(employeeChoices))],
		Summary:          fmt.Sprintf("%s is a company operating in the Technology vertical (deterministic mock).", name),
	}

	if r.enrich != nil {
		overrides, err := retry.Do(ctx, r.policy, r.logger, func(ctx context.Context) (map[string]any, error) {
			return r.enrich(ctx, name)
		})
		if err != nil {
			// Enrichment is best-effort, never fatal.
			r.logger.Warn("enrichment adapter failed", "err", err)
		} else if err := mapstructure.Decode(overrides, &rec); err != nil {
			r.logger.Warn("enrichment data did not match record schema", "err", err)
		}
	}

	rec.Summary = scrub.Text(rec.Summary)
	return rec, nil
}

// StaticEnrichment is a placeholder adapter producing fixed enrichment data,
// standing in for a real enrichment API integration.
func StaticEnrichment(ctx context.Context, companyName string) (map[string]any, error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(companyName), " ", ""))
	return map[string]any{
		"industry": "SaaS",
		"funding":  "Series C",
		"website":  fmt.Sprintf("https://www.%s.com", slug),
		"summary":  fmt.Sprintf("%s appears to be a SaaS company (from enrichment).", strings.TrimSpace(companyName)),
	}, nil
}
