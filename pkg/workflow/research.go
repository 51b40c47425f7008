package workflow

import (
	"context"
	"fmt"

	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/observability"
)

// Research runs the research stage: call the provider, derive a lead
// summary, and merge the record into the session under "research".
func (p *Pipeline) Research(ctx context.Context, companyName, sessionID string) (domain.ResearchRecord, error) {
	rec, err := observability.Measure(p.recorder, "research_company", func() (domain.ResearchRecord, error) {
		return p.provider.Research(ctx, companyName)
	})
	if err != nil {
		return domain.ResearchRecord{}, fmt.Errorf("research stage: %w", err)
	}

	rec.LeadSummary = leadSummary(rec)

	if _, err := p.sessions.Update(ctx, sessionID, map[string]any{"research": rec}); err != nil {
		return domain.ResearchRecord{}, fmt.Errorf("research stage: saving to session %s: %w", sessionID, err)
	}

	p.logger.Info("research stage complete", "session_id", sessionID, "company", rec.CompanyName)
	return rec, nil
}

// leadSummary renders the record as fixed labeled lines.
func leadSummary(rec domain.ResearchRecord) string {
	return fmt.Sprintf(
		"Company: %s\nIndustry: %s\nStage: %s\nEmployees: %d\nSummary: %s",
		rec.CompanyName, rec.Industry, rec.Stage, rec.EmployeeCountEst, rec.Summary,
	)
}
