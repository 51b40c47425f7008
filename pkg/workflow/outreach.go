package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/observability"
	"github.com/rtavil/salespipe/pkg/tools"
)

// Outreach runs the outreach stage: score the lead, generate the email, and
// run the validation/repair machine. Precondition: the research stage must
// already have written to this session; otherwise domain.ErrMissingResearch
// is returned and nothing is retried.
//
// At most two generation attempts happen per run (initial + one repair); the
// deterministic fallback cannot fail and caps the machine.
func (p *Pipeline) Outreach(ctx context.Context, companyName, contactName, sessionID string) (*OutreachResult, error) {
	research, err := p.loadResearch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	score, err := observability.Measure(p.recorder, "score_lead", func() (domain.ScoreRecord, error) {
		return p.score(companyName, research.EmployeeCountEst)
	})
	if err != nil {
		return nil, fmt.Errorf("outreach stage: %w", err)
	}

	outreach := p.generateValidated(ctx, companyName, contactName, score.Tier)
	outreach.ScoreExplanation = fmt.Sprintf(
		"Score %s (Tier %s) based on %d employees and intent %d.",
		formatScore(score.Score), score.Tier, research.EmployeeCountEst, p.intent,
	)

	result := &OutreachResult{Score: score, Outreach: outreach}
	partial := map[string]any{"score": score, "outreach": outreach}
	if _, err := p.sessions.Update(ctx, sessionID, partial); err != nil {
		return nil, fmt.Errorf("outreach stage: saving to session %s: %w", sessionID, err)
	}

	p.logger.Info("outreach stage complete",
		"session_id", sessionID,
		"tier", string(score.Tier),
		"validation_status", string(outreach.ValidationStatus),
	)
	return result, nil
}

// loadResearch enforces the stage precondition and decodes the stored record.
func (p *Pipeline) loadResearch(ctx context.Context, sessionID string) (domain.ResearchRecord, error) {
	var rec domain.ResearchRecord

	sess, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return rec, fmt.Errorf("session %s: %w", sessionID, domain.ErrMissingResearch)
		}
		return rec, fmt.Errorf("outreach stage: %w", err)
	}

	raw, ok := sess.State["research"]
	if !ok {
		return rec, fmt.Errorf("session %s: %w", sessionID, domain.ErrMissingResearch)
	}

	// The backend may hold the record as a struct (memory) or a decoded JSON
	// map (redis); mapstructure covers both.
	if err := mapstructure.Decode(raw, &rec); err != nil {
		return rec, fmt.Errorf("session %s: malformed research data: %w", sessionID, err)
	}
	return rec, nil
}

// generateValidated runs the repair state machine: generate without polish,
// validate, repair once with the polish capability attached, and fall back
// to the fixed deterministic template if still invalid.
func (p *Pipeline) generateValidated(ctx context.Context, companyName, contactName string, tier domain.Tier) domain.OutreachRecord {
	outreach := p.generate(ctx, companyName, contactName, tier, false)
	if ValidateEmail(outreach.Email) {
		outreach.ValidationStatus = domain.StatusValid
		return outreach
	}

	outreach = p.generate(ctx, companyName, contactName, tier, true)
	if ValidateEmail(outreach.Email) {
		outreach.ValidationStatus = domain.StatusRepaired
		return outreach
	}

	// No external dependency: this branch cannot fail.
	return domain.OutreachRecord{
		Email:            fallbackEmail(contactName, companyName),
		Tier:             tier,
		ValidationStatus: domain.StatusFallback,
	}
}

// generate calls the generator through the recorder. Generator errors are
// contained here: the attempt counts as invalid and the machine moves on.
func (p *Pipeline) generate(ctx context.Context, companyName, contactName string, tier domain.Tier, polish bool) domain.OutreachRecord {
	model := p.model
	if !polish {
		model = nil // the first attempt never uses the polish capability
	}

	outreach, err := observability.Measure(p.recorder, "generate_outreach", func() (domain.OutreachRecord, error) {
		return p.generator.Generate(ctx, companyName, contactName, tier, model)
	})
	if err != nil {
		p.logger.Warn("outreach generation failed", "err", err)
		return domain.OutreachRecord{Tier: tier}
	}
	return outreach
}

func (p *Pipeline) score(companyName string, employeeCount int) (domain.ScoreRecord, error) {
	return tools.ScoreLead(companyName, employeeCount, p.intent)
}

func fallbackEmail(contactName, companyName string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nChecking in regarding %s. We have some updates that might interest you.\n\nBest,\nSales Team",
		contactName, companyName,
	)
}

// formatScore renders scores the way they read in prose: no trailing zeros.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
