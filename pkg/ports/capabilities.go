package ports

import (
	"context"

	"github.com/rtavil/salespipe/pkg/domain"
)

// ResearchProvider returns a schema-complete research record for a company.
// Implementations may be deterministic mocks or delegate to an external
// enrichment source; either way the schema contract is the same.
type ResearchProvider interface {
	Research(ctx context.Context, companyName string) (domain.ResearchRecord, error)
}

// TextGenerator is the optional polishing capability. Given a prompt it
// produces text, failing with a transient (retryable) or permanent error.
// A nil TextGenerator means the capability is absent and callers must use
// the un-polished deterministic template.
type TextGenerator interface {
	Polish(ctx context.Context, prompt string) (string, error)
}

// OutreachGenerator produces an outreach email for a lead. The model argument
// carries the optional polish capability for this particular attempt; the
// first generation attempt always passes nil.
type OutreachGenerator interface {
	Generate(ctx context.Context, companyName, contactName string, tier domain.Tier, model TextGenerator) (domain.OutreachRecord, error)
}
