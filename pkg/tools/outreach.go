package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/ports"
	"github.com/rtavil/salespipe/pkg/retry"
	"github.com/rtavil/salespipe/pkg/scrub"
)

const polishInstruction = "Polish the following outreach email for tone and clarity. " +
	"DO NOT add any company-specific factual claims (no funding, no tech stack). " +
	"Email:\n\n"

// Generator produces outreach emails from a fixed deterministic template,
// optionally polished by a text-generation capability. The template keeps the
// factual surface minimal; the polish prompt instructs the model to add no
// new claims, and polished output is scrubbed regardless.
type Generator struct {
	policy retry.Policy
	logger *slog.Logger
}

// GeneratorOption configures the Generator.
type GeneratorOption func(*Generator)

// WithPolishRetry sets the retry policy for polish calls.
func WithPolishRetry(policy retry.Policy) GeneratorOption {
	return func(g *Generator) {
		g.policy = policy
	}
}

// WithGeneratorLogger sets the logger.
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates an outreach generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		policy: retry.Policy{Attempts: 2, InitialDelay: 500 * time.Millisecond},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the outreach email. When model is nil the deterministic
// template is returned as-is. When a model is supplied its output replaces
// the template, with polish failures retried per policy and then swallowed
// back to the template.
func (g *Generator) Generate(ctx context.Context, companyName, contactName string, tier domain.Tier, model ports.TextGenerator) (domain.OutreachRecord, error) {
	g.logger.Info("generate_outreach called",
		"company", companyName,
		"contact", contactName,
		"tier", string(tier),
	)

	template := fmt.Sprintf(
		"Hi %s,\n\n"+
			"I noticed %s is growing rapidly. We help teams like yours accelerate sales operations by automating lead qualification and outreach.\n\n"+
			"If you're open to a 15-minute sync, I'd love to share how companies reduced SDR time by 30%%.\n\n"+
			"Best,\nSales-ops team",
		contactName, companyName,
	)

	if model != nil {
		prompt := polishInstruction + template
		polished, err := retry.Do(ctx, g.policy, g.logger, func(ctx context.Context) (string, error) {
			return model.Polish(ctx, prompt)
		})
		if err != nil {
			g.logger.Warn("model polish failed", "err", err)
		} else {
			return domain.OutreachRecord{Email: scrub.Text(polished), Tier: tier}, nil
		}
	}

	return domain.OutreachRecord{Email: template, Tier: tier}, nil
}
