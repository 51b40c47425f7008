/*
Package salespipe is a small sales pipeline engine: research a company,
score the lead, and generate a validated outreach email, with all
intermediate state kept in a session store.

The pipeline is procedural and synchronous. The research stage writes its
record into the session; the outreach stage reads it back, scores the lead
with a placeholder intent signal, and generates the email through a
single-cycle validation/repair machine that ends in a deterministic
fallback template. External capabilities (enrichment, text polish) are
optional, retried with backoff, and degrade gracefully when absent or
failing.

# Usage

	engine := salespipe.New()
	result, err := engine.Run(ctx, "Acme Corp", "Alice")

Swap in a networked session store or a real polish capability through
options; see the pkg/adapters packages.
*/
package salespipe
