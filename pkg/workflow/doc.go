/*
Package workflow implements the procedural pipeline engine.

A Pipeline sequences two stages over a shared session store. The research
stage calls the research provider and writes its record into the session.
The outreach stage reads that record back, scores the lead, and generates
the outreach email through a single-cycle validation/repair machine:

	generate (no polish) -> valid?            -> status "valid"
	  else repair: generate (with polish) ->  -> status "repaired"
	    else fixed deterministic template     -> status "fallback"

The fallback branch has no external dependency and is the engine's
availability guarantee. The coordinator (Run) creates the session, runs both
stages in order, and performs no error handling of its own.
*/
package workflow
