/*
Package tools implements the business-logic steps the pipeline sequences:
company research (with optional best-effort enrichment), lead scoring, and
outreach email generation (with optional model polish).

Research and generation degrade gracefully on provider failure; scoring is
pure and fails only on bad input.
*/
package tools
