/*
Package observability wraps externally-facing tool calls to record their
name, outcome, and wall-clock duration.

Records are emitted as structured logs and, when a Prometheus registerer is
provided, as a counter and duration histogram.
*/
package observability
