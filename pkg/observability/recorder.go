package observability

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rtavil/salespipe/internal/logging"
)

// Status of a recorded tool call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Recorder observes externally-facing tool calls, logging a structured
// {tool, status, duration} record for each and optionally exporting
// Prometheus metrics. It is applied at composition time by wrapping each
// call in Measure; a nil Recorder records nothing.
type Recorder struct {
	logger    *slog.Logger
	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// Option configures the Recorder.
type Option func(*Recorder)

// WithLogger sets the logger for tool-call records.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// NewRecorder creates a Recorder. If reg is non-nil, the tool-call counter
// and duration histogram are registered on it.
func NewRecorder(reg prometheus.Registerer, opts ...Option) *Recorder {
	r := &Recorder{
		logger: logging.NewNop(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salespipe_tool_calls_total",
			Help: "Number of tool calls by tool name and outcome.",
		}, []string{"tool", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "salespipe_tool_duration_seconds",
			Help:    "Duration of tool calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if reg != nil {
		reg.MustRegister(r.calls, r.durations)
	}
	return r
}

func (r *Recorder) record(tool string, d time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.calls.WithLabelValues(tool, string(status)).Inc()
	r.durations.WithLabelValues(tool).Observe(d.Seconds())
	r.logger.Info("tool call completed",
		"tool", tool,
		"status", string(status),
		"duration_seconds", d.Seconds(),
	)
}

// Measure runs fn and records its outcome and duration under tool. The
// result and error pass through untouched. A nil Recorder just runs fn.
func Measure[T any](r *Recorder, tool string, fn func() (T, error)) (T, error) {
	if r == nil {
		return fn()
	}
	start := time.Now()
	v, err := fn()
	r.record(tool, time.Since(start), err)
	return v, err
}
