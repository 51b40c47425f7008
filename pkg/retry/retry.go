package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/domain"
)

// Policy controls how often and how patiently an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, including the first.
	// Values <= 0 are treated as 1 (no retries).
	Attempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// Multiplier grows the delay each attempt. Values <= 0 default to 2.0.
	Multiplier float64
}

func (p Policy) normalized() Policy {
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if p.Multiplier <= 0 {
		p.Multiplier = 2.0
	}
	return p
}

// delay returns the backoff before retry number i (0-based).
func (p Policy) delay(i int) time.Duration {
	d := float64(p.InitialDelay)
	for ; i > 0; i-- {
		d *= p.Multiplier
	}
	return time.Duration(d)
}

// Do runs op up to p.Attempts times, sleeping between attempts. Only errors
// marked transient (domain.Transient) are retried; anything else is fatal and
// returned immediately. The backoff sleep honors ctx cancellation, but an
// in-flight op call is not bounded by this function.
func Do[T any](ctx context.Context, p Policy, logger *slog.Logger, op func(context.Context) (T, error)) (T, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	p = p.normalized()

	var zero T
	var lastErr error
	for i := 0; i < p.Attempts; i++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if !domain.IsTransient(err) {
			return zero, err
		}
		lastErr = err

		if i == p.Attempts-1 {
			break
		}
		wait := p.delay(i)
		logger.Warn("call failed, retrying",
			"attempt", i+1,
			"attempts", p.Attempts,
			"wait", wait,
			"err", err,
		)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
	return zero, lastErr
}
