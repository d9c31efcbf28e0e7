package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Breaker settings
const (
	BreakerFailureThreshold = 3
	BreakerOpenTimeout      = 30 * time.Second
)

// ErrUnavailable is returned while the breaker is open
var ErrUnavailable = errors.New("suggestion service temporarily unavailable")

// Breaker short-circuits a Provider after repeated failures
type Breaker struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
	log  zerolog.Logger
}

// NewBreaker wraps next in a circuit breaker that opens after
// BreakerFailureThreshold consecutive failures for BreakerOpenTimeout
func NewBreaker(next Provider, log zerolog.Logger) *Breaker {
	return newBreaker(next, log, BreakerOpenTimeout)
}

func newBreaker(next Provider, log zerolog.Logger, openTimeout time.Duration) *Breaker {
	b := &Breaker{next: next, log: log}
	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= BreakerFailureThreshold
		},
		// Caller mistakes and cancellations say nothing about the backend
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrEmptyHanzi) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.log.Warn().Str("from", from.String()).Str("to", to.String()).Msg("suggestion breaker state changed")
		},
	})
	return b
}

// Name returns the wrapped provider name
func (b *Breaker) Name() string {
	return b.next.Name()
}

// IsAvailable reports configuration problems and an open breaker
func (b *Breaker) IsAvailable() error {
	if err := b.next.IsAvailable(); err != nil {
		return err
	}
	if b.cb.State() == gobreaker.StateOpen {
		return ErrUnavailable
	}
	return nil
}

// Suggest forwards to the wrapped provider unless the breaker is open
func (b *Breaker) Suggest(ctx context.Context, hanzi string) (Suggestion, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Suggest(ctx, hanzi)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Suggestion{}, fmt.Errorf("%w: %s", ErrUnavailable, b.Name())
	}
	if err != nil {
		b.log.Debug().Err(err).Str("hanzi", hanzi).Msg("suggestion failed")
		return Suggestion{}, err
	}
	return result.(Suggestion), nil
}
