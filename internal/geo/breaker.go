package geo

import (
	"context"
	"errors"
	"time"

	"biolink/internal/config"
	"biolink/internal/model"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/rs/zerolog/log"
)

// BreakerProvider guards a Provider with a circuit breaker so an unreachable
// geolocation service fails fast instead of costing a full timeout per visit.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker[*model.Location]
}

// NewBreakerProvider wraps next with a circuit breaker configured by cfg
func NewBreakerProvider(next Provider, cfg *config.BreakerConfig) *BreakerProvider {
	minRequests := cfg.MinRequests
	ratio := cfg.FailureRatio

	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= ratio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("provider", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Geo circuit breaker state changed")
		},
		// Rate limiting and bad input say nothing about the health of the service.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrRateLimited) || errors.Is(err, ErrInvalidIP)
		},
	}
	if settings.Timeout <= 0 {
		settings.Timeout = time.Minute
	}

	return &BreakerProvider{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[*model.Location](settings),
	}
}

// Name returns the wrapped provider's name.
func (p *BreakerProvider) Name() string {
	return p.next.Name()
}

// Lookup calls the wrapped provider unless the circuit is open.
func (p *BreakerProvider) Lookup(ctx context.Context, ip string) (*model.Location, error) {
	loc, err := p.cb.Execute(func() (*model.Location, error) {
		return p.next.Lookup(ctx, ip)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Join(ErrLookupFailed, err)
		}
		return nil, err
	}
	return loc, nil
}

// State reports the current breaker state.
func (p *BreakerProvider) State() gobreaker.State {
	return p.cb.State()
}
