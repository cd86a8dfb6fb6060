package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var ErrCircuitOpen = errors.New("weather provider temporarily unavailable")

// RateLimitedGateway paces outgoing requests. Waiting respects ctx.
// burst must be at least 1 or every wait fails.
type RateLimitedGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
}

func NewRateLimitedGateway(gateway WeatherGateway, rps float64, burst int) *RateLimitedGateway {
	return &RateLimitedGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedGateway) FetchByName(ctx context.Context, name string) (Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("rate limit wait failed: %w", err)
	}
	return r.gateway.FetchByName(ctx, name)
}

func (r *RateLimitedGateway) FetchByCoordinates(ctx context.Context, lat, lon float64) (Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("rate limit wait failed: %w", err)
	}
	return r.gateway.FetchByCoordinates(ctx, lat, lon)
}

// BreakerGateway stops calling the provider after maxFailures consecutive upstream
// failures and fails fast until openTimeout has passed. Client errors such as an
// unknown city do not count as failures.
type BreakerGateway struct {
	gateway WeatherGateway
	circuit *gobreaker.CircuitBreaker
}

func NewBreakerGateway(gateway WeatherGateway, maxFailures uint32, openTimeout time.Duration) *BreakerGateway {
	if maxFailures == 0 {
		maxFailures = 1
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isUpstreamHealthy,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &BreakerGateway{
		gateway: gateway,
		circuit: cb,
	}
}

func (b *BreakerGateway) FetchByName(ctx context.Context, name string) (Snapshot, error) {
	return b.execute(func() (Snapshot, error) {
		return b.gateway.FetchByName(ctx, name)
	})
}

func (b *BreakerGateway) FetchByCoordinates(ctx context.Context, lat, lon float64) (Snapshot, error) {
	return b.execute(func() (Snapshot, error) {
		return b.gateway.FetchByCoordinates(ctx, lat, lon)
	})
}

func (b *BreakerGateway) State() gobreaker.State {
	return b.circuit.State()
}

func (b *BreakerGateway) execute(call func() (Snapshot, error)) (Snapshot, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		return call()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return Snapshot{}, err
	}

	snapshot, ok := result.(Snapshot)
	if !ok {
		return Snapshot{}, fmt.Errorf("unexpected result type from circuit breaker")
	}

	return snapshot, nil
}

func isUpstreamHealthy(err error) bool {
	if err == nil {
		return true
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode < http.StatusInternalServerError && fetchErr.StatusCode != http.StatusTooManyRequests
	}

	return errors.Is(err, context.Canceled)
}
