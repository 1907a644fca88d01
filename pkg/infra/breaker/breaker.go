package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

var ErrOpen = errors.New("circuit breaker is open")

//go:generate mockery --name=CircuitBreaker --dir=. --output=./mocks --filename=circuit_breaker_mock.go --case=underscore --with-expecter
type CircuitBreaker interface {
	Execute(fn func() error) error
}

type Settings struct {
	Name        string
	Timeout     time.Duration
	MaxFailures uint32
	MaxRequests uint32
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

func New(s Settings) CircuitBreaker {
	maxFailures := s.MaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}
	maxRequests := s.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1
	}
	settings := gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: maxRequests,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// a caller giving up is not a provider failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	return New(Settings{Name: name, Timeout: timeout, MaxFailures: maxFailures})
}

func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	_, err := g.breaker.Execute(func() (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic recovered: %v", r)
			}
		}()
		return nil, fn()
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), ErrOpen)
	}
	return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
}

// Passthrough runs fn directly. Used when no breaker is configured.
type Passthrough struct{}

func (Passthrough) Execute(fn func() error) error {
	return fn()
}
