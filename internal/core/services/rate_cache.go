package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultRateTTL is how long a fetched rate is served before it is refetched.
	DefaultRateTTL = 5 * time.Minute
	// DefaultRateFetchTimeout bounds a shared fetch, which outlives the caller that started it.
	DefaultRateFetchTimeout = 10 * time.Second
)

// DefaultFallbackRate is served when the rate cannot be fetched (1 ZC = 1 PKR).
var DefaultFallbackRate = decimal.NewFromInt(1)

var errNonPositiveRate = errors.New("fetched conversion rate is not positive")

// RateFetchFunc loads the newest conversion rate from the backing store.
type RateFetchFunc func(ctx context.Context) (decimal.Decimal, error)

// RateCache holds the most recently fetched conversion rate for a fixed TTL.
// Failed fetches are logged and answered with the fallback rate; they never
// overwrite a cached value, so the next call retries.
type RateCache struct {
	BaseService
	fetch        RateFetchFunc
	now          func() time.Time
	ttl          time.Duration
	fetchTimeout time.Duration
	fallback     decimal.Decimal

	mu        sync.RWMutex
	rate      decimal.Decimal
	fetchedAt time.Time
	populated bool

	group singleflight.Group
}

// RateCacheOption is a functional option for configuring the rate cache
type RateCacheOption func(*RateCache)

// WithRateTTL overrides the staleness threshold.
func WithRateTTL(ttl time.Duration) RateCacheOption {
	return func(c *RateCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithFallbackRate overrides the rate served when fetching fails.
func WithFallbackRate(rate decimal.Decimal) RateCacheOption {
	return func(c *RateCache) {
		if rate.IsPositive() {
			c.fallback = rate
		}
	}
}

// WithFetchTimeout overrides how long a shared fetch may run.
func WithFetchTimeout(timeout time.Duration) RateCacheOption {
	return func(c *RateCache) {
		if timeout > 0 {
			c.fetchTimeout = timeout
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) RateCacheOption {
	return func(c *RateCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRateCache creates an empty cache in front of fetch.
func NewRateCache(fetch RateFetchFunc, options ...RateCacheOption) *RateCache {
	c := &RateCache{
		fetch:        fetch,
		now:          time.Now,
		ttl:          DefaultRateTTL,
		fetchTimeout: DefaultRateFetchTimeout,
		fallback:     DefaultFallbackRate,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// GetLatestConversionRate returns the cached rate while it is fresh, otherwise
// fetches a new one. It never fails: fetch errors yield the fallback rate.
func (c *RateCache) GetLatestConversionRate(ctx context.Context) decimal.Decimal {
	if rate, ok := c.fresh(); ok {
		c.LogDebug(ctx, "Serving cached conversion rate", slog.String("rate", rate.String()))
		return rate
	}

	// Concurrent misses share one fetch. It runs detached from the caller that
	// started it, so a cancelled request cannot fail the callers waiting on it.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("rate", func() (interface{}, error) {
		return c.refresh(fetchCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			c.LogError(ctx, res.Err, "Failed to fetch conversion rate, serving fallback",
				slog.String("fallback_rate", c.fallback.String()))
			return c.fallback
		}
		return res.Val.(decimal.Decimal)
	case <-ctx.Done():
		c.LogInfo(ctx, "Caller gone before conversion rate fetch finished, serving fallback",
			slog.String("reason", ctx.Err().Error()),
			slog.String("fallback_rate", c.fallback.String()))
		return c.fallback
	}
}

func (c *RateCache) refresh(ctx context.Context) (decimal.Decimal, error) {
	if rate, ok := c.fresh(); ok {
		return rate, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()
	rate, err := c.fetch(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", errNonPositiveRate, rate.String())
	}

	c.mu.Lock()
	c.rate = rate
	c.fetchedAt = c.now()
	c.populated = true
	c.mu.Unlock()
	return rate, nil
}

// Snapshot reports the cached rate and when it was fetched. ok is false
// until the first successful fetch.
func (c *RateCache) Snapshot() (rate decimal.Decimal, fetchedAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate, c.fetchedAt, c.populated
}

func (c *RateCache) fresh() (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated || c.now().Sub(c.fetchedAt) >= c.ttl {
		return decimal.Decimal{}, false
	}
	return c.rate, true
}
