package pricing_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one-connexion/backend-pricing/internal/pricing"
)

type mockSettings struct {
	mu    sync.Mutex
	s     pricing.Settings
	err   error
	calls int
}

func (m *mockSettings) FetchSettings(ctx context.Context) (pricing.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return pricing.Settings{}, m.err
	}
	return m.s, nil
}

func (m *mockSettings) set(s pricing.Settings, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s, m.err = s, err
}

func (m *mockSettings) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestLoaderDefaults(t *testing.T) {
	s := pricing.DefaultSettings()
	assert.Equal(t, int64(550), s.VoucherValueMinorUnits)
	assert.InDelta(t, 0.1, s.SurchargePerKmVouchers, 1e-9)
}

func TestLoaderNilSourcePinsDefaults(t *testing.T) {
	l := pricing.NewLoader(nil, zerolog.Nop(), 0)
	assert.Equal(t, pricing.DefaultSettings(), l.Load(context.Background()))
}

func TestLoaderFallsBackOnColdFailure(t *testing.T) {
	src := &mockSettings{err: errors.New("connection refused")}
	l := pricing.NewLoader(src, zerolog.Nop(), 0)

	s := l.Load(context.Background())
	assert.Equal(t, pricing.DefaultSettings(), s, "load must never fail")
}

func TestLoaderCachesWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	src := &mockSettings{s: pricing.Settings{VoucherValueMinorUnits: 600, SurchargePerKmVouchers: 0.2}}
	l := pricing.NewLoader(src, zerolog.Nop(), 5*time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	first := l.Load(ctx)
	require.Equal(t, int64(600), first.VoucherValueMinorUnits)

	src.set(pricing.Settings{VoucherValueMinorUnits: 700, SurchargePerKmVouchers: 0.2}, nil)
	clock.Advance(4 * time.Minute)
	assert.Equal(t, int64(600), l.Load(ctx).VoucherValueMinorUnits, "within TTL, no refetch")
	assert.Equal(t, 1, src.callCount())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, int64(700), l.Load(ctx).VoucherValueMinorUnits, "past TTL, refetch")
	assert.Equal(t, 2, src.callCount())
}

func TestLoaderKeepsLastKnownOnRefreshFailure(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	src := &mockSettings{s: pricing.Settings{VoucherValueMinorUnits: 600, SurchargePerKmVouchers: 0.2}}
	l := pricing.NewLoader(src, zerolog.Nop(), 5*time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	require.Equal(t, int64(600), l.Load(ctx).VoucherValueMinorUnits)

	src.set(pricing.Settings{}, errors.New("connection refused"))
	clock.Advance(10 * time.Minute)
	assert.Equal(t, int64(600), l.Load(ctx).VoucherValueMinorUnits,
		"stale values beat defaults once a load has succeeded")
}

func TestLoaderInvalidate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	src := &mockSettings{s: pricing.Settings{VoucherValueMinorUnits: 600, SurchargePerKmVouchers: 0.2}}
	l := pricing.NewLoader(src, zerolog.Nop(), 5*time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	l.Load(ctx)
	src.set(pricing.Settings{VoucherValueMinorUnits: 800, SurchargePerKmVouchers: 0.3}, nil)

	l.Invalidate()
	assert.Equal(t, int64(800), l.Load(ctx).VoucherValueMinorUnits)
	assert.Equal(t, 2, src.callCount())
}
