package tariff_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one-connexion/backend-pricing/internal/lock"
	"github.com/one-connexion/backend-pricing/internal/tariff"
)

type mockFetcher struct {
	mu    sync.Mutex
	rows  []tariff.CityRate
	err   error
	calls int
}

func (m *mockFetcher) FetchGrid(ctx context.Context) ([]tariff.CityRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]tariff.CityRate, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *mockFetcher) set(rows []tariff.CityRate, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows, m.err = rows, err
}

func (m *mockFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func gridRows(standard int) []tariff.CityRate {
	return []tariff.CityRate{
		{PostalCode: "94230", CityName: "Cachan", Vouchers: map[tariff.Formula]int{
			tariff.FormulaStandard:             standard,
			tariff.FormulaExpress:              standard + 3,
			tariff.FormulaUrgent:               standard + 6,
			tariff.FormulaLightVehicleStandard: standard * 2,
			tariff.FormulaLightVehicleExpress:  standard * 3,
		}},
	}
}

func newTestStore(t *testing.T, fetcher tariff.GridFetcher, withRedis bool) (*tariff.Store, *redis.Client) {
	t.Helper()
	var client *redis.Client
	if withRedis {
		mr := miniredis.RunT(t)
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
	}
	cache := tariff.NewCache(client, time.Hour)
	return tariff.NewStore(fetcher, cache, zerolog.Nop(), 2*time.Second), client
}

func TestStoreFetchesOnce(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		row, err := store.Lookup(ctx, "cachan")
		require.NoError(t, err)
		assert.Equal(t, "Cachan", row.CityName)
	}
	assert.Equal(t, 1, fetcher.callCount())
	assert.True(t, store.Loaded())
}

func TestStoreLookupNotFoundAfterLoad(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)

	_, err := store.Lookup(context.Background(), "Tombouctou")
	assert.ErrorIs(t, err, tariff.ErrCityNotFound)
}

func TestStoreSourceUnavailable(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	store, _ := newTestStore(t, fetcher, false)

	_, err := store.Lookup(context.Background(), "Cachan")
	assert.ErrorIs(t, err, tariff.ErrSourceUnavailable)
	// Initial load retries before giving up.
	assert.Equal(t, 3, fetcher.callCount())
}

func TestStoreInvalidateRefetches(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)
	ctx := context.Background()

	row, err := store.Lookup(ctx, "Cachan")
	require.NoError(t, err)
	assert.Equal(t, 4, row.Vouchers[tariff.FormulaStandard])

	fetcher.set(gridRows(9), nil)
	store.Invalidate(ctx)
	assert.False(t, store.Loaded())

	row, err = store.Lookup(ctx, "Cachan")
	require.NoError(t, err)
	assert.Equal(t, 9, row.Vouchers[tariff.FormulaStandard])
	assert.Equal(t, 2, fetcher.callCount())
}

func TestStoreServesStaleOnRefetchFailure(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)
	ctx := context.Background()

	_, err := store.Lookup(ctx, "Cachan")
	require.NoError(t, err)

	fetcher.set(nil, errors.New("connection refused"))
	store.Invalidate(ctx)

	row, err := store.Lookup(ctx, "Cachan")
	require.NoError(t, err, "stale snapshot should keep serving")
	assert.Equal(t, 4, row.Vouchers[tariff.FormulaStandard])
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)
	ctx := context.Background()

	require.NoError(t, store.Preload(ctx))

	fetcher.set(gridRows(7), nil)
	n, err := store.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := store.Lookup(ctx, "Cachan")
	require.NoError(t, err)
	assert.Equal(t, 7, row.Vouchers[tariff.FormulaStandard])
}

func TestStoreReloadFailureKeepsSnapshot(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)
	ctx := context.Background()

	require.NoError(t, store.Preload(ctx))

	fetcher.set(nil, errors.New("connection refused"))
	_, err := store.Reload(ctx)
	assert.ErrorIs(t, err, tariff.ErrSourceUnavailable)

	row, err := store.Lookup(ctx, "Cachan")
	require.NoError(t, err)
	assert.Equal(t, 4, row.Vouchers[tariff.FormulaStandard])
}

func TestStoreUsesRedisSnapshot(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, client := newTestStore(t, fetcher, true)
	ctx := context.Background()

	require.NoError(t, store.Preload(ctx))
	require.Equal(t, 1, fetcher.callCount())

	// A second store sharing the Redis instance loads without touching
	// the fetcher at all.
	fresh := tariff.NewStore(&mockFetcher{err: errors.New("db down")},
		tariff.NewCache(client, time.Hour), zerolog.Nop(), 2*time.Second)
	row, err := fresh.Lookup(ctx, "Cachan")
	require.NoError(t, err)
	assert.Equal(t, 4, row.Vouchers[tariff.FormulaStandard])
}

func TestStoreInvalidateDropsRedisSnapshot(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, client := newTestStore(t, fetcher, true)
	ctx := context.Background()

	require.NoError(t, store.Preload(ctx))
	store.Invalidate(ctx)

	err := client.Get(ctx, "tariff:grid:v1").Err()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestStoreRejectsDuplicateRows(t *testing.T) {
	rows := append(gridRows(4), gridRows(5)...)
	fetcher := &mockFetcher{rows: rows}
	store, _ := newTestStore(t, fetcher, false)

	_, err := store.Lookup(context.Background(), "Cachan")
	assert.ErrorIs(t, err, tariff.ErrSourceUnavailable)
	// Data defects are not retried.
	assert.Equal(t, 1, fetcher.callCount())
}

func TestStoreLockerLoadsAndReleases(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()

	store := tariff.NewStore(fetcher, tariff.NewCache(client, time.Hour), zerolog.Nop(), 2*time.Second).
		WithLocker(&lock.Locker{R: client})

	require.NoError(t, store.Preload(ctx))
	assert.Equal(t, 1, fetcher.callCount())

	// The rebuild lock must not outlive the load.
	err := client.Get(ctx, "tariff:grid:lock").Err()
	assert.ErrorIs(t, err, redis.Nil)

	// A second instance sharing the same Redis finds the snapshot and
	// never queries the database.
	broken := &mockFetcher{err: errors.New("db down")}
	second := tariff.NewStore(broken, tariff.NewCache(client, time.Hour), zerolog.Nop(), 2*time.Second).
		WithLocker(&lock.Locker{R: client})
	row, err := second.Lookup(ctx, "Cachan")
	require.NoError(t, err)
	assert.Equal(t, 4, row.Vouchers[tariff.FormulaStandard])
	assert.Equal(t, 0, broken.callCount())
}

func TestStoreLockerFallsBackWithoutRedis(t *testing.T) {
	fetcher := &mockFetcher{rows: gridRows(4)}
	store, _ := newTestStore(t, fetcher, false)
	store = store.WithLocker(&lock.Locker{})

	row, err := store.Lookup(context.Background(), "Cachan")
	require.NoError(t, err)
	assert.Equal(t, "Cachan", row.CityName)
	assert.Equal(t, 1, fetcher.callCount())
}
