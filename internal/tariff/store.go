package tariff

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"github.com/one-connexion/backend-pricing/internal/lock"
	"github.com/one-connexion/backend-pricing/internal/obs"
	"github.com/one-connexion/backend-pricing/internal/resilience"
)

// Querier is the slice of pgxpool.Pool the grid fetcher needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// GridFetcher pulls the full rate grid from its backing system. Tests
// substitute an in-memory implementation.
type GridFetcher interface {
	FetchGrid(ctx context.Context) ([]CityRate, error)
}

const selectGrid = `SELECT postal_code, city_name,
	price_standard, price_express, price_urgent,
	price_lv_standard, price_lv_express
FROM city_pricing
ORDER BY city_name`

// PGGrid fetches the rate grid from the city_pricing table.
type PGGrid struct {
	db Querier
}

// NewPGGrid constructs a Postgres grid fetcher.
func NewPGGrid(db Querier) *PGGrid {
	return &PGGrid{db: db}
}

// FetchGrid scans the whole city_pricing table.
func (g *PGGrid) FetchGrid(ctx context.Context) ([]CityRate, error) {
	rows, err := g.db.Query(ctx, selectGrid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CityRate
	for rows.Next() {
		var (
			r                                      CityRate
			std, express, urgent, lvStd, lvExpress int
		)
		if err := rows.Scan(&r.PostalCode, &r.CityName, &std, &express, &urgent, &lvStd, &lvExpress); err != nil {
			return nil, err
		}
		r.Vouchers = map[Formula]int{
			FormulaStandard:             std,
			FormulaExpress:              express,
			FormulaUrgent:               urgent,
			FormulaLightVehicleStandard: lvStd,
			FormulaLightVehicleExpress:  lvExpress,
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Store serves rate lookups from a fetched grid. The full table is pulled
// once, indexed into a StaticSource, and swapped in atomically; lookups
// after the first fetch never touch the database. Reload and Invalidate
// control refresh; a Redis snapshot cache, when configured, lets fresh
// processes skip the initial table scan.
type Store struct {
	fetcher      GridFetcher
	cache        *Cache
	log          zerolog.Logger
	fetchTimeout time.Duration
	breaker      *resilience.Breaker
	locker       *lock.Locker

	snap  atomic.Pointer[StaticSource]
	mu    sync.Mutex // serialises loads; guards stale
	stale *StaticSource
}

// NewStore constructs a Store. cache may be nil.
func NewStore(fetcher GridFetcher, cache *Cache, log zerolog.Logger, fetchTimeout time.Duration) *Store {
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	return &Store{fetcher: fetcher, cache: cache, log: log, fetchTimeout: fetchTimeout}
}

// WithBreaker guards grid fetches with a circuit breaker: while it is open,
// loads fail fast instead of hammering a struggling database.
func (s *Store) WithBreaker(b *resilience.Breaker) *Store {
	s.breaker = b
	return s
}

// WithLocker makes cold loads take a distributed lock so only one instance
// scans the table; the rest pick up the Redis snapshot it leaves behind.
func (s *Store) WithLocker(l *lock.Locker) *Store {
	s.locker = l
	return s
}

// Lookup resolves a city name against the current snapshot, loading it on
// first use.
func (s *Store) Lookup(ctx context.Context, cityName string) (CityRate, error) {
	src, err := s.ensure(ctx)
	if err != nil {
		return CityRate{}, err
	}
	return src.Lookup(ctx, cityName)
}

// All returns every row of the current snapshot.
func (s *Store) All(ctx context.Context) ([]CityRate, error) {
	src, err := s.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return src.All(ctx)
}

// Preload forces the snapshot to be built now instead of on the first
// lookup. Startup calls it so a broken database fails the readiness probe
// rather than the first quote.
func (s *Store) Preload(ctx context.Context) error {
	_, err := s.ensure(ctx)
	return err
}

// Loaded reports whether a snapshot is currently installed.
func (s *Store) Loaded() bool {
	return s.snap.Load() != nil
}

// Invalidate drops the in-memory snapshot and the Redis copy. The next
// lookup refetches from Postgres. The dropped snapshot is retained as a
// stale fallback so a refetch failure degrades to old prices, not errors.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	if cur := s.snap.Load(); cur != nil {
		s.stale = cur
	}
	s.snap.Store(nil)
	s.mu.Unlock()
	if err := s.cache.Drop(ctx); err != nil {
		s.log.Warn().Err(err).Msg("tariff: dropping redis snapshot failed")
	}
}

// Reload refetches the grid from Postgres, bypassing the Redis snapshot,
// and swaps it in on success. On failure the current snapshot stays. It
// returns the row count of the new snapshot.
func (s *Store) Reload(ctx context.Context) (int, error) {
	src, err := s.fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	s.install(ctx, src)
	return src.Len(), nil
}

func (s *Store) ensure(ctx context.Context) (*StaticSource, error) {
	if src := s.snap.Load(); src != nil {
		return src, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if src := s.snap.Load(); src != nil {
		return src, nil
	}

	if rows, ok, err := s.cache.GetSnapshot(ctx); err != nil {
		s.log.Warn().Err(err).Msg("tariff: redis snapshot read failed")
	} else if ok {
		src, err := NewStaticSource(rows)
		if err == nil {
			s.log.Debug().Int("rows", src.Len()).Msg("tariff: grid loaded from redis snapshot")
			s.snap.Store(src)
			s.stale = src
			return src, nil
		}
		s.log.Warn().Err(err).Msg("tariff: redis snapshot rejected")
	}

	src, err := s.rebuild(ctx)
	if err != nil {
		if s.stale != nil {
			s.log.Warn().Err(err).Msg("tariff: grid refetch failed, serving stale snapshot")
			return s.stale, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	s.installLocked(ctx, src)
	return src, nil
}

const gridLockKey = "tariff:grid:lock"

// rebuild pulls a fresh grid, taking the distributed lock when one is
// configured. After acquiring the lock it re-checks the Redis snapshot:
// another instance holding the lock first may already have rebuilt it.
func (s *Store) rebuild(ctx context.Context) (*StaticSource, error) {
	if s.locker == nil {
		return s.fetch(ctx)
	}
	var (
		src      *StaticSource
		fetchErr error
	)
	lockErr := s.locker.WithLock(ctx, gridLockKey, 2*s.fetchTimeout, func(ctx context.Context) error {
		if rows, ok, err := s.cache.GetSnapshot(ctx); err == nil && ok {
			if built, buildErr := NewStaticSource(rows); buildErr == nil {
				src = built
				return nil
			}
		}
		src, fetchErr = s.fetch(ctx)
		return nil
	})
	if lockErr != nil {
		s.log.Warn().Err(lockErr).Msg("tariff: grid lock unavailable, fetching directly")
		return s.fetch(ctx)
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return src, nil
}

// fetch pulls the full grid with a bounded retry. Transient failures get
// two more attempts with exponential backoff before the caller sees an
// error.
func (s *Store) fetch(ctx context.Context) (*StaticSource, error) {
	if s.breaker != nil && !s.breaker.Allow(ctx) {
		return nil, resilience.ErrOpenCircuit
	}

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	var src *StaticSource
	backoff := retry.WithMaxRetries(2, retry.NewExponential(150*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		rows, err := s.fetcher.FetchGrid(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		built, err := NewStaticSource(rows)
		if err != nil {
			// Bad data will not improve on retry.
			return err
		}
		src = built
		return nil
	})
	if s.breaker != nil {
		s.breaker.Report(ctx, err == nil)
	}
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("rows", src.Len()).Msg("tariff: grid fetched")
	return src, nil
}

func (s *Store) install(ctx context.Context, src *StaticSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installLocked(ctx, src)
}

func (s *Store) installLocked(ctx context.Context, src *StaticSource) {
	s.snap.Store(src)
	s.stale = src
	if obs.GridRows != nil {
		obs.GridRows.Set(float64(src.Len()))
	}
	all, _ := src.All(ctx)
	if err := s.cache.SetSnapshot(ctx, all); err != nil {
		s.log.Warn().Err(err).Msg("tariff: redis snapshot write failed")
	}
}
