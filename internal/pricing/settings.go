// Package pricing computes delivery quotes: the per-city voucher count for
// the requested formula, a distance surcharge for suburb-to-suburb runs,
// and the conversion to money through the configured voucher value.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/one-connexion/backend-pricing/internal/obs"
)

// Pricing defaults, applied whenever the settings table is unreachable or a
// key is missing. Quotes must never fail because configuration is down.
const (
	DefaultVoucherValueMinorUnits = 550
	DefaultSurchargePerKm         = 0.1
	DefaultSettingsTTL            = 5 * time.Minute
)

// Settings are the two tunables of the price formula.
type Settings struct {
	// VoucherValueMinorUnits is the money value of one voucher, in cents.
	VoucherValueMinorUnits int64 `json:"voucherValueMinorUnits"`
	// SurchargePerKmVouchers is the per-kilometre surcharge, in vouchers,
	// applied when neither endpoint is the capital.
	SurchargePerKmVouchers float64 `json:"surchargePerKmVouchers"`
}

// DefaultSettings returns the built-in fallback values.
func DefaultSettings() Settings {
	return Settings{
		VoucherValueMinorUnits: DefaultVoucherValueMinorUnits,
		SurchargePerKmVouchers: DefaultSurchargePerKm,
	}
}

// Keys of the tariff_metadata table. Values are decimal strings; the voucher
// value is stored in euros and converted to cents on read.
const (
	settingsKeyVoucherValue = "bon_value_eur"
	settingsKeySurcharge    = "supplement_per_km_bons"
)

// ErrSettingsUnavailable indicates the settings backend could not be read.
// The loader swallows it and falls back to defaults; only UpdateSettings
// surfaces it to callers.
var ErrSettingsUnavailable = errors.New("pricing: settings unavailable")

// SettingsDB is the slice of pgxpool.Pool the settings store needs.
type SettingsDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SettingsSource fetches current settings from the backing store.
type SettingsSource interface {
	FetchSettings(ctx context.Context) (Settings, error)
}

// PGSettings reads and writes the tariff_metadata key/value table.
type PGSettings struct {
	db SettingsDB
}

// NewPGSettings constructs a Postgres settings store.
func NewPGSettings(db SettingsDB) *PGSettings {
	return &PGSettings{db: db}
}

// FetchSettings reads both pricing keys. Missing keys keep their defaults;
// a malformed value is an error so a bad write cannot silently zero prices.
func (p *PGSettings) FetchSettings(ctx context.Context) (Settings, error) {
	rows, err := p.db.Query(ctx,
		`SELECT key, value FROM tariff_metadata WHERE key = ANY($1)`,
		[]string{settingsKeyVoucherValue, settingsKeySurcharge})
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}
	defer rows.Close()

	out := DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return Settings{}, fmt.Errorf("pricing: bad %s value %q", key, value)
		}
		switch key {
		case settingsKeyVoucherValue:
			out.VoucherValueMinorUnits = int64(math.Round(f * 100))
		case settingsKeySurcharge:
			out.SurchargePerKmVouchers = f
		}
	}
	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}
	return out, nil
}

// UpdateSettings upserts both pricing keys and returns the stored values.
func (p *PGSettings) UpdateSettings(ctx context.Context, s Settings) error {
	upsert := `INSERT INTO tariff_metadata (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	voucherEUR := strconv.FormatFloat(float64(s.VoucherValueMinorUnits)/100, 'f', 2, 64)
	if _, err := p.db.Exec(ctx, upsert, settingsKeyVoucherValue, voucherEUR); err != nil {
		return fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}
	surcharge := strconv.FormatFloat(s.SurchargePerKmVouchers, 'f', -1, 64)
	if _, err := p.db.Exec(ctx, upsert, settingsKeySurcharge, surcharge); err != nil {
		return fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}
	return nil
}

// Loader caches settings with a TTL so the quote path does not hit Postgres
// on every request. Load never fails: on a cold cache with a broken backend
// it returns the built-in defaults, and after a successful read it serves
// the last-known values even past their TTL while refreshes keep failing.
type Loader struct {
	source SettingsSource
	log    zerolog.Logger
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	current   Settings
	loaded    bool
	expiresAt time.Time
}

// NewLoader constructs a settings loader. A nil source pins the defaults,
// for grid-only deployments without a database.
func NewLoader(source SettingsSource, log zerolog.Logger, ttl time.Duration) *Loader {
	if ttl <= 0 {
		ttl = DefaultSettingsTTL
	}
	return &Loader{source: source, log: log, ttl: ttl, now: time.Now}
}

// WithClock overrides the loader's time source, for tests.
func (l *Loader) WithClock(now func() time.Time) *Loader {
	l.now = now
	return l
}

// Load returns the current settings.
func (l *Loader) Load(ctx context.Context) Settings {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded && l.now().Before(l.expiresAt) {
		return l.current
	}
	if l.source == nil {
		l.current = DefaultSettings()
		l.loaded = true
		l.expiresAt = l.now().Add(l.ttl)
		return l.current
	}

	s, err := l.source.FetchSettings(ctx)
	if obs.SettingsRefreshTotal != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		obs.SettingsRefreshTotal.WithLabelValues(result).Inc()
	}
	if err != nil {
		if l.loaded {
			l.log.Warn().Err(err).Msg("pricing: settings refresh failed, keeping last-known values")
			l.expiresAt = l.now().Add(l.ttl)
			return l.current
		}
		l.log.Warn().Err(err).Msg("pricing: settings unavailable, using defaults")
		// The cache timestamp refreshes even on fallback so a dead
		// backend is probed once per TTL, not once per quote.
		l.current = DefaultSettings()
		l.loaded = true
		l.expiresAt = l.now().Add(l.ttl)
		return l.current
	}

	l.current = s
	l.loaded = true
	l.expiresAt = l.now().Add(l.ttl)
	return s
}

// Invalidate expires the cache so the next Load refetches.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.expiresAt = time.Time{}
	l.mu.Unlock()
}
