// Package tariff holds the per-city voucher rate table and its sourcing
// strategies: an embedded static grid and a Postgres-backed store with an
// in-memory snapshot cache.
package tariff

import (
	"context"
	"errors"
	"strings"
)

// Formula identifies a service tier. Each city row carries an independent
// voucher count for every formula; the engine never compares tiers.
type Formula string

// The five service tiers of the rate grid.
const (
	FormulaStandard             Formula = "STANDARD"
	FormulaExpress              Formula = "EXPRESS"
	FormulaUrgent               Formula = "URGENT"
	FormulaLightVehicleStandard Formula = "LIGHT_VEHICLE_STANDARD"
	FormulaLightVehicleExpress  Formula = "LIGHT_VEHICLE_EXPRESS"
)

var (
	// ErrCityNotFound is the normal outcome for a city outside the served
	// area. It is distinct from ErrSourceUnavailable so callers can tell
	// "we do not serve this city" from "the rate source is down".
	ErrCityNotFound = errors.New("tariff: city not found in rate table")

	// ErrSourceUnavailable indicates a transient failure fetching the rate
	// table. Lookups must surface it rather than masquerade as not-found.
	ErrSourceUnavailable = errors.New("tariff: rate source unavailable")

	// ErrUnknownFormula indicates a caller bug: the requested tier is not
	// one of the five grid columns.
	ErrUnknownFormula = errors.New("tariff: unknown formula")

	// ErrDuplicateCity reports two grid rows collapsing onto one lookup
	// key, a data-integrity defect surfaced at load time.
	ErrDuplicateCity = errors.New("tariff: duplicate city after normalization")
)

// Formulas lists all service tiers in grid-column order.
func Formulas() []Formula {
	return []Formula{
		FormulaStandard,
		FormulaExpress,
		FormulaUrgent,
		FormulaLightVehicleStandard,
		FormulaLightVehicleExpress,
	}
}

// ParseFormula validates a caller-supplied tier name.
func ParseFormula(s string) (Formula, error) {
	f := Formula(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FormulaStandard, FormulaExpress, FormulaUrgent,
		FormulaLightVehicleStandard, FormulaLightVehicleExpress:
		return f, nil
	}
	return "", ErrUnknownFormula
}

// CityRate is one row of the rate table: the fixed pickup charge, in
// vouchers, for every formula, for one origin city.
type CityRate struct {
	PostalCode string          `json:"postalCode"`
	CityName   string          `json:"cityName"`
	Vouchers   map[Formula]int `json:"vouchers"`
}

// VoucherCount returns the base voucher count for the given tier.
func (c CityRate) VoucherCount(f Formula) (int, error) {
	n, ok := c.Vouchers[f]
	if !ok {
		return 0, ErrUnknownFormula
	}
	return n, nil
}

// Source resolves city names to rate rows. Both the static grid and the
// Postgres-backed store implement it, so the pricing engine does not care
// where rates come from.
type Source interface {
	// Lookup resolves a city name, tolerant of case and diacritics.
	// Returns ErrCityNotFound for unknown cities and ErrSourceUnavailable
	// when the backing store cannot be reached.
	Lookup(ctx context.Context, cityName string) (CityRate, error)

	// All returns every known rate row, for search and admin listing.
	All(ctx context.Context) ([]CityRate, error)
}
