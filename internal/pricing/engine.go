package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/one-connexion/backend-pricing/internal/cityname"
	"github.com/one-connexion/backend-pricing/internal/tariff"
)

var (
	// ErrInvalidInput covers malformed caller data: blank city names,
	// negative or non-finite distances.
	ErrInvalidInput = errors.New("pricing: invalid input")

	// ErrUnknownOriginCity means the pickup city is not in the rate table.
	// Fatal to the quote: the engine never substitutes a default price.
	ErrUnknownOriginCity = errors.New("pricing: unknown origin city")
)

// Request is one quote computation. Distance is in meters, as produced by
// the routing service.
type Request struct {
	OriginCity      string
	DestinationCity string
	DistanceMeters  float64
	Formula         tariff.Formula
}

// Quote is the computed price breakdown. It is created fresh per request
// and never mutated; identical inputs against an unchanged rate table and
// settings yield identical quotes.
type Quote struct {
	OriginCity             string         `json:"originCity"`
	DestinationCity        string         `json:"destinationCity"`
	Formula                tariff.Formula `json:"formula"`
	BaseVouchers           int            `json:"baseVouchers"`
	SurchargeVouchers      float64        `json:"surchargeVouchers"`
	TotalVouchers          float64        `json:"totalVouchers"`
	VoucherValueMinorUnits int64          `json:"voucherValueMinorUnits"`
	TotalAmountMinorUnits  int64          `json:"totalAmountMinorUnits"`
	CalculationTrace       string         `json:"calculationTrace"`
}

// Engine computes quotes against a rate source and the cached settings.
type Engine struct {
	rates    tariff.Source
	settings *Loader
}

// NewEngine constructs an Engine.
func NewEngine(rates tariff.Source, settings *Loader) *Engine {
	return &Engine{rates: rates, settings: settings}
}

// Quote computes the price for one request.
//
// The base charge is always the origin city's voucher count for the chosen
// formula: it covers the driver's positioning leg to the pickup, whatever
// the direction of the trip. The per-kilometre surcharge applies only when
// neither endpoint is the capital; a trip touching Paris has its full cost
// captured by the fixed origin rate. An unresolvable destination does not
// block quoting: pickup-side pricing is authoritative, so the destination
// is treated as a generic non-capital suburb.
func (e *Engine) Quote(ctx context.Context, req Request) (Quote, error) {
	origin := strings.TrimSpace(req.OriginCity)
	dest := strings.TrimSpace(req.DestinationCity)
	if origin == "" || dest == "" {
		return Quote{}, fmt.Errorf("%w: origin and destination are required", ErrInvalidInput)
	}
	if req.DistanceMeters < 0 || math.IsNaN(req.DistanceMeters) || math.IsInf(req.DistanceMeters, 0) {
		return Quote{}, fmt.Errorf("%w: distance must be a non-negative number of meters", ErrInvalidInput)
	}
	formula, err := tariff.ParseFormula(string(req.Formula))
	if err != nil {
		return Quote{}, err
	}
	// Price with the canonical tier name; ParseFormula tolerates case and
	// whitespace but the grid columns do not.
	req.Formula = formula

	originRow, err := e.rates.Lookup(ctx, origin)
	if err != nil {
		if errors.Is(err, tariff.ErrCityNotFound) {
			return Quote{}, fmt.Errorf("%w: %q", ErrUnknownOriginCity, origin)
		}
		return Quote{}, err
	}
	base, err := originRow.VoucherCount(req.Formula)
	if err != nil {
		return Quote{}, err
	}

	destName, destCapital, err := e.resolveDestination(ctx, dest)
	if err != nil {
		return Quote{}, err
	}
	originKey, err := cityname.Normalize(originRow.CityName)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: origin %q", ErrInvalidInput, originRow.CityName)
	}

	settings := e.settings.Load(ctx)

	var surcharge float64
	if !cityname.IsCapital(originKey) && !destCapital {
		surcharge = req.DistanceMeters / 1000 * settings.SurchargePerKmVouchers
	}
	total := float64(base) + surcharge
	amount := roundHalfUp(total * float64(settings.VoucherValueMinorUnits))

	q := Quote{
		OriginCity:             originRow.CityName,
		DestinationCity:        destName,
		Formula:                req.Formula,
		BaseVouchers:           base,
		SurchargeVouchers:      surcharge,
		TotalVouchers:          total,
		VoucherValueMinorUnits: settings.VoucherValueMinorUnits,
		TotalAmountMinorUnits:  amount,
	}
	q.CalculationTrace = trace(q)
	return q, nil
}

// QuoteAllFormulas computes one quote per service tier, in grid-column
// order. Callers use it to render a full price card in one round trip.
func (e *Engine) QuoteAllFormulas(ctx context.Context, req Request) ([]Quote, error) {
	out := make([]Quote, 0, len(tariff.Formulas()))
	for _, f := range tariff.Formulas() {
		req.Formula = f
		q, err := e.Quote(ctx, req)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// resolveDestination looks the destination up for its canonical name and
// capital status. Not-found degrades to "non-capital suburb" with the
// caller's spelling; only infrastructure failures propagate.
func (e *Engine) resolveDestination(ctx context.Context, dest string) (string, bool, error) {
	row, err := e.rates.Lookup(ctx, dest)
	if err == nil {
		key, kerr := cityname.Normalize(row.CityName)
		if kerr != nil {
			return row.CityName, false, nil
		}
		return row.CityName, cityname.IsCapital(key), nil
	}
	if errors.Is(err, tariff.ErrCityNotFound) {
		key, kerr := cityname.Normalize(dest)
		if kerr != nil {
			return dest, false, nil
		}
		return dest, cityname.IsCapital(key), nil
	}
	return "", false, err
}

// roundHalfUp rounds to the nearest minor unit, ties upward. Applied
// exactly once, at the final currency conversion; voucher totals are never
// rounded.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// trace renders the audit line, e.g. "14 vouchers × 5.50€ = 77.00€" or
// "11 + 2.1 vouchers × 5.50€ = 72.05€".
func trace(q Quote) string {
	vouchers := strconv.Itoa(q.BaseVouchers)
	if q.SurchargeVouchers > 0 {
		// Display only; the stored surcharge keeps full precision.
		display := math.Round(q.SurchargeVouchers*10000) / 10000
		vouchers += " + " + strconv.FormatFloat(display, 'f', -1, 64)
	}
	return fmt.Sprintf("%s vouchers × %s€ = %s€",
		vouchers, formatEuros(q.VoucherValueMinorUnits), formatEuros(q.TotalAmountMinorUnits))
}

func formatEuros(minorUnits int64) string {
	return fmt.Sprintf("%d.%02d", minorUnits/100, minorUnits%100)
}
