package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/one-connexion/backend-pricing/internal/common"
	"github.com/one-connexion/backend-pricing/internal/obs"
	"github.com/one-connexion/backend-pricing/internal/tariff"
)

// QuoteRequest is the wire shape of a quote computation.
type QuoteRequest struct {
	OriginCity      string  `json:"originCity" validate:"required"`
	DestinationCity string  `json:"destinationCity" validate:"required"`
	DistanceMeters  float64 `json:"distanceMeters" validate:"gte=0"`
	Formula         string  `json:"formula" validate:"required"`
}

// QuoteAllRequest is QuoteRequest without a formula: the endpoint prices
// every tier.
type QuoteAllRequest struct {
	OriginCity      string  `json:"originCity" validate:"required"`
	DestinationCity string  `json:"destinationCity" validate:"required"`
	DistanceMeters  float64 `json:"distanceMeters" validate:"gte=0"`
}

// SettingsRequest is the wire shape of an admin settings update.
type SettingsRequest struct {
	VoucherValueMinorUnits int64   `json:"voucherValueMinorUnits" validate:"gt=0"`
	SurchargePerKmVouchers float64 `json:"surchargePerKmVouchers" validate:"gte=0"`
}

// SettingsUpdater persists new pricing settings.
type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, s Settings) error
}

// Handler exposes the quote endpoints and the admin settings endpoints.
type Handler struct {
	engine   *Engine
	loader   *Loader
	updater  SettingsUpdater
	validate *validator.Validate
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Engine   *Engine
	Loader   *Loader
	Updater  SettingsUpdater
	Validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	return &Handler{engine: cfg.Engine, loader: cfg.Loader, updater: cfg.Updater, validate: v}
}

// CreateQuote handles POST /api/v1/quotes.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeQuoteRequest(w, r)
	if !ok {
		return
	}
	q, err := h.engine.Quote(r.Context(), Request{
		OriginCity:      req.OriginCity,
		DestinationCity: req.DestinationCity,
		DistanceMeters:  req.DistanceMeters,
		Formula:         tariff.Formula(req.Formula),
	})
	recordQuoteMetrics(req.Formula, q, err)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": q})
}

// CreateQuoteAllFormulas handles POST /api/v1/quotes/all: one quote per
// service tier for the same trip.
func (h *Handler) CreateQuoteAllFormulas(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "pricing engine not configured", nil)
		return
	}
	var req QuoteAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_JSON", "request body is not valid JSON", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return
	}
	quotes, err := h.engine.QuoteAllFormulas(r.Context(), Request{
		OriginCity:      req.OriginCity,
		DestinationCity: req.DestinationCity,
		DistanceMeters:  req.DistanceMeters,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": quotes})
}

// GetSettings handles GET /api/v1/admin/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{"data": h.loader.Load(r.Context())})
}

// UpdateSettings handles PUT /api/v1/admin/settings. The new values are
// persisted and the loader cache is expired so quotes pick them up on the
// next request rather than after the TTL.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if h.updater == nil {
		common.JSONError(w, http.StatusNotImplemented, "NOT_SUPPORTED", "settings storage not configured", nil)
		return
	}
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_JSON", "request body is not valid JSON", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return
	}
	s := Settings{
		VoucherValueMinorUnits: req.VoucherValueMinorUnits,
		SurchargePerKmVouchers: req.SurchargePerKmVouchers,
	}
	if err := h.updater.UpdateSettings(r.Context(), s); err != nil {
		h.writeError(w, err)
		return
	}
	h.loader.Invalidate()
	common.JSON(w, http.StatusOK, map[string]any{"data": s})
}

// InvalidateSettings handles POST /api/v1/admin/settings/invalidate.
func (h *Handler) InvalidateSettings(w http.ResponseWriter, r *http.Request) {
	h.loader.Invalidate()
	common.JSON(w, http.StatusAccepted, map[string]any{"data": map[string]any{"invalidated": true}})
}

func (h *Handler) decodeQuoteRequest(w http.ResponseWriter, r *http.Request) (QuoteRequest, bool) {
	var req QuoteRequest
	if h.engine == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "pricing engine not configured", nil)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_JSON", "request body is not valid JSON", nil)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return req, false
	}
	return req, true
}

func recordQuoteMetrics(formula string, q Quote, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownOriginCity):
		outcome = "unknown_origin"
	case errors.Is(err, tariff.ErrSourceUnavailable):
		outcome = "source_unavailable"
	default:
		outcome = "error"
	}
	if obs.QuotesTotal != nil {
		obs.QuotesTotal.WithLabelValues(strings.ToUpper(formula), outcome).Inc()
	}
	if err == nil && obs.QuoteAmount != nil {
		obs.QuoteAmount.WithLabelValues(string(q.Formula)).Observe(float64(q.TotalAmountMinorUnits))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_INPUT", err.Error(), nil)
	case errors.Is(err, tariff.ErrUnknownFormula):
		common.JSONError(w, http.StatusUnprocessableEntity, "UNKNOWN_FORMULA", "formula is not one of the five service tiers", nil)
	case errors.Is(err, ErrUnknownOriginCity):
		common.JSONError(w, http.StatusNotFound, "UNKNOWN_ORIGIN_CITY", "we do not yet serve this pickup location", nil)
	case errors.Is(err, tariff.ErrSourceUnavailable):
		common.JSONError(w, http.StatusServiceUnavailable, "RATE_SOURCE_UNAVAILABLE", "rate source unavailable", nil)
	case errors.Is(err, ErrSettingsUnavailable):
		common.JSONError(w, http.StatusServiceUnavailable, "SETTINGS_UNAVAILABLE", "settings storage unavailable", nil)
	default:
		var appErr *common.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus != 0 {
			common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
