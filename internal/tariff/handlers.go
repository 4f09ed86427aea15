package tariff

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/one-connexion/backend-pricing/internal/common"
	"github.com/one-connexion/backend-pricing/internal/obs"
)

// Reloader is the admin-facing refresh surface of the Postgres store. The
// static source does not implement it; reload routes are only mounted when
// a database backs the grid.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
	Invalidate(ctx context.Context)
}

// Handler exposes the public city endpoints and the admin reload endpoint.
type Handler struct {
	source   Source
	reloader Reloader
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Source   Source
	Reloader Reloader
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{source: cfg.Source, reloader: cfg.Reloader}
}

// Cities handles GET /api/v1/cities with optional q and limit parameters.
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "rate source not configured", nil)
		return
	}
	limit := common.AtoiDefault(r.URL.Query().Get("limit"), DefaultSearchLimit)
	rows, err := Search(r.Context(), h.source, r.URL.Query().Get("q"), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": rows, "count": len(rows)})
}

// CityDetail handles GET /api/v1/cities/{name}.
func (h *Handler) CityDetail(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "rate source not configured", nil)
		return
	}
	row, err := h.source.Lookup(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": row})
}

// Reload handles POST /api/v1/admin/tariffs/reload.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		common.JSONError(w, http.StatusNotImplemented, "NOT_SUPPORTED", "rate grid is static, nothing to reload", nil)
		return
	}
	n, err := h.reloader.Reload(r.Context())
	if obs.GridReloadTotal != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		obs.GridReloadTotal.WithLabelValues("admin", result).Inc()
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{"rows": n}})
}

// Invalidate handles POST /api/v1/admin/tariffs/invalidate. Unlike Reload it
// does not touch Postgres; the next lookup pays for the refetch.
func (h *Handler) Invalidate(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		common.JSONError(w, http.StatusNotImplemented, "NOT_SUPPORTED", "rate grid is static, nothing to invalidate", nil)
		return
	}
	h.reloader.Invalidate(r.Context())
	common.JSON(w, http.StatusAccepted, map[string]any{"data": map[string]any{"invalidated": true}})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCityNotFound):
		common.JSONError(w, http.StatusNotFound, "CITY_NOT_FOUND", "city not found in rate table", nil)
	case errors.Is(err, ErrSourceUnavailable):
		common.JSONError(w, http.StatusServiceUnavailable, "RATE_SOURCE_UNAVAILABLE", "rate source unavailable", nil)
	default:
		var appErr *common.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus != 0 {
			common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
