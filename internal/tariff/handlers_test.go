package tariff_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/one-connexion/backend-pricing/internal/tariff"
)

type citiesResponse struct {
	Data  []tariff.CityRate `json:"data"`
	Count int               `json:"count"`
}

type cityDetailResponse struct {
	Data tariff.CityRate `json:"data"`
}

type reloadResponse struct {
	Data struct {
		Rows int `json:"rows"`
	} `json:"data"`
}

type apiError struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

type stubReloader struct {
	rows        int
	err         error
	invalidated bool
}

func (s *stubReloader) Reload(ctx context.Context) (int, error) {
	return s.rows, s.err
}

func (s *stubReloader) Invalidate(ctx context.Context) {
	s.invalidated = true
}

func newCityRouter(h *tariff.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/cities", h.Cities)
	r.Get("/cities/{name}", h.CityDetail)
	return r
}

func TestCityHandlers(t *testing.T) {
	handler := tariff.NewHandler(tariff.HandlerConfig{
		Source: tariff.MustStatic(tariff.DefaultGrid()),
	})
	router := newCityRouter(handler)

	t.Run("search by prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cities?q=melun", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp citiesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Count)
		require.Equal(t, "Melun", resp.Data[0].CityName)
	})

	t.Run("limit applies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cities?q=75&limit=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp citiesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 5, resp.Count)
	})

	t.Run("detail is case-insensitive", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cities/MELUN", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp cityDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Melun", resp.Data.CityName)
		require.Positive(t, resp.Data.Vouchers[tariff.FormulaStandard])
	})

	t.Run("detail not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cities/Tombouctou", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp apiError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "CITY_NOT_FOUND", resp.Error.Code)
	})
}

func TestReloadHandlers(t *testing.T) {
	t.Run("reload reports row count", func(t *testing.T) {
		reloader := &stubReloader{rows: 228}
		handler := tariff.NewHandler(tariff.HandlerConfig{Reloader: reloader})
		req := httptest.NewRequest(http.MethodPost, "/admin/tariffs/reload", nil)
		rec := httptest.NewRecorder()
		handler.Reload(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp reloadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 228, resp.Data.Rows)
	})

	t.Run("reload failure maps to 503", func(t *testing.T) {
		reloader := &stubReloader{err: tariff.ErrSourceUnavailable}
		handler := tariff.NewHandler(tariff.HandlerConfig{Reloader: reloader})
		req := httptest.NewRequest(http.MethodPost, "/admin/tariffs/reload", nil)
		rec := httptest.NewRecorder()
		handler.Reload(rec, req)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalidate", func(t *testing.T) {
		reloader := &stubReloader{}
		handler := tariff.NewHandler(tariff.HandlerConfig{Reloader: reloader})
		req := httptest.NewRequest(http.MethodPost, "/admin/tariffs/invalidate", nil)
		rec := httptest.NewRecorder()
		handler.Invalidate(rec, req)
		require.Equal(t, http.StatusAccepted, rec.Code)
		require.True(t, reloader.invalidated)
	})

	t.Run("static grid has no reloader", func(t *testing.T) {
		handler := tariff.NewHandler(tariff.HandlerConfig{
			Source: tariff.MustStatic(tariff.DefaultGrid()),
		})
		req := httptest.NewRequest(http.MethodPost, "/admin/tariffs/reload", nil)
		rec := httptest.NewRecorder()
		handler.Reload(rec, req)
		require.Equal(t, http.StatusNotImplemented, rec.Code)

		var resp apiError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "NOT_SUPPORTED", resp.Error.Code)
	})
}
