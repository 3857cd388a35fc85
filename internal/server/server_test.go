package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"DeviceDB/internal/models"
	"DeviceDB/pkg/config"

	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	devices []models.Device
	err     error
	queried string
}

func (f *fakeFinder) FindByBrand(brand string) ([]models.Device, error) {
	f.queried = brand
	return f.devices, f.err
}

func testConfig(rateLimit int) *config.Config {
	cfg := &config.Config{}
	cfg.Server.RateLimitRequests = rateLimit
	cfg.Server.RateLimitWindowHrs = 24
	return cfg
}

func postMobiles(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mobiles", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	h := NewHandler(&fakeFinder{}, testConfig(10))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "Server is healthy", body["message"])
}

func TestMobilesRequiresBrand(t *testing.T) {
	h := NewHandler(&fakeFinder{}, testConfig(10))

	for _, body := range []string{`{}`, `{"brand":""}`, `not json`} {
		rec := postMobiles(h, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var resp models.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, "Brand is required.", resp.Message)
	}
}

func TestMobilesReturnsDevices(t *testing.T) {
	finder := &fakeFinder{devices: []models.Device{
		{
			Brand:         "samsung",
			Model:         "Galaxy S24",
			Category:      models.CategoryPhone,
			Price:         "₹61,999",
			ProductURL:    "https://www.smartprix.com/mobiles/samsung-galaxy-s24-ppd1abc",
			SiteModelCode: "samsung-galaxy-s24-ppd1abc",
		},
		{Brand: "samsung", Model: "Galaxy Tab S9", Category: models.CategoryTablet},
	}}
	h := NewHandler(finder, testConfig(10))

	rec := postMobiles(h, `{"brand":"samsung"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "samsung", finder.queried)

	var resp models.MobilesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "success", resp.Status)
	require.Equal(t, 2, resp.Count)
	require.Equal(t, "Galaxy S24", resp.Data[0].Model)
	require.Equal(t, "samsung-galaxy-s24-ppd1abc", resp.Data[0].SiteModelCode)
}

func TestMobilesStoreFailure(t *testing.T) {
	h := NewHandler(&fakeFinder{err: errors.New("database is locked")}, testConfig(10))

	rec := postMobiles(h, `{"brand":"samsung"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "error", resp.Status)
}

func TestMobilesRejectsGet(t *testing.T) {
	h := NewHandler(&fakeFinder{}, testConfig(10))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mobiles", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimitPerOrigin(t *testing.T) {
	h := NewHandler(&fakeFinder{}, testConfig(2))

	for i := 0; i < 2; i++ {
		rec := postMobiles(h, `{"brand":"samsung"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := postMobiles(h, `{"brand":"samsung"}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Free plan limit reached. Please upgrade.", resp.Message)

	// A different origin is not affected by the exhausted one.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mobiles", strings.NewReader(`{"brand":"samsung"}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
