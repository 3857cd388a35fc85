package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"DeviceDB/internal/models"
	"DeviceDB/pkg/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DeviceFinder is the read-only store surface the query API needs.
type DeviceFinder interface {
	FindByBrand(brand string) ([]models.Device, error)
}

// Start serves the query API until the process exits.
func Start(repo DeviceFinder, cfg *config.Config) {
	handler := NewHandler(repo, cfg)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	log.Printf("Endpoint available at http://localhost:%s/api/v1/mobiles", cfg.Server.Port)

	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// NewHandler builds the API routing table. The rate limit guards the
// device endpoint only; health and metrics stay unthrottled.
func NewHandler(repo DeviceFinder, cfg *config.Config) http.Handler {
	window := time.Duration(cfg.Server.RateLimitWindowHrs) * time.Hour
	limiter := newVisitorLimiter(window, cfg.Server.RateLimitRequests)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/api/v1/mobiles", limiter.middleware(mobilesHandler(repo)))
	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Server is healthy",
	})
}

type mobilesRequest struct {
	Brand string `json:"brand"`
}

func mobilesHandler(repo DeviceFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{
				Status: "error", Message: "Method not allowed.",
			})
			return
		}

		var req mobilesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Brand) == "" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Status: "error", Message: "Brand is required.",
			})
			return
		}

		devices, err := repo.FindByBrand(strings.TrimSpace(req.Brand))
		if err != nil {
			log.Printf("Failed to query devices for brand %q: %v", req.Brand, err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Status: "error", Message: "Server error",
			})
			return
		}

		data := make([]models.DeviceView, 0, len(devices))
		for _, d := range devices {
			data = append(data, models.ViewOf(d))
		}
		writeJSON(w, http.StatusOK, models.MobilesResponse{
			Status: "success",
			Count:  len(data),
			Data:   data,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
