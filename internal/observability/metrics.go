package observability

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DevicesScraped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devicedb_devices_scraped_total",
			Help: "Devices extracted from listing pages, per brand and category",
		},
		[]string{"brand", "category"},
	)
	BrandFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devicedb_brand_failures_total",
			Help: "Brand scrapes that ended in an error",
		},
		[]string{"brand"},
	)
	CooldownSkips = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "devicedb_cooldown_skips_total",
			Help: "Brands skipped because they were scraped within the cooldown window",
		},
	)
)

// Register registers all collectors with the default registry. Call once
// per process.
func Register() {
	prometheus.MustRegister(DevicesScraped, BrandFailures, CooldownSkips)
}

// Start registers the collectors and exposes /metrics on its own listener.
// Used by the cron job, whose runs are long enough to be worth watching.
func Start(port string) {
	Register()
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("Metrics listener stopped: %v", err)
		}
	}()
}
