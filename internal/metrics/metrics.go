package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portal_catalog_refresh_duration_seconds",
			Help:    "Duration of each catalog refresh in seconds.",
			Buckets: []float64{1, 5, 15, 60, 300},
		},
	)
	RequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "portal_api_request_duration_seconds",
			Help:       "Duration of each call to the portal API.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
	RefreshedEntriesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_catalog_entries_refreshed_total",
			Help: "Total number of catalog entries refreshed.",
		},
	)
	SnapshotFallbacksCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_snapshot_fallbacks_total",
			Help: "Total number of list loads served from snapshots.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RefreshedEntriesCounter)
	prometheus.MustRegister(SnapshotFallbacksCounter)
	prometheus.MustRegister(RefreshDuration)
	prometheus.MustRegister(RequestDuration)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
