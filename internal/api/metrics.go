package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidserve_http_requests_total",
		Help: "HTTP requests by route pattern and status.",
	}, []string{"route", "status"})

	streamBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidserve_stream_bytes_total",
		Help: "Media body bytes written to clients.",
	})
)

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		// Route pattern keeps label cardinality bounded; raw paths
		// would mint a series per video id.
		route := r.Pattern
		if route == "" {
			route = "other"
		}
		httpRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		if strings.HasPrefix(r.URL.Path, "/api/videos/") || strings.HasPrefix(r.URL.Path, "/api/thumbnails/") {
			streamBytes.Add(float64(rec.bytes))
		}
	})
}
