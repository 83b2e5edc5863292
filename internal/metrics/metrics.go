package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequests counts served requests.
	// Labels: method, path (route template), status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadflow",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests served",
	}, []string{"method", "path", "status"})

	// httpDuration measures request latency.
	// Labels: method, path (route template)
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "leadflow",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})
)

// Middleware records request count and latency per route template.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			path := c.Path()
			httpRequests.WithLabelValues(req.Method, path, strconv.Itoa(c.Response().Status)).Inc()
			httpDuration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
