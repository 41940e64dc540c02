// Package metrics holds the Prometheus collectors of the builder API and
// the Fiber glue to record and expose them.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "builder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "builder_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PageExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "builder_page_exports_total",
			Help: "Pages exported, by format",
		},
		[]string{"format"},
	)

	FTPPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "builder_ftp_publish_total",
			Help: "FTP publish attempts, by outcome",
		},
		[]string{"outcome"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "builder_uploads_total",
			Help: "Accepted file uploads, by kind",
		},
		[]string{"kind"},
	)
)

// RecordExport counts one export in the given format
func RecordExport(format string) {
	PageExportsTotal.WithLabelValues(format).Inc()
}

// RecordFTPPublish counts one publish attempt
func RecordFTPPublish(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	FTPPublishTotal.WithLabelValues(outcome).Inc()
}

// RecordUpload counts one stored upload
func RecordUpload(kind string) {
	UploadsTotal.WithLabelValues(kind).Inc()
}

// Middleware records request count and latency per matched route. It must
// run outside the request logger so the status is already final.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the Prometheus exposition format
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
