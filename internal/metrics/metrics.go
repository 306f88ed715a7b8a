package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roov_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roov_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	PropertiesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roov_properties_created_total",
			Help: "Total properties created",
		},
	)

	PropertiesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roov_properties_deleted_total",
			Help: "Total properties deleted",
		},
	)

	ContactsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roov_contacts_received_total",
			Help: "Total contact messages received",
		},
	)

	ImagesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roov_images_uploaded_total",
			Help: "Total images uploaded",
		},
	)

	AdminVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roov_admin_verifications_total",
			Help: "Total admin code verification attempts",
		},
		[]string{"outcome"}, // "success", "invalid" or "missing"
	)
)
