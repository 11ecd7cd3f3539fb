package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PlansCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planhub_plans_created_total",
			Help: "Total number of plans created through the admin API",
		},
	)

	PlansUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planhub_plans_updated_total",
			Help: "Total number of plan updates through the admin API",
		},
	)

	PlansDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planhub_plans_deleted_total",
			Help: "Total number of plans deleted through the admin API",
		},
	)

	SubscriptionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planhub_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
	)

	ProgressUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planhub_progress_updates_total",
			Help: "Total number of module progress updates",
		},
		[]string{"completed"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPlanCreated() {
	PlansCreatedTotal.Inc()
}

func RecordPlanUpdated() {
	PlansUpdatedTotal.Inc()
}

func RecordPlanDeleted() {
	PlansDeletedTotal.Inc()
}

func RecordSubscriptionCreated() {
	SubscriptionsCreatedTotal.Inc()
}

func RecordProgressUpdate(completed bool) {
	ProgressUpdatesTotal.WithLabelValues(strconv.FormatBool(completed)).Inc()
}
