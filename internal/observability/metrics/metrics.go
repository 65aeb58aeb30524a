package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	SignupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volly_signups_total",
			Help: "Total number of signup attempts.",
		},
		[]string{"service", "kind", "result"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volly_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"service", "kind", "result"},
	)

	RelationshipTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volly_relationship_transitions_total",
			Help: "Total number of relationship transitions.",
		},
		[]string{"service", "op", "result"},
	)

	SMSMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volly_sms_messages_total",
			Help: "Total number of SMS messages handled.",
		},
		[]string{"service", "direction", "result"},
	)

	SweepRemovalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volly_sweep_removals_total",
			Help: "Total number of records removed by the expiry sweeper.",
		},
		[]string{"service", "kind"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	SignupsTotal = SignupsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	LoginsTotal = LoginsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	RelationshipTransitionsTotal = RelationshipTransitionsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	SMSMessagesTotal = SMSMessagesTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	SweepRemovalsTotal = SweepRemovalsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		SignupsTotal,
		LoginsTotal,
		RelationshipTransitionsTotal,
		SMSMessagesTotal,
		SweepRemovalsTotal,
	)
}
