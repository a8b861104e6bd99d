package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Registrations   prometheus.Counter
	Uploads         prometheus.Counter
	Reactions       *prometheus.CounterVec
}

var Default *Metrics

func Init() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "speakup_requests_total",
				Help: "Total number of HTTP requests by path, method and status",
			},
			[]string{"path", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "speakup_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		Registrations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "speakup_registrations_total",
				Help: "Total number of accounts created",
			},
		),
		Uploads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "speakup_uploads_total",
				Help: "Total number of videos pinned and recorded",
			},
		),
		Reactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "speakup_reactions_total",
				Help: "Total number of reaction mutations by kind",
			},
			[]string{"kind"},
		),
	}

	prometheus.MustRegister(m.RequestsTotal)
	prometheus.MustRegister(m.RequestDuration)
	prometheus.MustRegister(m.Registrations)
	prometheus.MustRegister(m.Uploads)
	prometheus.MustRegister(m.Reactions)

	Default = m
	return m
}

// Serve exposes /metrics on its own listener so the scrape path stays off
// the service port.
func Serve(addr string) {
	if addr == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			logrus.WithError(err).Error("metrics listener stopped")
		}
	}()
}
