// Package metrics exposes service counters in prometheus format
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the registry and all collectors of the service
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	recommendations *prometheus.CounterVec
	noCandidates    prometheus.Counter
	feedback        *prometheus.CounterVec
	sessionsActive  prometheus.Gauge
	abLocks         *prometheus.CounterVec
	postsPublished  *prometheus.CounterVec
	jobRuns         *prometheus.CounterVec
	jobDuration     *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager
type Option func(*Manager)

// WithNamespace sets the namespace of all metrics
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithRegistry uses the given registry instead of a fresh one
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager makes a manager with its own registry, so tests and multiple instances don't collide
// on the global default registerer
func NewManager(opts ...Option) *Manager {
	m := &Manager{namespace: "onepick", registry: prometheus.NewRegistry()}
	for _, opt := range opts {
		opt(m)
	}
	m.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	auto := promauto.With(m.registry)
	m.recommendations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "recommendations_total",
		Help: "Recommendations made, by selection mode",
	}, []string{"mode"})
	m.noCandidates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "no_candidates_total",
		Help: "Recommendation requests with nothing left to offer",
	})
	m.feedback = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Name: "feedback_total",
		Help: "Feedback events applied, by kind",
	}, []string{"kind"})
	m.sessionsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Name: "sessions_active",
		Help: "Sessions kept in memory",
	})
	m.abLocks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "abtest", Name: "locks_total",
		Help: "Winner locks created, by reason",
	}, []string{"reason"})
	m.postsPublished = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "abtest", Name: "posts_published_total",
		Help: "Posts delivered to the channel, by variant",
	}, []string{"variant"})
	m.jobRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "scheduler", Name: "job_runs_total",
		Help: "Job runs, by job and outcome status",
	}, []string{"job", "status"})
	m.jobDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "scheduler", Name: "job_duration_seconds",
		Help:    "Job run duration",
		Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
	}, []string{"job"})
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "requests_total",
		Help: "HTTP requests, by route and status code",
	}, []string{"route", "code"})
	m.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "request_duration_seconds",
		Help:    "HTTP request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	return m
}

// Registry returns the underlying registry
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the prometheus exposition format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Recommended counts a recommendation made in the given mode
func (m *Manager) Recommended(mode string) { m.recommendations.WithLabelValues(mode).Inc() }

// NoCandidates counts a request that found nothing to recommend
func (m *Manager) NoCandidates() { m.noCandidates.Inc() }

// FeedbackApplied counts an applied feedback event
func (m *Manager) FeedbackApplied(kind string) { m.feedback.WithLabelValues(kind).Inc() }

// SessionsActive sets the number of kept sessions
func (m *Manager) SessionsActive(n int) { m.sessionsActive.Set(float64(n)) }

// WinnerLocked counts a created winner lock
func (m *Manager) WinnerLocked(reason string) { m.abLocks.WithLabelValues(reason).Inc() }

// PostPublished counts a delivered post
func (m *Manager) PostPublished(variant string) { m.postsPublished.WithLabelValues(variant).Inc() }

// JobFinished records a job run
func (m *Manager) JobFinished(name, status string, d time.Duration) {
	m.jobRuns.WithLabelValues(name, status).Inc()
	m.jobDuration.WithLabelValues(name).Observe(d.Seconds())
}

// HTTPRequest records a served request
func (m *Manager) HTTPRequest(route string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}
