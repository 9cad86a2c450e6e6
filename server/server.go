package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/recommend"
	"github.com/umputun/onepick/pkg/scheduler"
	"github.com/umputun/onepick/pkg/service"
	"github.com/umputun/onepick/pkg/session"
)

//go:generate moq -out mocks/core.go -pkg mocks -skip-ensure -fmt goimports . Core
//go:generate moq -out mocks/jobs.go -pkg mocks -skip-ensure -fmt goimports . Jobs
//go:generate moq -out mocks/metrics.go -pkg mocks -skip-ensure -fmt goimports . Metrics

// Server represents HTTP server instance
type Server struct {
	Config
	core    Core
	jobs    Jobs
	metrics Metrics

	lock       sync.Mutex
	httpServer *http.Server
	mux        *http.ServeMux
	router     *routegroup.Bundle
}

// Config defines server parameters
type Config struct {
	Listen  string
	Timeout time.Duration
	Token   string // bearer token for the API, open if empty
	Version string
	Debug   bool
}

// Core is the recommendation and channel post facade
type Core interface {
	Recommend(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error)
	StartSession(userID string) (session.State, error)
	Advance(ctx context.Context, userID string, in session.Input) (session.State, error)
	Session(userID string) (session.State, bool)
	Feedback(ctx context.Context, userID, recID string, kind domain.FeedbackKind) (domain.Weights, error)
	Weights(ctx context.Context, userID string) domain.Weights
	Favorites(ctx context.Context, userID string, limit int) ([]domain.Favorite, error)
	IngestMetrics(ctx context.Context, postID string, v domain.Variant, m domain.EngagementMetrics) error
	TrackStart(ctx context.Context, payload string) (string, domain.Variant, error)
	PostStats(ctx context.Context, postID string) (service.PostStats, error)
	Daily(ctx context.Context, date string) (*domain.DailyMetrics, error)
	Alerts(ctx context.Context, limit int) ([]domain.Alert, error)
}

// Jobs is the scheduler interface for on-demand operations
type Jobs interface {
	Jobs() []scheduler.JobInfo
	RunJob(ctx context.Context, name string) (scheduler.Outcome, error)
}

// Metrics exposes prometheus metrics and records requests
type Metrics interface {
	Handler() http.Handler
	HTTPRequest(route string, code int, d time.Duration)
}

// New initializes a new server instance. Metrics is optional.
func New(cfg Config, core Core, jobs Jobs, metrics Metrics) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	s := &Server{
		Config:  cfg,
		core:    core,
		jobs:    jobs,
		metrics: metrics,
		mux:     http.NewServeMux(),
	}
	s.router = routegroup.New(s.mux)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.Timeout,
		WriteTimeout:      s.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("onepick", "umputun", s.Version))
	s.router.Use(rest.Ping)

	if s.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
	if s.metrics != nil {
		s.router.Use(s.measure)
	}
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics.Handler())
	}

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.Group().Route(func(auth *routegroup.Bundle) {
			auth.Use(s.authenticate)

			auth.HandleFunc("POST /recommend", s.recommendHandler)
			auth.HandleFunc("POST /feedback", s.feedbackHandler)
			auth.HandleFunc("GET /users/{user}/weights", s.weightsHandler)
			auth.HandleFunc("GET /users/{user}/favorites", s.favoritesHandler)

			auth.HandleFunc("POST /sessions/{user}", s.startSessionHandler)
			auth.HandleFunc("GET /sessions/{user}", s.getSessionHandler)
			auth.HandleFunc("POST /sessions/{user}/input", s.advanceSessionHandler)

			auth.HandleFunc("POST /starts", s.trackStartHandler)
			auth.HandleFunc("GET /posts/{id}", s.postStatsHandler)
			auth.HandleFunc("POST /posts/{id}/metrics", s.ingestMetricsHandler)

			auth.HandleFunc("GET /jobs", s.listJobsHandler)
			auth.HandleFunc("POST /jobs/{name}/run", s.runJobHandler)
			auth.HandleFunc("GET /alerts", s.alertsHandler)
			auth.HandleFunc("GET /daily", s.dailyHandler)
		})
	})
}

// authenticate checks the bearer token if one is configured
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
			renderError(w, r, errors.New("unauthorized"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// measure reports every request by its route pattern
func (s *Server) measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)
		route := r.Pattern
		if route == "" {
			// middleware down the chain may have cloned the request
			_, route = s.mux.Handler(r)
		}
		if route == "" {
			route = "unmatched"
		}
		s.metrics.HTTPRequest(route, sw.code, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	if code >= http.StatusInternalServerError {
		lgr.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderFailure maps domain errors to status codes
func renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrExpiredSession):
		code = http.StatusGone
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrAmbiguousTime):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownJob):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrNoCandidates):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateFeedback), errors.Is(err, domain.ErrJobRunning):
		code = http.StatusConflict
	}
	renderError(w, r, err, code)
}
