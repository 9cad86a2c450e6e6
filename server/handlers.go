package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/session"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.Version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// recommendHandler picks an item for complete answers
func (s *Server) recommendHandler(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decode(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	answers := domain.Answers{Mood: domain.Mood(req.Mood), Pace: domain.Pace(req.Pace), Format: domain.ItemType(req.Format)}
	res, err := s.core.Recommend(r.Context(), req.UserID, answers, req.Explore)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toRecommendation(res.Recommendation, res.Item))
}

// feedbackHandler records a reaction to a recommendation
func (s *Server) feedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decode(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	weights, err := s.core.Feedback(r.Context(), req.UserID, req.RecommendationID, domain.FeedbackKind(req.Kind))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"weights": weights})
}

// weightsHandler returns learned weights of the user
func (s *Server) weightsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"weights": s.core.Weights(r.Context(), r.PathValue("user"))})
}

// favoritesHandler returns favorites of the user, newest first
func (s *Server) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	favs, err := s.core.Favorites(r.Context(), r.PathValue("user"), limit)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	res := make([]favoriteResponse, 0, len(favs))
	for _, f := range favs {
		res = append(res, favoriteResponse{ItemID: f.ItemID, Title: f.Title, CreatedAt: f.CreatedAt})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// startSessionHandler begins a new questionnaire
func (s *Server) startSessionHandler(w http.ResponseWriter, r *http.Request) {
	st, err := s.core.StartSession(r.PathValue("user"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toSession(st))
}

// getSessionHandler returns the live session
func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	st, ok := s.core.Session(r.PathValue("user"))
	if !ok {
		renderError(w, r, errors.New("no active session"), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, toSession(st))
}

// advanceSessionHandler applies an answer, acknowledgment or feedback to the session
func (s *Server) advanceSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := decode(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	st, err := s.core.Advance(r.Context(), r.PathValue("user"), in)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toSession(st))
}

// trackStartHandler records a bot start from a post link
func (s *Server) trackStartHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Payload string `json:"payload"`
	}
	if err := decode(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	postID, v, err := s.core.TrackStart(r.Context(), req.Payload)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"post_id": postID, "variant": string(v)})
}

// postStatsHandler returns metrics and the winner of a post
func (s *Server) postStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.core.PostStats(r.Context(), r.PathValue("id"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toPostStats(stats))
}

// ingestMetricsHandler stores an engagement snapshot of a post variant
func (s *Server) ingestMetricsHandler(w http.ResponseWriter, r *http.Request) {
	var req metricsRequest
	if err := decode(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	m := domain.EngagementMetrics{Reactions: req.Reactions, Forwards: req.Forwards, Clicks: req.Clicks, UnsubDelta: req.UnsubDelta}
	if req.CapturedAt != "" {
		at, err := domain.ParseTime(req.CapturedAt)
		if err != nil {
			renderFailure(w, r, fmt.Errorf("captured_at: %w: %w", err, domain.ErrInvalidInput))
			return
		}
		m.CapturedAt = at
	}
	if err := s.core.IngestMetrics(r.Context(), r.PathValue("id"), domain.Variant(req.Variant), m); err != nil {
		renderFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listJobsHandler returns registered jobs with their last outcome
func (s *Server) listJobsHandler(w http.ResponseWriter, r *http.Request) {
	infos := s.jobs.Jobs()
	res := make([]jobResponse, 0, len(infos))
	for _, info := range infos {
		res = append(res, toJob(info))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// runJobHandler runs a job now and waits for its outcome
func (s *Server) runJobHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.jobs.RunJob(r.Context(), r.PathValue("name"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toOutcome(out))
}

// alertsHandler returns recent operational alerts
func (s *Server) alertsHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	alerts, err := s.core.Alerts(r.Context(), limit)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	res := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		res = append(res, alertResponse{ID: a.ID, Kind: string(a.Kind), Message: a.Message, CreatedAt: a.CreatedAt})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// dailyHandler returns the daily rollup of the date, the latest one without date
func (s *Server) dailyHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.core.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toDaily(*m))
}

// decode reads the JSON body, rejecting unknown fields
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %s: %w", err.Error(), domain.ErrInvalidInput)
	}
	return nil
}

// input converts the request into a session input
func (req inputRequest) input() (session.Input, error) {
	switch req.Type {
	case "mood":
		return session.MoodAnswer{Mood: domain.Mood(req.Value)}, nil
	case "pace":
		return session.PaceAnswer{Pace: domain.Pace(req.Value)}, nil
	case "format":
		return session.FormatAnswer{Format: domain.ItemType(req.Value)}, nil
	case "shown":
		return session.Shown{}, nil
	case "feedback":
		return session.Feedback{Kind: domain.FeedbackKind(req.Value)}, nil
	default:
		return nil, fmt.Errorf("unknown input type %q: %w", req.Type, domain.ErrInvalidInput)
	}
}

// queryLimit parses the optional limit query parameter, 0 if not set.
// Renders bad request and returns false for a malformed value.
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
		return 0, false
	}
	return n, true
}
