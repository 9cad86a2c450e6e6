// Package catalog pulls movies and series from TMDB and turns them into catalog items
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// MediaType is the TMDB media kind
type MediaType string

// media types
const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Source is a TMDB listing to pull items from
type Source struct {
	Name  string // trending_day, trending_week, popular, top_rated, upcoming, now_playing, discover
	Media MediaType
}

func (s Source) String() string { return s.Name + "_" + string(s.Media) }

// DefaultSources lists the listings pulled on every sync, earlier sources win on duplicates
var DefaultSources = []Source{
	{"trending_day", MediaMovie}, {"trending_day", MediaTV},
	{"trending_week", MediaMovie}, {"trending_week", MediaTV},
	{"popular", MediaMovie}, {"popular", MediaTV},
	{"top_rated", MediaMovie}, {"top_rated", MediaTV},
	{"upcoming", MediaMovie}, {"now_playing", MediaMovie},
	{"discover", MediaMovie}, {"discover", MediaTV},
}

// Title is a single entry of a TMDB listing page
type Title struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Name          string  `json:"name"`
	OriginalName  string  `json:"original_name"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	FirstAirDate  string  `json:"first_air_date"`
	Language      string  `json:"original_language"`
	GenreIDs      []int   `json:"genre_ids"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	PosterPath    string  `json:"poster_path"`
}

type pageResponse struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Results    []Title `json:"results"`
}

// StatusError is a non-200 answer of the API
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb status %d: %s", e.Code, e.Message)
}

// ClientParams defines the TMDB client
type ClientParams struct {
	BaseURL   string
	Token     string // v4 bearer token
	Language  string
	Region    string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 means unlimited
	Burst     int
}

// Client is a TMDB API client guarded by a rate limiter and a circuit breaker
type Client struct {
	params  ClientParams
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[*pageResponse]
}

// NewClient makes a TMDB client
func NewClient(params ClientParams) *Client {
	if params.BaseURL == "" {
		params.BaseURL = "https://api.themoviedb.org/3"
	}
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	if params.Language == "" {
		params.Language = "en-US"
	}
	limit := rate.Inf
	if params.RateLimit > 0 {
		limit = rate.Limit(params.RateLimit)
	}
	if params.Burst <= 0 {
		params.Burst = 1
	}

	cb := gobreaker.NewCircuitBreaker[*pageResponse](gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// client errors mean a bad request, not an unhealthy upstream
			var se *StatusError
			return err == nil || (errors.As(err, &se) && se.Code < 500 && se.Code != http.StatusTooManyRequests)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			lgr.Printf("[WARN] circuit breaker %s changed from %s to %s", name, from, to)
		},
	})

	return &Client{
		params:  params,
		http:    &http.Client{Timeout: params.Timeout},
		limiter: rate.NewLimiter(limit, params.Burst),
		cb:      cb,
	}
}

// Page fetches one page of the source listing
func (c *Client) Page(ctx context.Context, src Source, page int) ([]Title, error) {
	path, query, err := src.request()
	if err != nil {
		return nil, err
	}
	query.Set("page", strconv.Itoa(page))

	resp, err := c.cb.Execute(func() (*pageResponse, error) {
		return c.get(ctx, path, query)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s page %d: %w", src, page, err)
	}
	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*pageResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}
	query.Set("language", c.params.Language)
	if c.params.Region != "" {
		query.Set("region", c.params.Region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.params.BaseURL+path+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.params.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Message string `json:"status_message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &body) != nil || body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Message}
	}

	var res pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &res, nil
}

func (s Source) request() (string, url.Values, error) {
	q := url.Values{}
	switch s.Name {
	case "trending_day":
		return "/trending/" + string(s.Media) + "/day", q, nil
	case "trending_week":
		return "/trending/" + string(s.Media) + "/week", q, nil
	case "popular", "top_rated":
		return "/" + string(s.Media) + "/" + s.Name, q, nil
	case "upcoming", "now_playing":
		if s.Media != MediaMovie {
			return "", nil, fmt.Errorf("source %s is movie only", s.Name)
		}
		return "/movie/" + s.Name, q, nil
	case "discover":
		q.Set("vote_count.gte", "200")
		q.Set("sort_by", "popularity.desc")
		return "/discover/" + string(s.Media), q, nil
	default:
		return "", nil, fmt.Errorf("unknown source %q", s.Name)
	}
}
