package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		Token   string        `yaml:"token" json:"token" jsonschema:"description=Bearer token for operator endpoints (optional)"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:onepick.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=1h,description=Connection maximum lifetime"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=Europe/Kyiv,description=IANA timezone for calendar dates and daily slots"`

	Recommend  RecommendConfig  `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation engine parameters"`
	Preference PreferenceConfig `yaml:"preference" json:"preference" jsonschema:"description=Preference learning parameters"`
	Session    SessionConfig    `yaml:"session" json:"session" jsonschema:"description=Questionnaire session settings"`
	ABTest     ABTestConfig     `yaml:"abtest" json:"abtest" jsonschema:"description=A/B post controller settings"`
	Schedule   ScheduleConfig   `yaml:"schedule" json:"schedule" jsonschema:"description=Background job cadence"`
	Catalog    CatalogConfig    `yaml:"catalog" json:"catalog" jsonschema:"description=Catalog sync from TMDB"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for post texts"`
	Publisher  PublisherConfig  `yaml:"publisher" json:"publisher" jsonschema:"description=Channel publisher configuration"`
}

// RecommendConfig holds epsilon-greedy parameters
type RecommendConfig struct {
	Epsilon          float64 `yaml:"epsilon" json:"epsilon" jsonschema:"default=0.3,minimum=0,maximum=1,description=Probability of the explore branch"`
	TopK             int     `yaml:"top_k" json:"top_k" jsonschema:"default=20,minimum=1,description=Explore picks among this many best candidates"`
	AntiRepeatDays   int     `yaml:"anti_repeat_days" json:"anti_repeat_days" jsonschema:"default=90,minimum=1,description=Days an item is not repeated to the same user"`
	NoveltyMax       float64 `yaml:"novelty_max" json:"novelty_max" jsonschema:"default=0.2,minimum=0,description=Upper bound of the novelty bonus"`
	WeightMultiplier float64 `yaml:"weight_multiplier" json:"weight_multiplier" jsonschema:"default=1,description=Multiplier of learned tag weights"`
}

// PreferenceConfig holds weight update steps and bounds
type PreferenceConfig struct {
	Steps     map[string]float64 `yaml:"steps" json:"steps" jsonschema:"description=Weight delta per feedback kind"`
	MinWeight float64            `yaml:"min_weight" json:"min_weight" jsonschema:"default=-1,description=Lower weight bound"`
	MaxWeight float64            `yaml:"max_weight" json:"max_weight" jsonschema:"default=1,description=Upper weight bound"`
}

// SessionConfig holds session lifetimes
type SessionConfig struct {
	FlowTTL   time.Duration `yaml:"flow_ttl" json:"flow_ttl" jsonschema:"default=10m,description=Lifetime of an unanswered questionnaire"`
	ActionTTL time.Duration `yaml:"action_ttl" json:"action_ttl" jsonschema:"default=30m,description=Lifetime of a session waiting for feedback"`
}

// ABTestConfig holds winner decision thresholds
type ABTestConfig struct {
	Margin          float64 `yaml:"margin" json:"margin" jsonschema:"default=0.15,minimum=0,maximum=1,description=Relative score margin to lock a winner"`
	MinObservations int     `yaml:"min_observations" json:"min_observations" jsonschema:"default=20,minimum=1,description=Engagement events needed before a margin lock"`
	MaxEvaluations  int     `yaml:"max_evaluations" json:"max_evaluations" jsonschema:"default=14,minimum=1,description=Evaluations before the leader is locked"`
	Experiment      string  `yaml:"experiment" json:"experiment" jsonschema:"default=post_text,description=Experiment new posts join and whose winner they share"`
}

// ScheduleConfig holds per job cadence
type ScheduleConfig struct {
	CatalogSync      time.Duration `yaml:"catalog_sync" json:"catalog_sync" jsonschema:"default=6h,description=Catalog sync interval"`
	PublishSlots     []string      `yaml:"publish_slots" json:"publish_slots" jsonschema:"description=Daily HH:MM slots of channel posts"`
	ClickAggregation time.Duration `yaml:"click_aggregation" json:"click_aggregation" jsonschema:"default=1h,description=Click aggregation interval"`
	ScoreRecompute   time.Duration `yaml:"score_recompute" json:"score_recompute" jsonschema:"default=6h,description=Score recompute interval"`
	ABEvaluation     string        `yaml:"ab_evaluation" json:"ab_evaluation" jsonschema:"default=03:00,description=Daily HH:MM slot of A/B evaluation"`
	DailyMetrics     string        `yaml:"daily_metrics" json:"daily_metrics" jsonschema:"default=02:10,description=Daily HH:MM slot of the metrics rollup"`
	AlertChecks      time.Duration `yaml:"alert_checks" json:"alert_checks" jsonschema:"default=6h,description=Alert checks interval"`
	SessionSweep     time.Duration `yaml:"session_sweep" json:"session_sweep" jsonschema:"default=5m,description=Expired sessions sweep interval"`
}

// CatalogConfig holds TMDB access settings
type CatalogConfig struct {
	Endpoint  string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.themoviedb.org/3,description=TMDB API base URL"`
	Token     string        `yaml:"token" json:"token" jsonschema:"description=TMDB read access token, sync is disabled if empty"`
	Language  string        `yaml:"language" json:"language" jsonschema:"default=uk-UA,description=Language of titles"`
	Region    string        `yaml:"region" json:"region" jsonschema:"default=UA,description=Region of release lists"`
	Pages     int           `yaml:"pages" json:"pages" jsonschema:"default=3,minimum=1,description=Pages fetched per source"`
	MaxItems  int           `yaml:"max_items" json:"max_items" jsonschema:"default=2000,description=Maximum items per sync run"`
	RateLimit float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=4,description=Requests per second"`
	Burst     int           `yaml:"burst" json:"burst" jsonschema:"default=2,description=Request burst"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
}

// LLMConfig holds LLM configuration for post texts
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Generate post texts with the LLM, templates are used otherwise"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.8,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=600,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	MaxLength    int           `yaml:"max_length" json:"max_length" jsonschema:"default=600,description=Maximum length of a post text in characters"`
	HookLength   int           `yaml:"hook_length" json:"hook_length" jsonschema:"default=90,description=Maximum length of the first line in characters"`
}

// PublisherConfig holds Telegram channel settings
type PublisherConfig struct {
	Endpoint   string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.telegram.org,description=Telegram Bot API base URL"`
	Token      string        `yaml:"token" json:"token" jsonschema:"description=Bot token, publishing is disabled if empty"`
	Channel    string        `yaml:"channel" json:"channel" jsonschema:"description=Channel id or @username"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
	Retries    int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Send attempts"`
	RepeatDays int           `yaml:"repeat_days" json:"repeat_days" jsonschema:"default=60,minimum=1,description=Days an item is not posted again"`
	Candidates int           `yaml:"candidates" json:"candidates" jsonschema:"default=10,minimum=1,description=Top catalog items considered for a post"`
	BotName    string        `yaml:"bot_name" json:"bot_name" jsonschema:"description=Bot username for the call-to-action deep link (optional)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no file is given
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	// server and database
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:onepick.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = time.Hour
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Kyiv"
	}

	// recommendation
	if cfg.Recommend.Epsilon == 0 {
		cfg.Recommend.Epsilon = 0.3
	}
	if cfg.Recommend.TopK == 0 {
		cfg.Recommend.TopK = 20
	}
	if cfg.Recommend.AntiRepeatDays == 0 {
		cfg.Recommend.AntiRepeatDays = 90
	}
	if cfg.Recommend.NoveltyMax == 0 {
		cfg.Recommend.NoveltyMax = 0.2
	}
	if cfg.Recommend.WeightMultiplier == 0 {
		cfg.Recommend.WeightMultiplier = 1
	}
	if cfg.Preference.MinWeight == 0 && cfg.Preference.MaxWeight == 0 {
		cfg.Preference.MinWeight, cfg.Preference.MaxWeight = -1, 1
	}

	// session and a/b
	if cfg.Session.FlowTTL == 0 {
		cfg.Session.FlowTTL = 10 * time.Minute
	}
	if cfg.Session.ActionTTL == 0 {
		cfg.Session.ActionTTL = 30 * time.Minute
	}
	if cfg.ABTest.Margin == 0 {
		cfg.ABTest.Margin = 0.15
	}
	if cfg.ABTest.MinObservations == 0 {
		cfg.ABTest.MinObservations = 20
	}
	if cfg.ABTest.MaxEvaluations == 0 {
		cfg.ABTest.MaxEvaluations = 14
	}
	if cfg.ABTest.Experiment == "" {
		cfg.ABTest.Experiment = "post_text"
	}

	// schedule
	if cfg.Schedule.CatalogSync == 0 {
		cfg.Schedule.CatalogSync = 6 * time.Hour
	}
	if len(cfg.Schedule.PublishSlots) == 0 {
		cfg.Schedule.PublishSlots = []string{"09:30", "13:00", "19:30"}
	}
	if cfg.Schedule.ClickAggregation == 0 {
		cfg.Schedule.ClickAggregation = time.Hour
	}
	if cfg.Schedule.ScoreRecompute == 0 {
		cfg.Schedule.ScoreRecompute = 6 * time.Hour
	}
	if cfg.Schedule.ABEvaluation == "" {
		cfg.Schedule.ABEvaluation = "03:00"
	}
	if cfg.Schedule.DailyMetrics == "" {
		cfg.Schedule.DailyMetrics = "02:10"
	}
	if cfg.Schedule.AlertChecks == 0 {
		cfg.Schedule.AlertChecks = 6 * time.Hour
	}
	if cfg.Schedule.SessionSweep == 0 {
		cfg.Schedule.SessionSweep = 5 * time.Minute
	}

	// catalog
	if cfg.Catalog.Endpoint == "" {
		cfg.Catalog.Endpoint = "https://api.themoviedb.org/3"
	}
	if cfg.Catalog.Language == "" {
		cfg.Catalog.Language = "uk-UA"
	}
	if cfg.Catalog.Region == "" {
		cfg.Catalog.Region = "UA"
	}
	if cfg.Catalog.Pages == 0 {
		cfg.Catalog.Pages = 3
	}
	if cfg.Catalog.MaxItems == 0 {
		cfg.Catalog.MaxItems = 2000
	}
	if cfg.Catalog.RateLimit == 0 {
		cfg.Catalog.RateLimit = 4
	}
	if cfg.Catalog.Burst == 0 {
		cfg.Catalog.Burst = 2
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 15 * time.Second
	}

	// llm
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.8
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 600
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.MaxLength == 0 {
		cfg.LLM.MaxLength = 600
	}
	if cfg.LLM.HookLength == 0 {
		cfg.LLM.HookLength = 90
	}

	// publisher
	if cfg.Publisher.Endpoint == "" {
		cfg.Publisher.Endpoint = "https://api.telegram.org"
	}
	if cfg.Publisher.Timeout == 0 {
		cfg.Publisher.Timeout = 15 * time.Second
	}
	if cfg.Publisher.Retries == 0 {
		cfg.Publisher.Retries = 3
	}
	if cfg.Publisher.RepeatDays == 0 {
		cfg.Publisher.RepeatDays = 60
	}
	if cfg.Publisher.Candidates == 0 {
		cfg.Publisher.Candidates = 10
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	// validate recommendation and learning parameters
	if cfg.Recommend.Epsilon < 0 || cfg.Recommend.Epsilon > 1 {
		return fmt.Errorf("recommend.epsilon must be between 0 and 1")
	}
	if cfg.Recommend.TopK < 1 {
		return fmt.Errorf("recommend.top_k must be at least 1")
	}
	if cfg.Recommend.AntiRepeatDays < 1 {
		return fmt.Errorf("recommend.anti_repeat_days must be at least 1")
	}
	if cfg.Preference.MinWeight >= cfg.Preference.MaxWeight {
		return fmt.Errorf("preference.min_weight must be below preference.max_weight")
	}
	for kind := range cfg.Preference.Steps {
		switch kind {
		case "hit", "miss", "another", "favorite", "share", "seen":
		default:
			return fmt.Errorf("preference.steps: unknown feedback kind %q", kind)
		}
	}

	// validate a/b thresholds
	if cfg.ABTest.Margin <= 0 || cfg.ABTest.Margin >= 1 {
		return fmt.Errorf("abtest.margin must be between 0 and 1")
	}
	if cfg.ABTest.MinObservations < 1 || cfg.ABTest.MaxEvaluations < 1 {
		return fmt.Errorf("abtest.min_observations and abtest.max_evaluations must be positive")
	}

	// validate schedule intervals, zero values are defaulted already
	intervals := []struct {
		name string
		d    time.Duration
	}{
		{"catalog_sync", cfg.Schedule.CatalogSync},
		{"click_aggregation", cfg.Schedule.ClickAggregation},
		{"score_recompute", cfg.Schedule.ScoreRecompute},
		{"alert_checks", cfg.Schedule.AlertChecks},
		{"session_sweep", cfg.Schedule.SessionSweep},
	}
	for _, iv := range intervals {
		if iv.d <= 0 {
			return fmt.Errorf("schedule.%s must be positive, got %v", iv.name, iv.d)
		}
	}

	// validate schedule slots
	slots := append([]string{cfg.Schedule.ABEvaluation, cfg.Schedule.DailyMetrics}, cfg.Schedule.PublishSlots...)
	for _, s := range slots {
		if _, err := time.Parse("15:04", s); err != nil {
			return fmt.Errorf("schedule slot %q must be HH:MM", s)
		}
	}

	// validate llm config
	if cfg.LLM.Enabled && cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required when llm is enabled")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Publisher.Token != "" && cfg.Publisher.Channel == "" {
		return fmt.Errorf("publisher.channel is required when publisher.token is set")
	}

	return nil
}

// Location returns the configured timezone, UTC if it can't be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
