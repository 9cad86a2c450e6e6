package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/onepick/pkg/abtest"
	"github.com/umputun/onepick/pkg/catalog"
	"github.com/umputun/onepick/pkg/config"
	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/jobs"
	"github.com/umputun/onepick/pkg/llm"
	"github.com/umputun/onepick/pkg/metrics"
	"github.com/umputun/onepick/pkg/preference"
	"github.com/umputun/onepick/pkg/publisher"
	"github.com/umputun/onepick/pkg/recommend"
	"github.com/umputun/onepick/pkg/repository"
	"github.com/umputun/onepick/pkg/scheduler"
	"github.com/umputun/onepick/pkg/service"
	"github.com/umputun/onepick/pkg/session"
	"github.com/umputun/onepick/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if empty"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting onepick version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// hide tokens and keys from logs
	setupLog(opts.Debug, cfg.Server.Token, cfg.Catalog.Token, cfg.LLM.APIKey, cfg.Publisher.Token)

	loc := cfg.Location()
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			lgr.Printf("[WARN] can't close database: %v", cerr)
		}
	}()

	mgr := metrics.NewManager()

	prefs := preference.New(struct {
		*repository.UserRepository
		*repository.HistoryRepository
	}{repos.User, repos.History}, preferenceConfig(cfg.Preference))

	engine := recommend.NewEngine(recommend.Config{
		Epsilon:          cfg.Recommend.Epsilon,
		ExploreTopK:      cfg.Recommend.TopK,
		NoveltyMax:       cfg.Recommend.NoveltyMax,
		WeightMultiplier: cfg.Recommend.WeightMultiplier,
	})
	recommender := recommend.NewService(recommend.ServiceParams{
		Catalog:    repos.Item,
		History:    repos.History,
		Dismissed:  repos.User,
		Weights:    prefs,
		Engine:     engine,
		AntiRepeat: time.Duration(cfg.Recommend.AntiRepeatDays) * 24 * time.Hour,
		Location:   loc,
	})

	core := service.New(service.Params{
		Store:       service.NewRepoStore(repos),
		Recommender: recommender,
		Preferences: prefs,
		Dismisser:   repos.User,
		Recorder:    mgr,
		Session:     session.Config{FlowTTL: cfg.Session.FlowTTL, ActionTTL: cfg.Session.ActionTTL},
	})

	sched, err := makeScheduler(cfg, repos, core.Sessions(), mgr)
	if err != nil {
		return fmt.Errorf("failed to make scheduler: %w", err)
	}
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Token:   cfg.Server.Token,
		Version: revision,
		Debug:   opts.Debug,
	}, core, sched, mgr)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeScheduler builds background jobs. Catalog sync and publishing are wired only when their tokens are set.
func makeScheduler(cfg *config.Config, repos *repository.Repositories, sessions jobs.SessionSweeper,
	mgr *metrics.Manager) (*scheduler.Scheduler, error) {
	loc := cfg.Location()

	params := jobs.Params{
		Items:    repos.Item,
		Posts:    repos.Post,
		Clicks:   repos.Event,
		History:  repos.History,
		Metrics:  repos.Metric,
		Settings: repos.Setting,
		Writer:   llm.NewWriter(cfg.LLM),
		AB: abtest.New(repos.Post, repos.Setting, abtest.Config{
			Margin:          cfg.ABTest.Margin,
			MinObservations: cfg.ABTest.MinObservations,
			MaxEvaluations:  cfg.ABTest.MaxEvaluations,
		}),
		Sessions: sessions,
		Recorder: mgr,
		Location: loc,
		Config: jobs.Config{
			PostRepeat:     time.Duration(cfg.Publisher.RepeatDays) * 24 * time.Hour,
			PostCandidates: cfg.Publisher.Candidates,
			BotName:        cfg.Publisher.BotName,
			Experiment:     cfg.ABTest.Experiment,
		},
	}

	if cfg.Catalog.Token != "" {
		client := catalog.NewClient(catalog.ClientParams{
			BaseURL:   cfg.Catalog.Endpoint,
			Token:     cfg.Catalog.Token,
			Language:  cfg.Catalog.Language,
			Region:    cfg.Catalog.Region,
			Timeout:   cfg.Catalog.Timeout,
			RateLimit: cfg.Catalog.RateLimit,
			Burst:     cfg.Catalog.Burst,
		})
		params.Catalog = catalog.NewSyncer(catalog.SyncParams{Fetcher: client, Store: repos.Item,
			Sources: catalog.DefaultSources, Pages: cfg.Catalog.Pages, MaxItems: cfg.Catalog.MaxItems})
	}
	if cfg.Publisher.Token != "" {
		params.Sender = publisher.NewTelegram(publisher.Params{
			Endpoint: cfg.Publisher.Endpoint,
			Token:    cfg.Publisher.Token,
			Channel:  cfg.Publisher.Channel,
			Timeout:  cfg.Publisher.Timeout,
			Retries:  cfg.Publisher.Retries,
		})
	}

	schedules, err := makeSchedules(cfg.Schedule, loc)
	if err != nil {
		return nil, err
	}
	return scheduler.NewScheduler(scheduler.Params{Jobs: jobs.New(params).List(schedules), Recorder: mgr})
}

// makeSchedules converts configured cadence to schedules in the local timezone
func makeSchedules(sc config.ScheduleConfig, loc *time.Location) (jobs.Schedules, error) {
	publish, err := scheduler.ParseSlots(sc.PublishSlots)
	if err != nil {
		return jobs.Schedules{}, fmt.Errorf("publish slots: %w", err)
	}
	evaluation, err := scheduler.ParseSlot(sc.ABEvaluation)
	if err != nil {
		return jobs.Schedules{}, fmt.Errorf("ab evaluation slot: %w", err)
	}
	rollup, err := scheduler.ParseSlot(sc.DailyMetrics)
	if err != nil {
		return jobs.Schedules{}, fmt.Errorf("daily metrics slot: %w", err)
	}
	return jobs.Schedules{
		CatalogSync:      scheduler.Every(sc.CatalogSync),
		PublishPost:      scheduler.DailyAt(loc, publish...),
		ClickAggregation: scheduler.Every(sc.ClickAggregation),
		ScoreRecompute:   scheduler.Every(sc.ScoreRecompute),
		ABEvaluation:     scheduler.DailyAt(loc, evaluation),
		DailyMetrics:     scheduler.DailyAt(loc, rollup),
		AlertChecks:      scheduler.Every(sc.AlertChecks),
		SessionSweep:     scheduler.Every(sc.SessionSweep),
	}, nil
}

// preferenceConfig maps configured steps to feedback kinds, kinds not configured keep default steps
func preferenceConfig(pc config.PreferenceConfig) preference.Config {
	res := preference.Config{MinWeight: pc.MinWeight, MaxWeight: pc.MaxWeight}
	if len(pc.Steps) == 0 {
		return res
	}
	res.Steps = make(map[domain.FeedbackKind]float64, len(preference.DefaultSteps))
	for k, v := range preference.DefaultSteps {
		res.Steps[k] = v
	}
	for k, v := range pc.Steps {
		res.Steps[domain.FeedbackKind(k)] = v
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

