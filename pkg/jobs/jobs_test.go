package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/abtest"
	"github.com/umputun/onepick/pkg/catalog"
	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/jobs/mocks"
	"github.com/umputun/onepick/pkg/llm"
	"github.com/umputun/onepick/pkg/repository"
	"github.com/umputun/onepick/pkg/scheduler"
)

var testNow = time.Date(2026, 3, 10, 0, 10, 0, 0, time.UTC) // 02:10 in Kyiv

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

// newStoreJobs makes jobs backed by sqlite and the real A/B controller
func newStoreJobs(t *testing.T, repos *repository.Repositories, modify func(p *Params)) *Jobs {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	params := Params{
		Items:    repos.Item,
		Posts:    repos.Post,
		Clicks:   repos.Event,
		History:  repos.History,
		Metrics:  repos.Metric,
		Settings: repos.Setting,
		AB:       abtest.New(repos.Post, repos.Setting, abtest.DefaultConfig()),
		Location: loc,
	}
	if modify != nil {
		modify(&params)
	}
	j := New(params)
	j.now = func() time.Time { return testNow }
	return j
}

func storeItem(id string, score float64) domain.Item {
	return domain.Item{ID: id, Type: domain.ItemMovie, Title: "title " + id, Tags: []string{"drama"},
		Mood: domain.MoodHeavy, Pace: domain.PaceSlow, BaseScore: score, UpdatedAt: testNow.Add(-time.Hour)}
}

func TestNew_Defaults(t *testing.T) {
	j := New(Params{Config: Config{Workers: 2}})
	assert.Equal(t, time.UTC, j.Location)
	assert.Equal(t, 2, j.Config.Workers)
	assert.Equal(t, 60*24*time.Hour, j.Config.PostRepeat)
	assert.Equal(t, 10, j.Config.PostCandidates)
	assert.InDelta(t, 0.20, j.Config.HitRateMin, 1e-9)
	assert.Equal(t, domain.DefaultExperiment, j.Config.Experiment)
	assert.NotNil(t, j.Recorder)
}

func TestJobs_List(t *testing.T) {
	s := Schedules{
		CatalogSync: scheduler.Every(6 * time.Hour), PublishPost: scheduler.Every(time.Hour),
		ClickAggregation: scheduler.Every(10 * time.Minute), ScoreRecompute: scheduler.Every(time.Hour),
		ABEvaluation: scheduler.Every(24 * time.Hour), DailyMetrics: scheduler.Every(24 * time.Hour),
		AlertChecks: scheduler.Every(time.Hour), SessionSweep: scheduler.Every(time.Minute),
	}
	names := func(list []scheduler.Job) []string {
		res := make([]string, 0, len(list))
		for _, job := range list {
			res = append(res, job.Name)
		}
		return res
	}

	t.Run("optional jobs skipped", func(t *testing.T) {
		list := New(Params{}).List(s)
		assert.ElementsMatch(t, []string{NameClickAggregation, NameScoreRecompute, NameABEvaluation,
			NameDailyMetrics, NameAlertChecks, NameSessionSweep}, names(list))
	})

	t.Run("all jobs", func(t *testing.T) {
		list := New(Params{Catalog: &mocks.CatalogSyncerMock{}, Sender: &mocks.SenderMock{}}).List(s)
		assert.Len(t, list, 8)
		for _, job := range list {
			assert.NotNil(t, job.Run, job.Name)
			assert.NotNil(t, job.Schedule, job.Name)
			assert.Equal(t, job.Name == NameCatalogSync, job.RunOnStart, job.Name)
		}
	})
}

func TestJobs_SyncCatalog(t *testing.T) {
	tbl := []struct {
		name      string
		stats     catalog.SyncStats
		err       error
		status    scheduler.Status
		bookmarks int
	}{
		{name: "success", stats: catalog.SyncStats{Fetched: 40, Upserted: 35, Sources: 4}, status: scheduler.StatusSuccess, bookmarks: 1},
		{name: "partial", stats: catalog.SyncStats{Fetched: 20, Upserted: 18, Sources: 4, Failed: []string{"tv/popular"}},
			err: fmt.Errorf("source tv/popular: %w", domain.ErrUpstreamSync), status: scheduler.StatusPartial, bookmarks: 1},
		{name: "nothing upserted", err: fmt.Errorf("all sources: %w", domain.ErrUpstreamSync),
			status: scheduler.StatusFailure, bookmarks: 0},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			settings := &mocks.SettingStoreMock{
				SetTimeFunc: func(ctx context.Context, key string, tm time.Time) error { return nil },
			}
			syncer := &mocks.CatalogSyncerMock{
				SyncFunc: func(ctx context.Context) (catalog.SyncStats, error) { return tt.stats, tt.err },
			}
			j := New(Params{Catalog: syncer, Settings: settings})
			j.now = func() time.Time { return testNow }

			out := j.SyncCatalog(context.Background())
			assert.Equal(t, tt.status, out.Status)
			if tt.err != nil {
				assert.ErrorIs(t, out.Err, domain.ErrUpstreamSync)
			}
			require.Len(t, settings.SetTimeCalls(), tt.bookmarks)
			if tt.bookmarks > 0 {
				assert.Equal(t, domain.SettingLastCatalogRun, settings.SetTimeCalls()[0].Key)
				assert.Equal(t, testNow, settings.SetTimeCalls()[0].T)
			}
		})
	}
}

func TestJobs_PublishPost(t *testing.T) {
	writer := &mocks.PostWriterMock{
		WriteFunc: func(ctx context.Context, item domain.Item) (llm.Draft, error) {
			return llm.Draft{A: "<b>" + item.Title + "</b> for tonight", B: "Facts about " + item.Title}, nil
		},
	}

	t.Run("publishes best items with alternating variants", func(t *testing.T) {
		repos := setupRepos(t)
		ctx := context.Background()
		_, err := repos.Item.UpsertItems(ctx, []domain.Item{storeItem("m1", 9), storeItem("m2", 8), storeItem("m3", 1)})
		require.NoError(t, err)

		var texts []string
		sender := &mocks.SenderMock{SendFunc: func(ctx context.Context, text string) (string, error) {
			texts = append(texts, text)
			return fmt.Sprintf("%d", 100+len(texts)), nil
		}}
		rec := &mocks.RecorderMock{PostPublishedFunc: func(string) {}}
		j := newStoreJobs(t, repos, func(p *Params) {
			p.Writer, p.Sender, p.Recorder = writer, sender, rec
			p.Config.BotName = "onepick_bot"
		})

		out := j.PublishPost(ctx)
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		out = j.PublishPost(ctx)
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)

		posts, err := repos.Post.ListPublished(ctx, testNow.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, posts, 2)
		byItem := map[string]domain.Post{}
		for _, p := range posts {
			byItem[p.ItemID] = p
		}
		require.Contains(t, byItem, "m1")
		require.Contains(t, byItem, "m2")
		assert.Equal(t, domain.VariantA, byItem["m1"].Variant)
		assert.Equal(t, "101", byItem["m1"].MessageID)
		assert.Equal(t, domain.VariantB, byItem["m2"].Variant)
		assert.Equal(t, "102", byItem["m2"].MessageID)

		require.Len(t, texts, 2)
		assert.True(t, strings.HasPrefix(texts[0], "<b>title m1</b> for tonight\n\n"), texts[0])
		assert.Contains(t, texts[0], "https://t.me/onepick_bot?start=post_"+byItem["m1"].ID+"_a")
		assert.True(t, strings.HasPrefix(texts[1], "Facts about title m2"), texts[1])

		require.Len(t, rec.PostPublishedCalls(), 2)
		assert.Equal(t, "a", rec.PostPublishedCalls()[0].Variant)
		assert.Equal(t, "b", rec.PostPublishedCalls()[1].Variant)

		last, err := repos.Setting.GetTime(ctx, domain.SettingLastPublished)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.True(t, testNow.Equal(*last))
	})

	t.Run("undelivered post removed", func(t *testing.T) {
		repos := setupRepos(t)
		ctx := context.Background()
		_, err := repos.Item.UpsertItems(ctx, []domain.Item{storeItem("m1", 9)})
		require.NoError(t, err)

		sender := &mocks.SenderMock{SendFunc: func(ctx context.Context, text string) (string, error) {
			return "", errors.New("telegram is down")
		}}
		j := newStoreJobs(t, repos, func(p *Params) { p.Writer, p.Sender = writer, sender })

		out := j.PublishPost(ctx)
		assert.Equal(t, scheduler.StatusFailure, out.Status)
		assert.ErrorContains(t, out.Err, "telegram is down")

		recent, err := repos.Post.RecentPostItems(ctx, testNow.Add(-time.Hour))
		require.NoError(t, err)
		assert.Empty(t, recent, "item is available for the next slot")
	})

	t.Run("no candidates", func(t *testing.T) {
		repos := setupRepos(t)
		idle := &mocks.PostWriterMock{}
		j := newStoreJobs(t, repos, func(p *Params) { p.Writer, p.Sender = idle, &mocks.SenderMock{} })
		out := j.PublishPost(context.Background())
		assert.Equal(t, scheduler.StatusFailure, out.Status)
		assert.ErrorIs(t, out.Err, domain.ErrNoCandidates)
		assert.Empty(t, idle.WriteCalls())
	})
}

func TestJobs_PublishPost_MarkFailure(t *testing.T) {
	var created domain.Post
	posts := &mocks.PostStoreMock{
		RecentPostItemsFunc: func(ctx context.Context, since time.Time) (map[string]struct{}, error) {
			return map[string]struct{}{}, nil
		},
		CreatePostFunc: func(ctx context.Context, post domain.Post) error { created = post; return nil },
		MarkPublishedFunc: func(ctx context.Context, postID, messageID string, at time.Time) error {
			return errors.New("disk full")
		},
	}
	repos := setupRepos(t)
	_, err := repos.Item.UpsertItems(context.Background(), []domain.Item{storeItem("m1", 9)})
	require.NoError(t, err)
	sender := &mocks.SenderMock{SendFunc: func(ctx context.Context, text string) (string, error) { return "55", nil }}
	writer := &mocks.PostWriterMock{WriteFunc: func(ctx context.Context, item domain.Item) (llm.Draft, error) {
		return llm.Draft{A: "a", B: "b"}, nil
	}}
	ab := &fixedVariant{v: domain.VariantB}
	j := newStoreJobs(t, repos, func(p *Params) { p.Posts, p.Writer, p.Sender, p.AB = posts, writer, sender, ab })

	out := j.PublishPost(context.Background())
	assert.Equal(t, scheduler.StatusPartial, out.Status)
	assert.ErrorContains(t, out.Err, "disk full")
	assert.Contains(t, out.Details, "55")
	require.Len(t, sender.SendCalls(), 1, "delivered once")
	assert.Equal(t, "b", sender.SendCalls()[0].Text)
	assert.Empty(t, posts.DeletePostCalls())
	assert.Equal(t, "m1", created.ItemID)
	assert.Equal(t, domain.DefaultExperiment, created.Experiment)
	assert.Equal(t, created.ID, posts.MarkPublishedCalls()[0].PostID)
}

func TestJobs_AggregateClicks(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Post.CreatePost(ctx, domain.Post{ID: "p1", ItemID: "m1", TextA: "a", TextB: "b",
		CreatedAt: testNow.Add(-72 * time.Hour)}))
	require.NoError(t, repos.Post.SaveMetrics(ctx, "p1", domain.VariantA,
		domain.EngagementMetrics{Reactions: 3, Forwards: 1, CapturedAt: testNow.Add(-time.Hour)}))

	require.NoError(t, repos.Event.RecordClick(ctx, "p1", domain.VariantA, testNow.Add(-30*time.Minute)))
	require.NoError(t, repos.Event.RecordClick(ctx, "p1", domain.VariantA, testNow.Add(-20*time.Minute)))
	require.NoError(t, repos.Event.RecordClick(ctx, "p1", domain.VariantB, testNow.Add(-10*time.Minute)))
	require.NoError(t, repos.Event.RecordClick(ctx, "p1", domain.VariantB, testNow.Add(-48*time.Hour))) // before lookback, still in the total
	require.NoError(t, repos.Event.RecordClick(ctx, "p2", domain.VariantA, testNow.Add(-48*time.Hour))) // untouched post

	j := newStoreJobs(t, repos, nil)
	out := j.AggregateClicks(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	assert.Contains(t, out.Details, "clicks of 1 posts aggregated")

	m, err := repos.Post.LatestMetrics(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.EngagementMetrics{Reactions: 3, Forwards: 1, Clicks: 2, CapturedAt: testNow}, m.A, "carried forward")
	assert.Equal(t, domain.EngagementMetrics{Clicks: 2, CapturedAt: testNow}, m.B)

	bookmark, err := repos.Setting.GetTime(ctx, domain.SettingLastClickRun)
	require.NoError(t, err)
	require.NotNil(t, bookmark)
	assert.True(t, testNow.Equal(*bookmark))

	// same clicks are not counted twice
	j.now = func() time.Time { return testNow.Add(10 * time.Minute) }
	out = j.AggregateClicks(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	m, err = repos.Post.LatestMetrics(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, m.A.Clicks)
	assert.Equal(t, 2, m.B.Clicks)

	// channel metrics reported later keep the aggregated clicks
	require.NoError(t, repos.Post.SaveMetrics(ctx, "p1", domain.VariantA,
		domain.EngagementMetrics{Reactions: 8, CapturedAt: testNow.Add(20 * time.Minute)}))
	m, err = repos.Post.LatestMetrics(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.EngagementMetrics{Reactions: 8, Clicks: 2, CapturedAt: testNow.Add(20 * time.Minute)}, m.A)
}

// flakyPosts fails the first click update of one post
type flakyPosts struct {
	*repository.PostRepository
	failPost string
	mu       sync.Mutex
	failed   bool
}

func (f *flakyPosts) SetClicks(ctx context.Context, postID string, v domain.Variant, clicks int, at time.Time) error {
	f.mu.Lock()
	if postID == f.failPost && !f.failed {
		f.failed = true
		f.mu.Unlock()
		return errors.New("database is locked")
	}
	f.mu.Unlock()
	return f.PostRepository.SetClicks(ctx, postID, v, clicks, at)
}

func TestJobs_AggregateClicks_RerunAfterPartialFailure(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	for _, id := range []string{"p1", "p2"} {
		require.NoError(t, repos.Post.CreatePost(ctx, domain.Post{ID: id, ItemID: "m-" + id, TextA: "a", TextB: "b",
			CreatedAt: testNow.Add(-2 * time.Hour)}))
	}
	require.NoError(t, repos.Event.RecordClick(ctx, "p1", domain.VariantA, testNow.Add(-30*time.Minute)))
	require.NoError(t, repos.Event.RecordClick(ctx, "p1", domain.VariantA, testNow.Add(-20*time.Minute)))
	require.NoError(t, repos.Event.RecordClick(ctx, "p2", domain.VariantB, testNow.Add(-10*time.Minute)))

	posts := &flakyPosts{PostRepository: repos.Post, failPost: "p2"}
	j := newStoreJobs(t, repos, func(p *Params) { p.Posts = posts })

	out := j.AggregateClicks(ctx)
	require.Equal(t, scheduler.StatusPartial, out.Status)
	assert.ErrorContains(t, out.Err, "post p2")
	bookmark, err := repos.Setting.GetTime(ctx, domain.SettingLastClickRun)
	require.NoError(t, err)
	assert.Nil(t, bookmark, "bookmark kept for retry")

	j.now = func() time.Time { return testNow.Add(5 * time.Minute) }
	out = j.AggregateClicks(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)

	m, err := repos.Post.LatestMetrics(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, m.A.Clicks, "p1 updated in both runs, counted once")
	m, err = repos.Post.LatestMetrics(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 1, m.B.Clicks)
	bookmark, err = repos.Setting.GetTime(ctx, domain.SettingLastClickRun)
	require.NoError(t, err)
	require.NotNil(t, bookmark)
	assert.True(t, testNow.Add(5*time.Minute).Equal(*bookmark))
}

func TestJobs_AggregateClicks_Failures(t *testing.T) {
	clicks := clickCounter{
		{PostID: "p1", Variant: "a", Count: 2},
		{PostID: "p2", Variant: "b", Count: 1},
		{PostID: "p3", Variant: "x", Count: 5},
	}
	settings := &mocks.SettingStoreMock{
		GetTimeFunc: func(ctx context.Context, key string) (*time.Time, error) { return nil, nil },
		SetTimeFunc: func(ctx context.Context, key string, tm time.Time) error { return nil },
	}

	t.Run("one post failed", func(t *testing.T) {
		var mu sync.Mutex
		saved := map[string]int{}
		posts := &mocks.PostStoreMock{
			SetClicksFunc: func(ctx context.Context, postID string, v domain.Variant, n int, at time.Time) error {
				if postID == "p2" {
					return errors.New("locked")
				}
				mu.Lock()
				defer mu.Unlock()
				saved[postID+"/"+string(v)] = n
				return nil
			},
		}
		j := New(Params{Posts: posts, Clicks: clicks, Settings: settings})
		j.now = func() time.Time { return testNow }

		out := j.AggregateClicks(context.Background())
		assert.Equal(t, scheduler.StatusPartial, out.Status)
		assert.ErrorContains(t, out.Err, "post p2")
		assert.Equal(t, map[string]int{"p1/a": 2}, saved)
		assert.Empty(t, settings.SetTimeCalls(), "bookmark kept for retry")
		require.Len(t, settings.GetTimeCalls(), 1)
		assert.Equal(t, domain.SettingLastClickRun, settings.GetTimeCalls()[0].Key)
	})

	t.Run("count failed", func(t *testing.T) {
		j := New(Params{Clicks: clickCounter(nil), Settings: &mocks.SettingStoreMock{
			GetTimeFunc: func(ctx context.Context, key string) (*time.Time, error) { return nil, errors.New("db gone") },
		}})
		out := j.AggregateClicks(context.Background())
		assert.Equal(t, scheduler.StatusFailure, out.Status)
		assert.ErrorContains(t, out.Err, "db gone")
	})
}

func TestJobs_RecomputeScores(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	stale := storeItem("m1", 0)
	stale.VoteAverage, stale.VoteCount, stale.Popularity = 8, 1000, 50
	fresh := storeItem("m2", 0)
	fresh.VoteAverage, fresh.VoteCount, fresh.Popularity = 7, 200, 10
	fresh.BaseScore = catalog.BaseScore(fresh.VoteAverage, fresh.VoteCount, fresh.Popularity)
	_, err := repos.Item.UpsertItems(ctx, []domain.Item{stale, fresh})
	require.NoError(t, err)

	require.NoError(t, repos.Post.CreatePost(ctx, domain.Post{ID: "p1", ItemID: "m1", TextA: "a", TextB: "b",
		CreatedAt: testNow.Add(-48 * time.Hour)}))
	require.NoError(t, repos.Post.MarkPublished(ctx, "p1", "10", testNow.Add(-48*time.Hour)))
	require.NoError(t, repos.Post.SaveMetrics(ctx, "p1", domain.VariantA,
		domain.EngagementMetrics{Reactions: 4, Forwards: 2, CapturedAt: testNow.Add(-time.Hour)}))
	require.NoError(t, repos.Post.SaveMetrics(ctx, "p1", domain.VariantB,
		domain.EngagementMetrics{Clicks: 3, UnsubDelta: 1, CapturedAt: testNow.Add(-time.Hour)}))

	j := newStoreJobs(t, repos, nil)
	out := j.RecomputeScores(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	assert.Contains(t, out.Details, "1 item scores updated")
	assert.Contains(t, out.Details, "1 posts scored")

	item, err := repos.Item.GetItem(ctx, "m1")
	require.NoError(t, err)
	assert.InDelta(t, 5.5, item.BaseScore, 1e-9)

	var scores struct {
		A float64 `db:"score_a"`
		B float64 `db:"score_b"`
	}
	require.NoError(t, repos.DB.GetContext(ctx, &scores, "SELECT score_a, score_b FROM post_scores WHERE post_id = ?", "p1"))
	assert.InDelta(t, 14.0, scores.A, 1e-9) // 4*2 + 2*3
	assert.InDelta(t, 7.0, scores.B, 1e-9)  // 3*4 - 1*5
}

func TestJobs_EvaluatePosts(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	publish := func(id, experiment string, v domain.Variant, age time.Duration, m domain.EngagementMetrics) {
		require.NoError(t, repos.Post.CreatePost(ctx, domain.Post{ID: id, ItemID: "item-" + id, Experiment: experiment,
			TextA: "a", TextB: "b", Variant: v, CreatedAt: testNow.Add(-age)}))
		require.NoError(t, repos.Post.MarkPublished(ctx, id, "msg-"+id, testNow.Add(-age)))
		m.CapturedAt = testNow.Add(-time.Hour)
		require.NoError(t, repos.Post.SaveMetrics(ctx, id, v, m))
	}
	publish("p1", "", domain.VariantA, 72*time.Hour, domain.EngagementMetrics{Reactions: 20}) // 40
	publish("p2", "", domain.VariantB, 48*time.Hour, domain.EngagementMetrics{Reactions: 5})  // 10
	publish("p3", "cta_text", domain.VariantA, 72*time.Hour, domain.EngagementMetrics{Reactions: 10})
	publish("p4", "cta_text", domain.VariantB, 48*time.Hour, domain.EngagementMetrics{Reactions: 10})

	rec := &mocks.RecorderMock{WinnerLockedFunc: func(string) {}}
	j := newStoreJobs(t, repos, func(p *Params) { p.Recorder = rec })

	out := j.EvaluatePosts(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	assert.Contains(t, out.Details, "2 experiments evaluated from 4 posts, 1 locked")
	require.Len(t, rec.WinnerLockedCalls(), 1)
	assert.Equal(t, string(domain.LockMargin), rec.WinnerLockedCalls()[0].Reason)

	lock, err := repos.Post.GetWinnerLock(ctx, domain.DefaultExperiment)
	require.NoError(t, err)
	require.NotNil(t, lock)
	assert.Equal(t, domain.VariantA, lock.Variant)
	assert.Equal(t, "p2", lock.PostID, "newest post of the experiment")
	lock, err = repos.Post.GetWinnerLock(ctx, "cta_text")
	require.NoError(t, err)
	assert.Nil(t, lock)

	// locked experiments are not locked again
	out = j.EvaluatePosts(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	assert.Len(t, rec.WinnerLockedCalls(), 1)
}

func TestJobs_EvaluatePosts_Errors(t *testing.T) {
	older, newer := testNow.Add(-2*time.Hour), testNow.Add(-time.Hour)
	posts := &mocks.PostStoreMock{
		ListPublishedFunc: func(ctx context.Context, since time.Time) ([]domain.Post, error) {
			return []domain.Post{{ID: "p1", Experiment: "e1"}, {ID: "p2", Experiment: "e2"},
				{ID: "p3", Experiment: "e3", PublishedAt: &older}, {ID: "p4", Experiment: "e3", PublishedAt: &newer}}, nil
		},
	}
	var mu sync.Mutex
	var evaluated []string
	ab := &fixedVariant{evaluate: func(post domain.Post) (*domain.WinnerLock, error) {
		mu.Lock()
		evaluated = append(evaluated, post.ID)
		mu.Unlock()
		switch post.Experiment {
		case "e1":
			return nil, fmt.Errorf("evaluate %s: %w", post.Experiment, domain.ErrConcurrentEvaluation)
		case "e2":
			return nil, errors.New("no metrics")
		}
		return &domain.WinnerLock{Experiment: post.Experiment, PostID: post.ID, Variant: domain.VariantB,
			Reason: domain.LockMaxEvaluations}, nil
	}}
	rec := &mocks.RecorderMock{WinnerLockedFunc: func(string) {}}
	j := New(Params{Posts: posts, AB: ab, Recorder: rec})

	out := j.EvaluatePosts(context.Background())
	assert.Equal(t, scheduler.StatusPartial, out.Status)
	assert.ErrorContains(t, out.Err, "no metrics")
	assert.NotErrorIs(t, out.Err, domain.ErrConcurrentEvaluation, "concurrent evaluation is skipped")
	assert.Equal(t, []string{"p1", "p2", "p4"}, evaluated, "one evaluation per experiment")
	require.Len(t, rec.WinnerLockedCalls(), 1)
	assert.Equal(t, "max_evaluations", rec.WinnerLockedCalls()[0].Reason)
}

func TestJobs_ExperimentLifecycle(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	_, err := repos.Item.UpsertItems(ctx, []domain.Item{storeItem("m1", 9), storeItem("m2", 8),
		storeItem("m3", 7), storeItem("m4", 6)})
	require.NoError(t, err)

	var texts []string
	sender := &mocks.SenderMock{SendFunc: func(ctx context.Context, text string) (string, error) {
		texts = append(texts, text)
		return fmt.Sprintf("%d", len(texts)), nil
	}}
	writer := &mocks.PostWriterMock{WriteFunc: func(ctx context.Context, item domain.Item) (llm.Draft, error) {
		return llm.Draft{A: "story of " + item.ID, B: "facts of " + item.ID}, nil
	}}
	j := newStoreJobs(t, repos, func(p *Params) { p.Writer, p.Sender = writer, sender })

	published := func() domain.Post {
		out := j.PublishPost(ctx)
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		posts, err := repos.Post.ListPublished(ctx, testNow.Add(-time.Hour))
		require.NoError(t, err)
		for _, p := range posts {
			if p.MessageID == fmt.Sprintf("%d", len(texts)) {
				return p
			}
		}
		require.FailNow(t, "published post not found")
		return domain.Post{}
	}

	first, second := published(), published()
	assert.Equal(t, domain.VariantA, first.Variant)
	assert.Equal(t, domain.VariantB, second.Variant)
	assert.Equal(t, domain.DefaultExperiment, first.Experiment)

	// channel stats first, then bot clicks: a = 10*2 + 6*4 = 44, b = 10*2 + 1*4 = 24
	require.NoError(t, repos.Post.SaveMetrics(ctx, first.ID, domain.VariantA,
		domain.EngagementMetrics{Reactions: 10, CapturedAt: testNow.Add(-30 * time.Minute)}))
	require.NoError(t, repos.Post.SaveMetrics(ctx, second.ID, domain.VariantB,
		domain.EngagementMetrics{Reactions: 10, CapturedAt: testNow.Add(-30 * time.Minute)}))
	for i := 0; i < 6; i++ {
		require.NoError(t, repos.Event.RecordClick(ctx, first.ID, domain.VariantA, testNow.Add(-20*time.Minute)))
	}
	require.NoError(t, repos.Event.RecordClick(ctx, second.ID, domain.VariantB, testNow.Add(-20*time.Minute)))

	out := j.AggregateClicks(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	out = j.EvaluatePosts(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
	assert.Contains(t, out.Details, "1 locked")

	lock, err := repos.Post.GetWinnerLock(ctx, domain.DefaultExperiment)
	require.NoError(t, err)
	require.NotNil(t, lock)
	assert.Equal(t, domain.VariantA, lock.Variant)
	assert.InDelta(t, 44.0, lock.ScoreA, 1e-9)
	assert.InDelta(t, 24.0, lock.ScoreB, 1e-9)

	// alternation would give a and then b, the winner takes both
	third, fourth := published(), published()
	assert.Equal(t, domain.VariantA, third.Variant)
	assert.Equal(t, domain.VariantA, fourth.Variant)
	require.Len(t, texts, 4)
	assert.Equal(t, "story of m4", texts[3])
}

func TestJobs_RollupDaily(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	// testNow is 2026-03-10 02:10 in Kyiv, the previous local day is 2026-03-09
	// which is [2026-03-08 22:00, 2026-03-09 22:00) in UTC
	inDay := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	afterDay := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)

	feedback := []struct {
		user string
		kind domain.FeedbackKind
		at   time.Time
	}{
		{"u1", domain.FeedbackHit, inDay},
		{"u1", domain.FeedbackHit, inDay},
		{"u2", domain.FeedbackMiss, inDay},
		{"u2", domain.FeedbackAnother, inDay},
		{"u3", domain.FeedbackFavorite, inDay},
		{"u3", domain.FeedbackHit, afterDay},
	}
	for i, f := range feedback {
		rec := domain.Recommendation{ID: fmt.Sprintf("r%d", i), UserID: f.user, ItemID: fmt.Sprintf("m%d", i),
			Mode: domain.ModeExploit, CreatedAt: f.at}
		require.NoError(t, repos.History.RecordRecommendation(ctx, rec))
		require.NoError(t, repos.History.SaveFeedback(ctx, domain.FeedbackEvent{RecommendationID: rec.ID, UserID: f.user,
			ItemID: rec.ItemID, Kind: f.kind, CreatedAt: f.at}, nil))
	}
	require.NoError(t, repos.Post.CreatePost(ctx, domain.Post{ID: "p1", ItemID: "m1", TextA: "a", TextB: "b", CreatedAt: inDay}))
	require.NoError(t, repos.Post.MarkPublished(ctx, "p1", "1", inDay))

	j := newStoreJobs(t, repos, nil)
	out := j.RollupDaily(ctx)
	require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)

	m, err := repos.Metric.GetDaily(ctx, "2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, 5, m.Recommendations)
	assert.Equal(t, 3, m.Sessions)
	assert.Equal(t, 2, m.Feedback[domain.FeedbackHit])
	assert.Equal(t, 1, m.Feedback[domain.FeedbackMiss])
	assert.Equal(t, 1, m.Feedback[domain.FeedbackAnother])
	assert.Equal(t, 1, m.Feedback[domain.FeedbackFavorite])
	assert.InDelta(t, 0.5, m.HitRate, 1e-9)
	assert.Equal(t, 1, m.PostsPublished)
	assert.True(t, testNow.Equal(m.ComputedAt))
}

func TestHitRate(t *testing.T) {
	tbl := []struct {
		name string
		fb   map[domain.FeedbackKind]int
		want float64
	}{
		{name: "empty", fb: nil, want: 0},
		{name: "only favorites", fb: map[domain.FeedbackKind]int{domain.FeedbackFavorite: 3}, want: 0},
		{name: "all hits", fb: map[domain.FeedbackKind]int{domain.FeedbackHit: 4}, want: 1},
		{name: "another counts as a miss", fb: map[domain.FeedbackKind]int{domain.FeedbackHit: 1,
			domain.FeedbackMiss: 1, domain.FeedbackAnother: 2, domain.FeedbackShare: 7}, want: 0.25},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HitRate(tt.fb), 1e-9)
		})
	}
}

func TestJobs_CheckAlerts(t *testing.T) {
	lastPost := testNow.Add(-30 * time.Hour)
	lastSync := testNow.Add(-10 * time.Hour)

	newMetrics := func(daily *domain.DailyMetrics, recent bool) *mocks.MetricStoreMock {
		return &mocks.MetricStoreMock{
			LatestDailyFunc: func(ctx context.Context) (*domain.DailyMetrics, error) { return daily, nil },
			HasRecentAlertFunc: func(ctx context.Context, kind domain.AlertKind, since time.Time) (bool, error) {
				return recent, nil
			},
			RecordAlertFunc: func(ctx context.Context, kind domain.AlertKind, msg string, at time.Time) error { return nil },
		}
	}
	posts := &mocks.PostStoreMock{LastPublishedAtFunc: func(ctx context.Context) (*time.Time, error) { return &lastPost, nil }}
	settings := &mocks.SettingStoreMock{GetTimeFunc: func(ctx context.Context, key string) (*time.Time, error) {
		return &lastSync, nil
	}}

	t.Run("low hit rate", func(t *testing.T) {
		metrics := newMetrics(&domain.DailyMetrics{Date: "2026-03-09", Sessions: 12, HitRate: 0.1}, false)
		j := New(Params{Metrics: metrics})
		j.now = func() time.Time { return testNow }

		out := j.CheckAlerts(context.Background())
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		require.Len(t, metrics.RecordAlertCalls(), 1)
		call := metrics.RecordAlertCalls()[0]
		assert.Equal(t, domain.AlertHitRateLow, call.Kind)
		assert.Equal(t, "hit rate 10% on 2026-03-09 with 12 sessions, below 20%", call.Msg)
		assert.Equal(t, testNow, call.At)
		assert.Equal(t, testNow.Add(-24*time.Hour), metrics.HasRecentAlertCalls()[0].Since)
	})

	t.Run("not enough sessions", func(t *testing.T) {
		metrics := newMetrics(&domain.DailyMetrics{Date: "2026-03-09", Sessions: 9, HitRate: 0}, false)
		j := New(Params{Metrics: metrics})
		out := j.CheckAlerts(context.Background())
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		assert.Empty(t, metrics.RecordAlertCalls())
		assert.Empty(t, metrics.HasRecentAlertCalls())
	})

	t.Run("stale posts", func(t *testing.T) {
		metrics := newMetrics(nil, false)
		j := New(Params{Metrics: metrics, Posts: posts, Settings: settings,
			Sender: &mocks.SenderMock{}, Catalog: &mocks.CatalogSyncerMock{}})
		j.now = func() time.Time { return testNow }

		out := j.CheckAlerts(context.Background())
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		assert.Contains(t, out.Details, "3 checks, 1 alerts raised")
		require.Len(t, metrics.RecordAlertCalls(), 1)
		assert.Equal(t, domain.AlertNoPosts, metrics.RecordAlertCalls()[0].Kind)
		assert.Contains(t, metrics.RecordAlertCalls()[0].Msg, "no posts for 30h0m0s")
		assert.Equal(t, domain.SettingLastCatalogRun, settings.GetTimeCalls()[0].Key)
	})

	t.Run("duplicate suppressed", func(t *testing.T) {
		metrics := newMetrics(&domain.DailyMetrics{Sessions: 50, HitRate: 0.05}, true)
		j := New(Params{Metrics: metrics})
		out := j.CheckAlerts(context.Background())
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		assert.Contains(t, out.Details, "1 suppressed")
		assert.Empty(t, metrics.RecordAlertCalls())
	})

	t.Run("never synced", func(t *testing.T) {
		metrics := newMetrics(nil, false)
		j := New(Params{Metrics: metrics, Settings: &mocks.SettingStoreMock{
			GetTimeFunc: func(ctx context.Context, key string) (*time.Time, error) { return nil, nil },
		}, Catalog: &mocks.CatalogSyncerMock{}})
		j.now = func() time.Time { return testNow }

		out := j.CheckAlerts(context.Background())
		require.Equal(t, scheduler.StatusSuccess, out.Status, out.Err)
		require.Len(t, metrics.RecordAlertCalls(), 1)
		assert.Equal(t, domain.AlertNoCatalogSync, metrics.RecordAlertCalls()[0].Kind)
		assert.Equal(t, "catalog never synced", metrics.RecordAlertCalls()[0].Msg)
		assert.Equal(t, testNow.Add(-48*time.Hour), metrics.HasRecentAlertCalls()[0].Since)
	})

	t.Run("failed check", func(t *testing.T) {
		metrics := newMetrics(&domain.DailyMetrics{Sessions: 50, HitRate: 0.05}, false)
		broken := &mocks.PostStoreMock{LastPublishedAtFunc: func(ctx context.Context) (*time.Time, error) {
			return nil, errors.New("db gone")
		}}
		j := New(Params{Metrics: metrics, Posts: broken, Sender: &mocks.SenderMock{}})

		out := j.CheckAlerts(context.Background())
		assert.Equal(t, scheduler.StatusPartial, out.Status)
		assert.ErrorContains(t, out.Err, "check no_posts_24h: db gone")
		assert.Len(t, metrics.RecordAlertCalls(), 1)
	})
}

func TestJobs_SweepSessions(t *testing.T) {
	sweeper := &mocks.SessionSweeperMock{
		SweepFunc: func(now time.Time) int { return 3 },
		LenFunc:   func() int { return 7 },
	}
	rec := &mocks.RecorderMock{SessionsActiveFunc: func(int) {}}
	j := New(Params{Sessions: sweeper, Recorder: rec})
	j.now = func() time.Time { return testNow }

	out := j.SweepSessions(context.Background())
	assert.Equal(t, scheduler.StatusSuccess, out.Status)
	assert.Equal(t, "removed 3 expired sessions, 7 active", out.Details)
	require.Len(t, sweeper.SweepCalls(), 1)
	assert.Equal(t, testNow, sweeper.SweepCalls()[0].Now)
	require.Len(t, rec.SessionsActiveCalls(), 1)
	assert.Equal(t, 7, rec.SessionsActiveCalls()[0].N)
}

// clickCounter returns its counts for any window, totals are filtered by post
type clickCounter []repository.ClickCount

func (c clickCounter) CountClicks(context.Context, time.Time, time.Time) ([]repository.ClickCount, error) {
	return c, nil
}

func (c clickCounter) TotalClicks(_ context.Context, postIDs []string, _ time.Time) ([]repository.ClickCount, error) {
	var res []repository.ClickCount
	for _, cc := range c {
		for _, id := range postIDs {
			if cc.PostID == id {
				res = append(res, cc)
			}
		}
	}
	return res, nil
}

// fixedVariant is an ABController with canned answers
type fixedVariant struct {
	v        domain.Variant
	evaluate func(post domain.Post) (*domain.WinnerLock, error)
}

func (f *fixedVariant) SelectVariant(context.Context, domain.Post) (domain.Variant, error) { return f.v, nil }

func (f *fixedVariant) Evaluate(_ context.Context, post domain.Post) (*domain.WinnerLock, error) {
	return f.evaluate(post)
}
