package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/recommend/mocks"
	"github.com/umputun/onepick/pkg/repository"
)

func newMocks(items []domain.Item) (*mocks.CatalogMock, *mocks.HistoryMock, *mocks.DismissedMock, *mocks.WeightsProviderMock) {
	cat := &mocks.CatalogMock{
		ListCandidatesFunc: func(ctx context.Context, filter domain.CandidateFilter) ([]domain.Item, error) {
			return items, nil
		},
	}
	hist := &mocks.HistoryMock{
		RecentItemsFunc: func(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error) {
			return map[string]struct{}{}, nil
		},
		RecordRecommendationFunc: func(ctx context.Context, rec domain.Recommendation) error { return nil },
	}
	dis := &mocks.DismissedMock{
		DismissedItemsFunc: func(ctx context.Context, userID string) (map[string]struct{}, error) {
			return map[string]struct{}{}, nil
		},
	}
	w := &mocks.WeightsProviderMock{
		WeightsFunc: func(ctx context.Context, userID string) domain.Weights { return domain.Weights{} },
	}
	return cat, hist, dis, w
}

func TestService_Recommend(t *testing.T) {
	cat, hist, dis, w := newMocks(catalog(10))
	hist.RecentItemsFunc = func(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error) {
		return map[string]struct{}{"m001": {}}, nil
	}
	dis.DismissedItemsFunc = func(ctx context.Context, userID string) (map[string]struct{}, error) {
		return map[string]struct{}{"m002": {}}, nil
	}
	now := time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	svc := NewService(ServiceParams{Catalog: cat, History: hist, Dismissed: dis, Weights: w, Location: kyiv})
	svc.now = func() time.Time { return now }

	res, err := svc.Recommend(context.Background(), "u1", lightMovie(), false)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Recommendation.ID)
	assert.Equal(t, res.Item.ID, res.Recommendation.ItemID)
	assert.NotEqual(t, "m001", res.Item.ID)
	assert.NotEqual(t, "m002", res.Item.ID)
	assert.Equal(t, now, res.Recommendation.CreatedAt)

	require.Len(t, hist.RecentItemsCalls(), 1)
	assert.Equal(t, now.Add(-90*24*time.Hour), hist.RecentItemsCalls()[0].Since)

	require.Len(t, cat.ListCandidatesCalls(), 1)
	f := cat.ListCandidatesCalls()[0].Filter
	assert.Equal(t, domain.ItemMovie, f.Type)
	assert.Contains(t, f.Exclude, "m001")
	assert.Contains(t, f.Exclude, "m002")

	require.Len(t, hist.RecordRecommendationCalls(), 1)
	assert.Equal(t, res.Recommendation, hist.RecordRecommendationCalls()[0].Rec)

	// seed date is taken in the service timezone, 22:30 UTC is next day in Kyiv
	expected, err := NewEngine(DefaultConfig()).Recommend(Snapshot{Candidates: catalog(10),
		Exclude: map[string]struct{}{"m001": {}, "m002": {}}, Weights: domain.Weights{}},
		Request{UserID: "u1", Answers: lightMovie(), AsOf: "2024-03-02"})
	require.NoError(t, err)
	assert.Equal(t, expected.Item.ID, res.Item.ID)
}

func TestService_RecommendErrors(t *testing.T) {
	t.Run("invalid answers", func(t *testing.T) {
		cat, hist, dis, w := newMocks(catalog(3))
		svc := NewService(ServiceParams{Catalog: cat, History: hist, Dismissed: dis, Weights: w})
		_, err := svc.Recommend(context.Background(), "u1", domain.Answers{Mood: domain.MoodLight}, false)
		require.Error(t, err)
		assert.Empty(t, cat.ListCandidatesCalls())
	})

	t.Run("no candidates not recorded", func(t *testing.T) {
		cat, hist, dis, w := newMocks(nil)
		svc := NewService(ServiceParams{Catalog: cat, History: hist, Dismissed: dis, Weights: w})
		_, err := svc.Recommend(context.Background(), "u1", lightMovie(), false)
		require.ErrorIs(t, err, domain.ErrNoCandidates)
		assert.Empty(t, hist.RecordRecommendationCalls())
	})

	t.Run("history failure never relaxes anti-repeat", func(t *testing.T) {
		cat, hist, dis, w := newMocks(catalog(3))
		hist.RecentItemsFunc = func(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error) {
			return nil, errors.New("db down")
		}
		svc := NewService(ServiceParams{Catalog: cat, History: hist, Dismissed: dis, Weights: w})
		_, err := svc.Recommend(context.Background(), "u1", lightMovie(), false)
		require.Error(t, err)
		assert.Empty(t, cat.ListCandidatesCalls())
	})

	t.Run("record failure", func(t *testing.T) {
		cat, hist, dis, w := newMocks(catalog(3))
		hist.RecordRecommendationFunc = func(ctx context.Context, rec domain.Recommendation) error { return errors.New("locked") }
		svc := NewService(ServiceParams{Catalog: cat, History: hist, Dismissed: dis, Weights: w})
		_, err := svc.Recommend(context.Background(), "u1", lightMovie(), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record recommendation")
	})
}

func TestService_AntiRepeatWithRepository(t *testing.T) {
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	items := catalog(6)
	for i := range items {
		items[i].UpdatedAt = time.Now()
	}
	_, err = repos.Item.UpsertItems(context.Background(), items)
	require.NoError(t, err)

	w := &mocks.WeightsProviderMock{WeightsFunc: func(ctx context.Context, userID string) domain.Weights { return nil }}
	svc := NewService(ServiceParams{Catalog: repos.Item, History: repos.History, Dismissed: repos.User, Weights: w})

	seen := map[string]bool{}
	for i := 0; i < len(items); i++ {
		res, err := svc.Recommend(context.Background(), "u1", lightMovie(), i%2 == 1)
		require.NoError(t, err)
		assert.False(t, seen[res.Item.ID], "item %s repeated", res.Item.ID)
		seen[res.Item.ID] = true
	}
	_, err = svc.Recommend(context.Background(), "u1", lightMovie(), false)
	require.ErrorIs(t, err, domain.ErrNoCandidates)

	// the window elapses
	svc.now = func() time.Time { return time.Now().Add(91 * 24 * time.Hour) }
	_, err = svc.Recommend(context.Background(), "u1", lightMovie(), false)
	require.NoError(t, err)

	// other users are not affected
	_, err = svc.Recommend(context.Background(), "u2", lightMovie(), false)
	require.NoError(t, err)
}

func TestService_ConcurrentSameUserNoRepeat(t *testing.T) {
	items := catalog(20)
	var mu sync.Mutex
	recorded := map[string]struct{}{}
	hist := &mocks.HistoryMock{
		RecentItemsFunc: func(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error) {
			mu.Lock()
			defer mu.Unlock()
			res := make(map[string]struct{}, len(recorded))
			for k := range recorded {
				res[k] = struct{}{}
			}
			return res, nil
		},
		RecordRecommendationFunc: func(ctx context.Context, rec domain.Recommendation) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := recorded[rec.ItemID]; ok {
				return fmt.Errorf("repeat of %s", rec.ItemID)
			}
			recorded[rec.ItemID] = struct{}{}
			return nil
		},
	}
	cat, _, dis, w := newMocks(items)
	svc := NewService(ServiceParams{Catalog: cat, History: hist, Dismissed: dis, Weights: w})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Recommend(context.Background(), "u1", lightMovie(), false)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, recorded, 10)
}
