package service

import (
	"context"
	"time"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/repository"
)

// RepoStore provides unified access to repositories for the core
type RepoStore struct {
	historyRepo *repository.HistoryRepository
	itemRepo    *repository.ItemRepository
	postRepo    *repository.PostRepository
	eventRepo   *repository.EventRepository
	metricRepo  *repository.MetricRepository
	userRepo    *repository.UserRepository
}

// NewRepoStore makes a store over the shared repositories
func NewRepoStore(repos *repository.Repositories) *RepoStore {
	return &RepoStore{
		historyRepo: repos.History,
		itemRepo:    repos.Item,
		postRepo:    repos.Post,
		eventRepo:   repos.Event,
		metricRepo:  repos.Metric,
		userRepo:    repos.User,
	}
}

// recommendations and items

func (s *RepoStore) GetRecommendation(ctx context.Context, id string) (*domain.Recommendation, error) {
	return s.historyRepo.GetRecommendation(ctx, id)
}

func (s *RepoStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.GetItem(ctx, id)
}

// posts

func (s *RepoStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.postRepo.GetPost(ctx, id)
}

func (s *RepoStore) LatestMetrics(ctx context.Context, postID string) (domain.PostMetrics, error) {
	return s.postRepo.LatestMetrics(ctx, postID)
}

func (s *RepoStore) SaveMetrics(ctx context.Context, postID string, v domain.Variant, m domain.EngagementMetrics) error {
	return s.postRepo.SaveMetrics(ctx, postID, v, m)
}

func (s *RepoStore) GetWinnerLock(ctx context.Context, experiment string) (*domain.WinnerLock, error) {
	return s.postRepo.GetWinnerLock(ctx, experiment)
}

func (s *RepoStore) RecordClick(ctx context.Context, postID string, v domain.Variant, at time.Time) error {
	return s.eventRepo.RecordClick(ctx, postID, v, at)
}

// favorites

func (s *RepoStore) AddFavorite(ctx context.Context, userID, itemID string, at time.Time) (bool, error) {
	return s.userRepo.AddFavorite(ctx, userID, itemID, at)
}

func (s *RepoStore) ListFavorites(ctx context.Context, userID string, limit int) ([]domain.Favorite, error) {
	return s.userRepo.ListFavorites(ctx, userID, limit)
}

// operational metrics

func (s *RepoStore) GetDaily(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	return s.metricRepo.GetDaily(ctx, date)
}

func (s *RepoStore) LatestDaily(ctx context.Context) (*domain.DailyMetrics, error) {
	return s.metricRepo.LatestDaily(ctx)
}

func (s *RepoStore) ListAlerts(ctx context.Context, limit int) ([]domain.Alert, error) {
	return s.metricRepo.ListAlerts(ctx, limit)
}
