package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Fetcher pulls listing pages from the upstream
type Fetcher interface {
	Page(ctx context.Context, src Source, page int) ([]Title, error)
}

// Store persists synced items
type Store interface {
	UpsertItems(ctx context.Context, items []domain.Item) (int, error)
}

// SyncParams defines the syncer
type SyncParams struct {
	Fetcher  Fetcher
	Store    Store
	Sources  []Source
	Pages    int // pages per source
	MaxItems int // unique items per run, 0 means unlimited
}

// SyncStats reports a sync run
type SyncStats struct {
	Fetched  int
	Upserted int
	Sources  int // sources fully fetched
	Failed   []string
}

// Syncer refreshes the catalog from the upstream
type Syncer struct {
	SyncParams
	now func() time.Time
}

// NewSyncer makes a syncer with default sources and a single page per source if not set
func NewSyncer(params SyncParams) *Syncer {
	if len(params.Sources) == 0 {
		params.Sources = DefaultSources
	}
	if params.Pages <= 0 {
		params.Pages = 1
	}
	return &Syncer{SyncParams: params, now: time.Now}
}

// Sync pulls all sources and upserts unique items, earlier sources win on duplicates.
// A failed page stops its source and the rest of the sources go on. If nothing could be fetched
// the catalog is left untouched and the error wraps ErrUpstreamSync; if only some sources failed
// the fetched items are still stored and the error wraps ErrUpstreamSync as well.
func (s *Syncer) Sync(ctx context.Context) (SyncStats, error) {
	var stats SyncStats
	var errs []error
	seen := map[string]struct{}{}
	items := []domain.Item{}

	for _, src := range s.Sources {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := s.fetchSource(ctx, src, seen, &items, &stats); err != nil {
			lgr.Printf("[WARN] catalog source %s failed: %v", src, err)
			stats.Failed = append(stats.Failed, src.String())
			errs = append(errs, err)
		} else {
			stats.Sources++
		}
		if s.MaxItems > 0 && len(items) >= s.MaxItems {
			lgr.Printf("[INFO] catalog sync reached max items %d", s.MaxItems)
			break
		}
	}

	if len(items) == 0 && len(errs) > 0 {
		return stats, fmt.Errorf("%w: nothing fetched: %w", domain.ErrUpstreamSync, errors.Join(errs...))
	}

	if len(items) > 0 {
		n, err := s.Store.UpsertItems(ctx, items)
		if err != nil {
			return stats, fmt.Errorf("upsert %d items: %w", len(items), err)
		}
		stats.Upserted = n
	}
	lgr.Printf("[INFO] catalog sync fetched %d, upserted %d, failed sources %d", stats.Fetched, stats.Upserted, len(stats.Failed))

	if len(errs) > 0 {
		return stats, fmt.Errorf("%w: %d sources failed: %w", domain.ErrUpstreamSync, len(errs), errors.Join(errs...))
	}
	return stats, nil
}

func (s *Syncer) fetchSource(ctx context.Context, src Source, seen map[string]struct{}, items *[]domain.Item, stats *SyncStats) error {
	media, now := src.Media, s.now().UTC()
	for page := 1; page <= s.Pages; page++ {
		titles, err := s.Fetcher.Page(ctx, src, page)
		if err != nil {
			return err
		}
		for _, t := range titles {
			item, ok := ToItem(t, media)
			if !ok {
				continue
			}
			stats.Fetched++
			if _, dup := seen[item.ID]; dup {
				continue
			}
			if s.MaxItems > 0 && len(*items) >= s.MaxItems {
				return nil
			}
			item.UpdatedAt = now
			seen[item.ID] = struct{}{}
			*items = append(*items, item)
		}
		if len(titles) == 0 {
			return nil
		}
	}
	return nil
}
