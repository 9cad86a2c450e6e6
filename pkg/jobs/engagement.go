package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/onepick/pkg/catalog"
	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/scheduler"
)

// AggregateClicks writes the total bot clicks of every post variant clicked since the last run into
// its latest metrics snapshot, other counters are carried forward. Totals are absolute and never
// lower the stored count, so a rerun after a partial failure doesn't count anything twice.
// The bookmark moves only when every post was updated.
func (j *Jobs) AggregateClicks(ctx context.Context) scheduler.Outcome {
	now := j.now().UTC()
	since := now.Add(-j.Config.ClickLookback)
	last, err := j.Settings.GetTime(ctx, domain.SettingLastClickRun)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("get click bookmark: %w", err))
	}
	if last != nil {
		since = *last
	}

	recent, err := j.Clicks.CountClicks(ctx, since, now)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("count clicks: %w", err))
	}
	touched := map[string]struct{}{}
	for _, c := range recent {
		touched[c.PostID] = struct{}{}
	}
	ids := sortedKeys(touched)

	totals, err := j.Clicks.TotalClicks(ctx, ids, now)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("total clicks: %w", err))
	}
	byPost := map[string]map[domain.Variant]int{}
	for _, c := range totals {
		v := domain.Variant(c.Variant)
		if v.Validate() != nil {
			lgr.Printf("[WARN] skip %d clicks of post %s with variant %q", c.Count, c.PostID, c.Variant)
			continue
		}
		if byPost[c.PostID] == nil {
			byPost[c.PostID] = map[domain.Variant]int{}
		}
		byPost[c.PostID][v] = c.Count
	}
	ids = sortedKeys(byPost)

	failed, err := j.forEachPost(ctx, ids, func(ctx context.Context, postID string) error {
		for _, v := range []domain.Variant{domain.VariantA, domain.VariantB} {
			clicks, ok := byPost[postID][v]
			if !ok {
				continue
			}
			if err := j.Posts.SetClicks(ctx, postID, v, clicks, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return collected(err, len(ids)-failed, "clicks of %d posts aggregated, %d failed", len(ids)-failed, failed)
	}

	if err := j.Settings.SetTime(ctx, domain.SettingLastClickRun, now); err != nil {
		return scheduler.Partial(fmt.Errorf("save click bookmark: %w", err), "clicks of %d posts aggregated", len(ids))
	}
	return scheduler.Success("clicks of %d posts aggregated since %s", len(ids), since.Format(time.RFC3339))
}

// RecomputeScores refreshes base scores of the catalog and per-variant scores of recent posts
func (j *Jobs) RecomputeScores(ctx context.Context) scheduler.Outcome {
	now := j.now().UTC()

	items, err := j.Items.ListItems(ctx)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("list items: %w", err))
	}
	scores := make(map[string]float64, len(items))
	for _, it := range items {
		if score := catalog.BaseScore(it.VoteAverage, it.VoteCount, it.Popularity); score != it.BaseScore {
			scores[it.ID] = score
		}
	}
	updated, err := j.Items.RefreshBaseScores(ctx, scores)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("refresh base scores: %w", err))
	}

	posts, err := j.Posts.ListPublished(ctx, now.Add(-j.Config.EvaluationWindow))
	if err != nil {
		return scheduler.Partial(fmt.Errorf("list published posts: %w", err), "%d item scores updated", updated)
	}
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	failed, err := j.forEachPost(ctx, ids, func(ctx context.Context, postID string) error {
		m, err := j.Posts.LatestMetrics(ctx, postID)
		if err != nil {
			return err
		}
		return j.Posts.SaveScores(ctx, postID, m.A.Score(), m.B.Score(), now)
	})
	if err != nil {
		return scheduler.Partial(err, "%d item scores updated, %d of %d posts scored", updated, len(ids)-failed, len(ids))
	}
	return scheduler.Success("%d item scores updated, %d posts scored", updated, len(ids))
}

// EvaluatePosts runs the winner decision once per experiment with posts published within the window.
// The newest post of the experiment is recorded on the lock. Experiments evaluated concurrently
// elsewhere are skipped.
func (j *Jobs) EvaluatePosts(ctx context.Context) scheduler.Outcome {
	posts, err := j.Posts.ListPublished(ctx, j.now().UTC().Add(-j.Config.EvaluationWindow))
	if err != nil {
		return scheduler.Failure(fmt.Errorf("list published posts: %w", err))
	}
	newest := map[string]domain.Post{}
	for _, p := range posts {
		cur, ok := newest[p.ExperimentKey()]
		if !ok || publishedAt(p).After(publishedAt(cur)) {
			newest[p.ExperimentKey()] = p
		}
	}

	var locked, skipped int
	var errs []error
	for _, experiment := range sortedKeys(newest) {
		lock, err := j.AB.Evaluate(ctx, newest[experiment])
		switch {
		case errors.Is(err, domain.ErrConcurrentEvaluation):
			skipped++
		case err != nil:
			errs = append(errs, err)
		case lock != nil:
			locked++
			j.Recorder.WinnerLocked(string(lock.Reason))
		}
	}
	if len(errs) > 0 {
		return collected(errors.Join(errs...), len(newest)-len(errs),
			"%d experiments evaluated, %d locked, %d failed", len(newest), locked, len(errs))
	}
	return scheduler.Success("%d experiments evaluated from %d posts, %d locked, %d skipped", len(newest), len(posts), locked, skipped)
}

func publishedAt(p domain.Post) time.Time {
	if p.PublishedAt == nil {
		return p.CreatedAt
	}
	return *p.PublishedAt
}

// forEachPost runs fn for every post with bounded concurrency and returns the number of failed posts
// with their joined errors
func (j *Jobs) forEachPost(ctx context.Context, ids []string, fn func(ctx context.Context, postID string) error) (int, error) {
	var eg errgroup.Group
	eg.SetLimit(j.Config.Workers)
	errs := make([]error, len(ids))
	var failed int32
	for i, id := range ids {
		eg.Go(func() error {
			if err := fn(ctx, id); err != nil {
				errs[i] = fmt.Errorf("post %s: %w", id, err)
				atomic.AddInt32(&failed, 1)
			}
			return nil
		})
	}
	_ = eg.Wait()
	if n := int(atomic.LoadInt32(&failed)); n > 0 {
		return n, errors.Join(errs...)
	}
	return 0, nil
}

// collected turns an error of a multi-post run into partial outcome if anything succeeded
func collected(err error, succeeded int, format string, args ...any) scheduler.Outcome {
	if succeeded <= 0 {
		return scheduler.Failure(err)
	}
	return scheduler.Partial(err, format, args...)
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
