package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/repository"
	"github.com/umputun/onepick/pkg/scheduler"
)

// RollupDaily computes metrics of the previous calendar day in the configured timezone
func (j *Jobs) RollupDaily(ctx context.Context) scheduler.Outcome {
	now := j.now()
	local := now.In(j.Location)
	to := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, j.Location)
	from := to.AddDate(0, 0, -1)

	m, err := j.Daily(ctx, from, to)
	if err != nil {
		return scheduler.Failure(err)
	}
	m.ComputedAt = now.UTC()
	if err := j.Metrics.SaveDaily(ctx, m); err != nil {
		return scheduler.Failure(fmt.Errorf("save daily metrics: %w", err))
	}
	return scheduler.Success("%s: %d recommendations, %d sessions, hit rate %.2f, %d posts",
		m.Date, m.Recommendations, m.Sessions, m.HitRate, m.PostsPublished)
}

// Daily collects metrics of the [from, to) range, labeled with the local date of from
func (j *Jobs) Daily(ctx context.Context, from, to time.Time) (domain.DailyMetrics, error) {
	var (
		recs, users int
		feedback    repository.FeedbackCounts
		posts       int
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		recs, users, err = j.History.CountRecommendations(egCtx, from, to)
		return err
	})
	eg.Go(func() (err error) {
		feedback, err = j.History.CountFeedback(egCtx, from, to)
		return err
	})
	eg.Go(func() (err error) {
		posts, err = j.Posts.CountPublished(egCtx, from, to)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.DailyMetrics{}, fmt.Errorf("collect daily metrics: %w", err)
	}

	fb := make(map[domain.FeedbackKind]int, len(domain.FeedbackKinds))
	for _, k := range domain.FeedbackKinds {
		fb[k] = feedback[k]
	}
	return domain.DailyMetrics{
		Date:            domain.LocalDate(from, j.Location),
		Recommendations: recs,
		Sessions:        users,
		Feedback:        fb,
		HitRate:         HitRate(fb),
		PostsPublished:  posts,
	}, nil
}

// HitRate is hits over hits, misses and "another" answers, zero without such feedback
func HitRate(fb map[domain.FeedbackKind]int) float64 {
	total := fb[domain.FeedbackHit] + fb[domain.FeedbackMiss] + fb[domain.FeedbackAnother]
	if total == 0 {
		return 0
	}
	return float64(fb[domain.FeedbackHit]) / float64(total)
}

// alert is a single operational condition
type alert struct {
	kind   domain.AlertKind
	dedupe time.Duration // same alert is not raised again within this window
	check  func(ctx context.Context, now time.Time) (msg string, err error)
}

// CheckAlerts raises operational alerts, each kind at most once per its window
func (j *Jobs) CheckAlerts(ctx context.Context) scheduler.Outcome {
	now := j.now().UTC()
	alerts := []alert{{kind: domain.AlertHitRateLow, dedupe: 24 * time.Hour, check: j.checkHitRate}}
	if j.Sender != nil {
		alerts = append(alerts, alert{kind: domain.AlertNoPosts, dedupe: 24 * time.Hour, check: j.checkPosts})
	}
	if j.Catalog != nil {
		alerts = append(alerts, alert{kind: domain.AlertNoCatalogSync, dedupe: 48 * time.Hour, check: j.checkSync})
	}

	var raised, suppressed int
	var errs []error
	for _, a := range alerts {
		msg, err := a.check(ctx, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("check %s: %w", a.kind, err))
			continue
		}
		if msg == "" {
			continue
		}
		recent, err := j.Metrics.HasRecentAlert(ctx, a.kind, now.Add(-a.dedupe))
		if err != nil {
			errs = append(errs, fmt.Errorf("check recent %s: %w", a.kind, err))
			continue
		}
		if recent {
			suppressed++
			continue
		}
		if err := j.Metrics.RecordAlert(ctx, a.kind, msg, now); err != nil {
			errs = append(errs, fmt.Errorf("record %s: %w", a.kind, err))
			continue
		}
		raised++
		lgr.Printf("[WARN] alert %s: %s", a.kind, msg)
	}

	if len(errs) > 0 {
		return collected(errors.Join(errs...), len(alerts)-len(errs), "%d alerts raised, %d checks failed", raised, len(errs))
	}
	return scheduler.Success("%d checks, %d alerts raised, %d suppressed", len(alerts), raised, suppressed)
}

func (j *Jobs) checkHitRate(ctx context.Context, _ time.Time) (string, error) {
	m, err := j.Metrics.LatestDaily(ctx)
	if err != nil || m == nil {
		return "", err
	}
	if m.Sessions < j.Config.HitRateSessions || m.HitRate >= j.Config.HitRateMin {
		return "", nil
	}
	return fmt.Sprintf("hit rate %.0f%% on %s with %d sessions, below %.0f%%",
		m.HitRate*100, m.Date, m.Sessions, j.Config.HitRateMin*100), nil
}

func (j *Jobs) checkPosts(ctx context.Context, now time.Time) (string, error) {
	last, err := j.Posts.LastPublishedAt(ctx)
	if err != nil {
		return "", err
	}
	if last == nil {
		return "no posts published yet", nil
	}
	if gap := now.Sub(*last); gap > j.Config.PostsGap {
		return fmt.Sprintf("no posts for %s, last at %s", gap.Round(time.Minute), last.Format(time.RFC3339)), nil
	}
	return "", nil
}

func (j *Jobs) checkSync(ctx context.Context, now time.Time) (string, error) {
	last, err := j.Settings.GetTime(ctx, domain.SettingLastCatalogRun)
	if err != nil {
		return "", err
	}
	if last == nil {
		return "catalog never synced", nil
	}
	if gap := now.Sub(*last); gap > j.Config.SyncGap {
		return fmt.Sprintf("no catalog sync for %s, last at %s", gap.Round(time.Minute), last.Format(time.RFC3339)), nil
	}
	return "", nil
}
