package jobs

import (
	"context"
	"fmt"
	"html"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/scheduler"
)

// PublishPost picks the best item not posted recently, writes both variants, assigns one and delivers it.
// A post that failed to deliver is removed, so the item stays available for the next slot.
func (j *Jobs) PublishPost(ctx context.Context) scheduler.Outcome {
	now := j.now().UTC()

	recent, err := j.Posts.RecentPostItems(ctx, now.Add(-j.Config.PostRepeat))
	if err != nil {
		return scheduler.Failure(fmt.Errorf("get recent posts: %w", err))
	}
	items, err := j.Items.TopItems(ctx, j.Config.PostCandidates, recent)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("get top items: %w", err))
	}
	if len(items) == 0 {
		return scheduler.Failure(fmt.Errorf("pick item for post: %w", domain.ErrNoCandidates))
	}
	item := items[0]

	draft, err := j.Writer.Write(ctx, item)
	if err != nil {
		return scheduler.Failure(fmt.Errorf("write post for %s: %w", item.ID, err))
	}

	post := domain.Post{ID: uuid.NewString(), ItemID: item.ID, Experiment: j.Config.Experiment,
		TextA: draft.A, TextB: draft.B, CreatedAt: now}
	if err := j.Posts.CreatePost(ctx, post); err != nil {
		return scheduler.Failure(fmt.Errorf("create post: %w", err))
	}

	variant, err := j.AB.SelectVariant(ctx, post)
	if err != nil {
		j.dropPost(ctx, post.ID)
		return scheduler.Failure(fmt.Errorf("select variant of %s: %w", post.ID, err))
	}

	msgID, err := j.Sender.Send(ctx, j.postText(post, variant))
	if err != nil {
		j.dropPost(ctx, post.ID)
		return scheduler.Failure(fmt.Errorf("deliver post %s: %w", post.ID, err))
	}

	if err := j.Posts.MarkPublished(ctx, post.ID, msgID, now); err != nil {
		// delivered already, the post must not be sent twice
		return scheduler.Partial(fmt.Errorf("mark post %s published: %w", post.ID, err), "delivered as message %s", msgID)
	}
	if err := j.Settings.SetTime(ctx, domain.SettingLastPublished, now); err != nil {
		lgr.Printf("[WARN] can't save publish time: %v", err)
	}
	j.Recorder.PostPublished(string(variant))
	return scheduler.Success("post %s of %s published as message %s, variant %s, llm %v",
		post.ID, item.ID, msgID, variant, draft.UsedLLM)
}

// postText returns the text of the variant with the call-to-action link attributing bot starts to it
func (j *Jobs) postText(post domain.Post, v domain.Variant) string {
	text := post.Text(v)
	if j.Config.BotName == "" {
		return text
	}
	link := fmt.Sprintf("https://t.me/%s?start=post_%s_%s", j.Config.BotName, post.ID, v)
	return text + "\n\n" + `🎬 <a href="` + html.EscapeString(link) + `">Підібрати фільм за настроєм</a>`
}

func (j *Jobs) dropPost(ctx context.Context, id string) {
	if err := j.Posts.DeletePost(ctx, id); err != nil {
		lgr.Printf("[WARN] can't delete undelivered post %s: %v", id, err)
	}
}
