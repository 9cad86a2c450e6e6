package llm

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/umputun/onepick/pkg/domain"
)

var moodHooks = map[domain.Mood]string{
	domain.MoodLight:  "Хочеться чогось легкого на вечір?",
	domain.MoodHeavy:  "Настрій на щось глибоке і чесне?",
	domain.MoodEscape: "Треба ненадовго втекти від реальності?",
}

var moodAudience = map[domain.Mood]string{
	domain.MoodLight:  "Для тих, хто хоче посміхнутися і видихнути.",
	domain.MoodHeavy:  "Для тих, хто любить історії, після яких довго думаєш.",
	domain.MoodEscape: "Для тих, хто хоче опинитися в іншому світі.",
}

var pacePhrases = map[domain.Pace]string{
	domain.PaceFast: "динамічний",
	domain.PaceSlow: "неспішний",
}

// templateDraft renders both variants without the LLM. A leads with the mood, B leads with the story.
func templateDraft(item domain.Item, limits Limits) Draft {
	title := "<b>" + html.EscapeString(item.Title) + "</b>"
	kind := "фільм"
	if item.Type == domain.ItemSeries {
		kind = "серіал"
	}

	hook, ok := moodHooks[item.Mood]
	if !ok {
		hook = "Не знаєш, що подивитись сьогодні?"
	}
	descr := kind
	if p, ok := pacePhrases[item.Pace]; ok {
		descr = p + " " + kind
	}
	audience, ok := moodAudience[item.Mood]
	if !ok {
		audience = "Для вечора, коли хочеться чогось свого."
	}
	a := strings.Join([]string{hook, "", title + " — " + descr + ".", audience}, "\n")

	fact := firstSentence(item.Meta["overview"], limits.Hook)
	if fact == "" {
		fact = "Історія, яку варто побачити хоча б раз."
		if len(item.Tags) > 0 {
			fact = "Коли хочеться: " + strings.Join(firstN(item.Tags, 3), ", ") + "."
		}
	}
	b := strings.Join([]string{html.EscapeString(fact), "", "Це " + title + ", " + descr + ".", "Зберігай на вечір."}, "\n")

	return Draft{A: Polish(a, limits), B: Polish(b, limits)}
}

// firstSentence returns the first sentence of the text if it fits maxLen
func firstSentence(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if idx := strings.IndexAny(text, ".!?"); idx > 0 {
		text = text[:idx+1]
	}
	if maxLen > 0 && utf8.RuneCountInString(text) > maxLen {
		return ""
	}
	return text
}

func firstN(vals []string, n int) []string {
	if len(vals) <= n {
		return vals
	}
	return vals[:n]
}
