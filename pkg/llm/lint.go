package llm

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Limits are the style limits of a channel post, in characters of visible text
type Limits struct {
	Hook  int // first line
	Body  int // whole text
	Lines int // non-empty lines
}

// Violation is a broken style rule
type Violation struct {
	Rule    string
	Message string
}

// words a post must never contain, compared case-insensitively as whole words
var bannedWords = []string{"топ", "imdb", "рейтинг", "найкращий", "must-watch", "шедевр", "спойлер"}

var (
	boldMD   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicMD = regexp.MustCompile(`(^|[^\w*])\*([^*\n]+?)\*([^\w*]|$)`)
	linkMD   = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)
)

// channelPolicy keeps only the markup Telegram accepts in HTML parse mode
var channelPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "s", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "tg")
	p.RequireParseableURLs(true)
	return p
}()

var stripPolicy = bluemonday.StrictPolicy()

// Sanitize removes markup Telegram can't render, keeping the text
func Sanitize(text string) string {
	return strings.TrimSpace(channelPolicy.Sanitize(text))
}

// Visible returns the text as the reader sees it, without tags and entities
func Visible(text string) string {
	return html.UnescapeString(stripPolicy.Sanitize(text))
}

// Lint checks the post against style rules, empty result means the post passed
func Lint(text string, limits Limits) []Violation {
	var res []Violation
	text = strings.TrimSpace(text)
	if text == "" {
		return []Violation{{Rule: "empty", Message: "post is empty"}}
	}

	lines := strings.Split(text, "\n")
	if hook := utf8.RuneCountInString(Visible(strings.TrimSpace(lines[0]))); limits.Hook > 0 && hook > limits.Hook {
		res = append(res, Violation{Rule: "hook_length", Message: fmt.Sprintf("first line has %d chars, max %d", hook, limits.Hook)})
	}
	if body := utf8.RuneCountInString(Visible(text)); limits.Body > 0 && body > limits.Body {
		res = append(res, Violation{Rule: "body_length", Message: fmt.Sprintf("text has %d chars, max %d", body, limits.Body)})
	}

	nonEmpty := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty++
		}
	}
	if limits.Lines > 0 && nonEmpty > limits.Lines {
		res = append(res, Violation{Rule: "max_lines", Message: fmt.Sprintf("%d lines, max %d", nonEmpty, limits.Lines)})
	}

	words := map[string]struct{}{}
	for _, w := range strings.FieldsFunc(strings.ToLower(Visible(text)), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	}) {
		words[w] = struct{}{}
	}
	for _, b := range bannedWords {
		if _, ok := words[b]; ok {
			res = append(res, Violation{Rule: "banned_word", Message: fmt.Sprintf("contains %q", b)})
		}
	}
	return res
}

// Polish converts markdown leftovers to HTML, drops repeated blank lines, fits the text into limits
// and sanitizes the markup
func Polish(text string, limits Limits) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	text = linkMD.ReplaceAllString(text, `<a href="$2">$1</a>`)
	text = boldMD.ReplaceAllString(text, "<b>$1</b>")
	text = italicMD.ReplaceAllString(text, "$1<i>$2</i>$3")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	prevEmpty := false
	for _, l := range lines {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		empty := l == ""
		if empty && prevEmpty {
			continue
		}
		kept = append(kept, l)
		prevEmpty = empty
	}
	return Sanitize(truncate(strings.Join(kept, "\n"), limits.Body))
}

// truncate drops trailing lines until the visible text fits, cutting the last line on a word boundary
// if it is too long by itself
func truncate(text string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(Visible(text)) <= maxLen {
		return text
	}
	lines := strings.Split(text, "\n")
	for len(lines) > 1 && utf8.RuneCountInString(Visible(strings.Join(lines, "\n"))) > maxLen {
		lines = lines[:len(lines)-1]
	}
	text = strings.TrimSpace(strings.Join(lines, "\n"))
	if utf8.RuneCountInString(Visible(text)) <= maxLen {
		return text
	}

	// single long line, markup can't survive the cut
	runes := []rune(Visible(text))
	cut := string(runes[:maxLen-1])
	if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx > len(cut)/2 {
		cut = cut[:idx]
	}
	return html.EscapeString(strings.TrimSpace(cut)) + "…"
}
