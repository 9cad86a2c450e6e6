package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/domain"
)

func TestLint(t *testing.T) {
	limits := Limits{Hook: 20, Body: 100, Lines: 3}
	tests := []struct {
		name  string
		text  string
		rules []string
	}{
		{name: "clean", text: "Короткий хук\n\n<b>Назва</b> і трохи тексту."},
		{name: "empty", text: "  \n ", rules: []string{"empty"}},
		{name: "long hook", text: "Цей перший рядок явно задовгий для хука", rules: []string{"hook_length"}},
		{name: "markup is not counted", text: "<b><i>Короткий хук</i></b>"},
		{name: "long body", text: "Хук\n" + strings.Repeat("слово ", 20), rules: []string{"body_length"}},
		{name: "too many lines", text: "раз\nдва\nтри\nчотири", rules: []string{"max_lines"}},
		{name: "banned word", text: "Справжній шедевр", rules: []string{"banned_word"}},
		{name: "banned word any case", text: "Дивись IMDb", rules: []string{"banned_word"}},
		{name: "banned word inside other word is fine", text: "Стоп, топовий вечір"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rules []string
			for _, v := range Lint(tt.text, limits) {
				rules = append(rules, v.Rule)
			}
			assert.Equal(t, tt.rules, rules)
		})
	}
}

func TestPolish(t *testing.T) {
	limits := Limits{Hook: 90, Body: 600, Lines: 6}

	t.Run("markdown to html", func(t *testing.T) {
		res := Polish("**Жирно** і *курсив*, [тут](https://example.com/x)", limits)
		assert.Equal(t, `<b>Жирно</b> і <i>курсив</i>, <a href="https://example.com/x">тут</a>`, res)
	})

	t.Run("double blank lines collapsed", func(t *testing.T) {
		assert.Equal(t, "раз\n\nдва", Polish("раз\n\n\n\nдва  \r\n", limits))
	})

	t.Run("unsafe markup removed", func(t *testing.T) {
		res := Polish(`<div onclick="x()">текст</div> <a href="javascript:alert(1)">лінк</a> <img src="x.png">`, limits)
		assert.Equal(t, "текст лінк", res)
	})

	t.Run("trailing lines dropped to fit", func(t *testing.T) {
		res := Polish("перший рядок\nдругий рядок\nтретій рядок", Limits{Body: 26})
		assert.Equal(t, "перший рядок\nдругий рядок", res)
	})

	t.Run("single long line cut on word boundary", func(t *testing.T) {
		res := Polish("<b>"+strings.Repeat("слово ", 30)+"</b>", Limits{Body: 40})
		assert.LessOrEqual(t, utf8.RuneCountInString(Visible(res)), 40)
		assert.True(t, strings.HasSuffix(res, "слово…"), res)
		assert.NotContains(t, res, "<b>")
	})
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, `<a href="tg://resolve?domain=onepick">бот</a>`, Sanitize(`<a href="tg://resolve?domain=onepick" target="_blank">бот</a>`))
	assert.Equal(t, "<code>x</code>", Sanitize("<code>x</code><script>y</script>"))
	assert.Equal(t, "a &amp; b", Sanitize("a & b"))
}

func TestTemplateDraft(t *testing.T) {
	limits := Limits{Hook: 90, Body: 600, Lines: 6}

	t.Run("with overview", func(t *testing.T) {
		d := templateDraft(testItem(), limits)
		assert.False(t, d.UsedLLM)
		assert.Equal(t, "Треба ненадовго втекти від реальності?\n\n<b>Дюна</b> — динамічний фільм.\n"+
			"Для тих, хто хоче опинитися в іншому світі.", d.A)
		assert.True(t, strings.HasPrefix(d.B, "Пол Атрід вирушає на небезпечну планету.\n\nЦе <b>Дюна</b>"), d.B)
		assert.Empty(t, Lint(d.A, limits))
		assert.Empty(t, Lint(d.B, limits))
	})

	t.Run("series without overview and mood", func(t *testing.T) {
		item := domain.Item{ID: "tmdb:series:1", Type: domain.ItemSeries, Title: "Tom & Jerry", Tags: []string{"comedy", "family"}}
		d := templateDraft(item, limits)
		assert.Contains(t, d.A, "Не знаєш, що подивитись сьогодні?")
		assert.Contains(t, d.A, "<b>Tom &amp; Jerry</b> — серіал.")
		assert.True(t, strings.HasPrefix(d.B, "Коли хочеться: comedy, family."), d.B)
		require.NotEqual(t, d.A, d.B)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, templateDraft(testItem(), limits), templateDraft(testItem(), limits))
	})
}
