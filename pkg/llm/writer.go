package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/onepick/pkg/config"
	"github.com/umputun/onepick/pkg/domain"
)

// maxAttempts is the number of LLM calls before falling back to templates
const maxAttempts = 3

var errBadResponse = errors.New("bad llm response")

// Draft holds the two texts of an A/B post
type Draft struct {
	A       string
	B       string
	UsedLLM bool
}

// Writer produces A/B post texts for catalog items, with the LLM when enabled and deterministic templates otherwise
type Writer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
	limits    Limits
}

// NewWriter creates a new post writer
func NewWriter(cfg config.LLMConfig) *Writer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Writer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
		limits:    Limits{Hook: cfg.HookLength, Body: cfg.MaxLength, Lines: 6},
	}
}

// default system prompt for channel posts
const defaultSystemPrompt = `Ти — копірайтер українського Telegram-каналу про кіно та серіали.
Пиши коротко, емоційно, людською мовою, українською.

Правила:
- перший рядок (хук) — до {hook} символів
- весь текст — до {body} символів, максимум 6 рядків
- не використовуй слова: топ, IMDb, рейтинг, найкращий, must-watch, шедевр
- не розкривай сюжет, твісти і кінцівку
- дозволене форматування: <b>, <i>, <a href="...">

Напиши ДВА різні варіанти поста про один і той самий тайтл:
- "a": починається з емоційного хука про настрій або ситуацію глядача
- "b": починається з цікавого факту або інтриги сюжету без спойлерів

Відповідай лише JSON-об'єктом: {"a": "текст варіанта A", "b": "текст варіанта B"}`

// Write returns two post variants for the item. LLM failures are logged and end with the template fallback,
// only context cancellation is returned as an error.
func (w *Writer) Write(ctx context.Context, item domain.Item) (Draft, error) {
	if !w.config.Enabled {
		return templateDraft(item, w.limits), nil
	}

	draft, err := w.generate(ctx, item)
	if err == nil {
		return draft, nil
	}
	if ctx.Err() != nil {
		return Draft{}, fmt.Errorf("write post for %s: %w", item.ID, ctx.Err())
	}
	lgr.Printf("[WARN] llm failed for %s, using templates: %v", item.ID, err)
	return templateDraft(item, w.limits), nil
}

// generate asks the LLM for both variants, retrying on unparsable or off-style answers
func (w *Writer) generate(ctx context.Context, item domain.Item) (Draft, error) {
	system := strings.NewReplacer("{hook}", strconv.Itoa(w.limits.Hook), "{body}", strconv.Itoa(w.limits.Body)).Replace(w.systemMsg)
	prompt := w.buildPrompt(item)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 && lastErr != nil && !errors.Is(lastErr, errBadResponse) {
			system += fmt.Sprintf("\n\nПопередня спроба не пройшла перевірку стилю (%v). Будь лаконічнішим.", lastErr)
		}

		chatReq := openai.ChatCompletionRequest{
			Model:       w.config.Model,
			Temperature: float32(w.config.Temperature),
			MaxTokens:   w.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		}

		reqCtx, cancel := w.withTimeout(ctx)
		resp, err := w.client.CreateChatCompletion(reqCtx, chatReq)
		cancel()
		if err != nil {
			return Draft{}, fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return Draft{}, fmt.Errorf("no response from llm")
		}

		draft, err := w.parseResponse(resp.Choices[0].Message.Content)
		if err != nil {
			lastErr = err
			lgr.Printf("[DEBUG] llm attempt %d for %s: %v", attempt+1, item.ID, err)
			continue
		}
		if err := w.check(draft); err != nil {
			lastErr = err
			lgr.Printf("[DEBUG] llm attempt %d for %s: %v", attempt+1, item.ID, err)
			continue
		}
		draft.UsedLLM = true
		return draft, nil
	}
	return Draft{}, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

func (w *Writer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.config.Timeout)
}

// buildPrompt describes the item to the LLM
func (w *Writer) buildPrompt(item domain.Item) string {
	var sb strings.Builder
	sb.WriteString("Напиши два варіанти поста.\n\n")
	sb.WriteString("Назва: " + item.Title + "\n")
	if item.Type == domain.ItemSeries {
		sb.WriteString("Тип: серіал\n")
	} else {
		sb.WriteString("Тип: фільм\n")
	}
	if item.Mood != "" {
		sb.WriteString("Настрій: " + string(item.Mood) + "\n")
	}
	if item.Pace != "" {
		sb.WriteString("Темп: " + string(item.Pace) + "\n")
	}
	if len(item.Tags) > 0 {
		sb.WriteString("Теги: " + strings.Join(item.Tags, ", ") + "\n")
	}
	if overview := item.Meta["overview"]; overview != "" {
		sb.WriteString("Опис: " + overview + "\n")
	}
	return sb.String()
}

// parseResponse extracts both variants from the LLM answer and polishes them
func (w *Writer) parseResponse(content string) (Draft, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return Draft{}, fmt.Errorf("%w: no json object found", errBadResponse)
	}

	var variants struct {
		A string `json:"a"`
		B string `json:"b"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &variants); err != nil {
		return Draft{}, fmt.Errorf("%w: failed to parse json: %v", errBadResponse, err)
	}
	if strings.TrimSpace(variants.A) == "" || strings.TrimSpace(variants.B) == "" {
		return Draft{}, fmt.Errorf("%w: missing variant text", errBadResponse)
	}
	return Draft{A: Polish(variants.A, w.limits), B: Polish(variants.B, w.limits)}, nil
}

// check lints both variants and requires them to differ
func (w *Writer) check(d Draft) error {
	if d.A == d.B {
		return fmt.Errorf("variants are identical")
	}
	if v := Lint(d.A, w.limits); len(v) > 0 {
		return fmt.Errorf("variant a: %s", v[0].Message)
	}
	if v := Lint(d.B, w.limits); len(v) > 0 {
		return fmt.Errorf("variant b: %s", v[0].Message)
	}
	return nil
}
