// Package publisher delivers channel posts to Telegram
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// errPermanent stops retries for failures a resend can't fix
var errPermanent = errors.New("permanent send failure")

// APIError is an unsuccessful Bot API answer
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// Is makes client errors (except rate limiting) match errPermanent
func (e *APIError) Is(target error) bool {
	return target == errPermanent && e.Code >= 400 && e.Code < 500 && e.Code != http.StatusTooManyRequests
}

// Params defines Telegram publisher settings
type Params struct {
	Endpoint   string // Bot API base URL
	Token      string
	Channel    string // chat id or @channel
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration // initial backoff delay
}

// Telegram sends HTML formatted messages to a channel
type Telegram struct {
	Params
	client *http.Client
}

type sendRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// NewTelegram makes a publisher with defaults applied to zero params
func NewTelegram(params Params) *Telegram {
	if params.Endpoint == "" {
		params.Endpoint = "https://api.telegram.org"
	}
	params.Endpoint = strings.TrimSuffix(params.Endpoint, "/")
	if params.Timeout <= 0 {
		params.Timeout = 15 * time.Second
	}
	if params.Retries <= 0 {
		params.Retries = 3
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 500 * time.Millisecond
	}
	return &Telegram{Params: params, client: &http.Client{Timeout: params.Timeout}}
}

// Send delivers the text and returns the message id. Server errors and rate limiting are retried with backoff.
func (t *Telegram) Send(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(sendRequest{ChatID: t.Channel, Text: text, ParseMode: "HTML"})
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}

	var msgID int64
	attempt := 0
	retrier := repeater.NewBackoff(t.Retries, t.RetryDelay, repeater.WithMaxDelay(10*time.Second))
	err = retrier.Do(ctx, func() error {
		attempt++
		id, sendErr := t.send(ctx, body)
		if sendErr != nil {
			lgr.Printf("[DEBUG] send to %s, attempt %d: %v", t.Channel, attempt, sendErr)
			return sendErr
		}
		msgID = id
		return nil
	}, errPermanent)
	if err != nil {
		return "", fmt.Errorf("send message to %s: %w", t.Channel, err)
	}
	return strconv.FormatInt(msgID, 10), nil
}

func (t *Telegram) send(ctx context.Context, body []byte) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint+"/bot"+t.Token+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("make request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		// url.Error carries the request URL with the bot token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	var sr sendResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return 0, &APIError{Code: resp.StatusCode, Description: http.StatusText(resp.StatusCode)}
		}
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if !sr.OK || resp.StatusCode != http.StatusOK {
		code := sr.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return 0, &APIError{Code: code, Description: sr.Description}
	}
	return sr.Result.MessageID, nil
}
