// Package telegram implements the outbound Bot API client used for report
// delivery.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	defaultAPIURL  = "https://api.telegram.org"
	defaultTimeout = 10 * time.Second

	// Bot API global sendMessage ceiling is ~30 messages per second;
	// staying under it avoids 429 churn during the weekly batch.
	messagesPerSecond = 25

	maxAttempts = 3
	retryDelay  = 500 * time.Millisecond
)

// Sender delivers text messages to chats.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Client is a minimal Bot API client: it only implements sendMessage, which
// is all report delivery needs.
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryDelay time.Duration
}

// NewClient creates a Bot API client. apiURL overrides the public endpoint,
// mainly for tests; pass "" for the default.
func NewClient(token, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		token:      token,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(messagesPerSecond), messagesPerSecond),
		retryDelay: retryDelay,
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// SendMessage posts one text message to the chat. The call waits on the
// shared rate limiter first, so bursts from the weekly batch are smoothed
// out before they reach the API. Transport failures and 429/5xx rejections
// are retried a bounded number of times; anything else fails immediately.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.token == "" {
		return errors.New("telegram bot token is not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter wait")
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return errors.Wrap(err, "marshal sendMessage request")
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retriable, err := c.sendMessageOnce(ctx, payload)
		if err == nil {
			return nil
		}
		if !retriable || ctx.Err() != nil {
			return err
		}
		lastErr = err
	}
	return errors.Wrapf(lastErr, "sendMessage failed after %d attempts", maxAttempts)
}

func (c *Client) sendMessageOnce(ctx context.Context, payload []byte) (retriable bool, err error) {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, errors.Wrap(err, "build sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, errors.Wrap(err, "post sendMessage")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return true, errors.Wrap(err, "read sendMessage response")
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return false, errors.Wrapf(err, "decode sendMessage response, status %d", resp.StatusCode)
	}
	if !apiResp.OK {
		retriable := apiResp.ErrorCode == http.StatusTooManyRequests || apiResp.ErrorCode >= http.StatusInternalServerError
		return retriable, errors.Errorf("sendMessage rejected: code %d, %s", apiResp.ErrorCode, apiResp.Description)
	}
	return false, nil
}
