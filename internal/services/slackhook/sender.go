package slackhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/slack-admin-hooks/internal/config"
	"github.com/DIMO-Network/slack-admin-hooks/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HookFailureCode is the code returned when the outgoing webhook caused an error
	HookFailureCode = -1

	// Maximum response body size to read
	maxResponseBodySize = 1024
	userAgent           = "slack-admin-hooks/1.0"
)

// ErrMissingHookToken is returned before any request is built when SLACK_OUTGOING_HOOK_TOKEN is not set.
// It is a deployment error, not something a caller can recover from.
var ErrMissingHookToken = errors.New("no outgoing slack webhook token defined")

// Message is the JSON body posted to the incoming webhook.
type Message struct {
	Text    string `json:"text"`
	Channel string `json:"channel,omitempty"`
}

// Callback receives the outcome of an asynchronous send.
type Callback func(body string, err error)

// FailureHook is called for failed asynchronous sends that have no Callback.
type FailureHook func(ctx context.Context, msg Message, err error)

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.client = client
		}
	}
}

// WithFailureHook replaces the default failure hook, which logs the error.
func WithFailureHook(hook FailureHook) Option {
	return func(s *Sender) {
		if hook != nil {
			s.onFailure = hook
		}
	}
}

// Sender posts messages to the platform's incoming webhook, optionally pinned to one channel.
type Sender struct {
	channel   string
	baseURL   string
	hookToken string
	client    *http.Client
	onFailure FailureHook
}

// NewSender creates a Sender bound to channel. An empty channel leaves the message's own channel untouched.
func NewSender(settings *config.Settings, channel string, opts ...Option) *Sender {
	baseURL := settings.SlackHookBaseURL
	if baseURL == "" {
		baseURL = config.DefaultHookBaseURL
	}
	s := &Sender{
		channel:   channel,
		baseURL:   baseURL,
		hookToken: settings.SlackOutgoingHookToken,
		client: &http.Client{
			Timeout: settings.HookTimeout,
		},
		onFailure: logFailure,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Channel returns the channel every message is sent to, or "" when there is no override.
func (s *Sender) Channel() string {
	return s.channel
}

// Send posts msg and returns the response body, which is also returned alongside an error status.
// The bound channel, if any, replaces msg.Channel.
func (s *Sender) Send(ctx context.Context, msg Message) (string, error) {
	if s.hookToken == "" {
		return "", ErrMissingHookToken
	}
	if s.channel != "" {
		msg.Channel = s.channel
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+s.hookToken, bytes.NewReader(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", richerrors.Error{
				Code: HookFailureCode,
				Err:  fmt.Errorf("invalid hook URL: %w", err),
			}
		}
		return "", fmt.Errorf("failed to create slack hook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", richerrors.Error{
			Code: HookFailureCode,
			Err:  fmt.Errorf("failed to POST to slack hook: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if resp.StatusCode >= 400 {
		return string(respBody), richerrors.Error{
			Code: HookFailureCode,
			Err:  fmt.Errorf("slack hook returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return string(respBody), nil
}

// SendAsync sends msg on its own goroutine and returns without waiting for the result.
// Only ctx's logger is carried over: the send runs on a fresh context so it never touches
// request-scoped state after the caller returns. The outcome goes to cb, or to the failure
// hook when cb is nil and the send failed.
// A missing hook token is returned immediately and nothing is started.
func (s *Sender) SendAsync(ctx context.Context, msg Message, cb Callback) error {
	if s.hookToken == "" {
		metrics.Notifications.WithLabelValues(metrics.OutcomeNotStarted).Inc()
		return ErrMissingHookToken
	}

	logger := zerolog.Ctx(ctx).With().Str("notificationId", uuid.New().String()).Logger()
	ctx = logger.WithContext(context.Background())

	go func() {
		body, err := s.Send(ctx, msg)
		if err != nil {
			metrics.Notifications.WithLabelValues(metrics.OutcomeFailed).Inc()
		} else {
			metrics.Notifications.WithLabelValues(metrics.OutcomeDelivered).Inc()
			zerolog.Ctx(ctx).Debug().Msg("slack notification delivered")
		}

		if cb != nil {
			cb(body, err)
			return
		}
		if err != nil {
			s.onFailure(ctx, msg, err)
		}
	}()
	return nil
}

func logFailure(ctx context.Context, _ Message, err error) {
	zerolog.Ctx(ctx).Error().Err(err).Msg("failed to deliver slack notification")
}
