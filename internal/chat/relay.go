// Package chat forwards user questions to the external assistant endpoint
// and returns its replies. The endpoint is an AWS Lambda front for a hosted
// model; this package only speaks its small JSON contract.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned when no upstream endpoint is configured.
	ErrNotConfigured = errors.New("chat: relay not configured")
	// ErrBadUpstream is returned when the upstream answers with a failure
	// status.
	ErrBadUpstream = errors.New("chat: bad upstream response")
	// ErrUnparseable is returned when the upstream body cannot be read as
	// the expected JSON.
	ErrUnparseable = errors.New("chat: unparseable upstream response")
)

// FallbackReply is returned when the upstream answered successfully but
// produced no usable text.
const FallbackReply = "답변을 가져오지 못했습니다."

// maxReplyBytes bounds how much of an upstream response is read.
const maxReplyBytes = 1 << 20

type upstreamRequest struct {
	Prompt string `json:"prompt"`
}

type upstreamResponse struct {
	Result string `json:"result"`
	Reply  string `json:"reply"`
}

// Relay proxies chat messages to the configured upstream endpoint.
type Relay struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewRelay builds a relay for the given endpoint. An empty endpoint yields a
// relay whose Ask always reports ErrNotConfigured, so callers need no
// configuration branch of their own.
func NewRelay(endpoint string, timeout time.Duration, logger *slog.Logger) *Relay {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Configured reports whether an upstream endpoint is set.
func (r *Relay) Configured() bool {
	return r != nil && r.endpoint != ""
}

// Ask forwards one message upstream and returns the reply text. The upstream
// responds with either a "result" or a "reply" field; whichever is present
// wins, and an empty answer falls back to FallbackReply.
func (r *Relay) Ask(ctx context.Context, message string) (string, error) {
	if !r.Configured() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(upstreamRequest{Prompt: message})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := r.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("call chat upstream: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	// An empty body counts as an empty answer, not a protocol violation.
	var parsed upstreamResponse
	if body := bytes.TrimSpace(raw); len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			r.logger.Error("chat upstream sent unparseable body", "status", response.StatusCode)
			return "", fmt.Errorf("%w: status %d", ErrUnparseable, response.StatusCode)
		}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		r.logger.Error("chat upstream call failed", "status", response.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrBadUpstream, response.StatusCode)
	}

	reply := parsed.Result
	if reply == "" {
		reply = parsed.Reply
	}
	if reply == "" {
		reply = FallbackReply
	}
	return reply, nil
}
