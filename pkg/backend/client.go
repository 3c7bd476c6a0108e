package backend

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

	"github.com/hashicorp/go-cleanhttp"

	"github.com/dskvich/synonym-voice-bot/pkg/domain"
	"github.com/dskvich/synonym-voice-bot/pkg/logger"
)

const (
	apiKeyHeader  = "X-RapidAPI-Key"
	apiHostHeader = "X-RapidAPI-Host"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// Config is injected at construction and never changes afterwards.
type Config struct {
	SpeechURL  string
	SpeechHost string
	WordsURL   string
	WordsHost  string
	APIKey     string
	Timeout    time.Duration
}

type client struct {
	cfg Config
	hc  *http.Client
}

func NewClient(cfg Config) *client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = cfg.Timeout

	return &client{
		cfg: cfg,
		hc:  hc,
	}
}

// Call performs exactly one HTTP request. Non-2xx statuses come back as a
// domain.BackendFailure; connection, read and JSON errors come back as error.
func (c *client) Call(ctx context.Context, req domain.BackendRequest) (domain.BackendResult, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", req.Kind, err)
	}

	slog.InfoContext(ctx, "Calling backend", "kind", req.Kind, "backendRequestID", req.ID, "method", httpReq.Method, "url", httpReq.URL.Redacted())
	start := time.Now()

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling %s backend: %w", req.Kind, err)
	}
	defer func(Body io.ReadCloser) {
		if closeErr := Body.Close(); closeErr != nil {
			slog.ErrorContext(ctx, "closing body", logger.Err(closeErr))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response body: %w", req.Kind, err)
	}

	slog.InfoContext(ctx, "Backend responded", "kind", req.Kind, "backendRequestID", req.ID, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return domain.BackendFailure{StatusCode: resp.StatusCode, Body: body}, nil
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("decoding %s response: %w", req.Kind, errInvalidJSON)
	}

	return domain.BackendSuccess{Payload: body}, nil
}

func (c *client) newRequest(ctx context.Context, req domain.BackendRequest) (*http.Request, error) {
	switch req.Kind {
	case domain.BackendSpeech:
		body, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, fmt.Errorf("encoding payload: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SpeechURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		c.setAuthHeaders(httpReq, c.cfg.SpeechHost)
		return httpReq, nil

	case domain.BackendDictionary:
		url := strings.TrimSuffix(c.cfg.WordsURL, "/") + "/" + strings.TrimPrefix(req.Path, "/")

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		c.setAuthHeaders(httpReq, c.cfg.WordsHost)
		return httpReq, nil

	default:
		return nil, fmt.Errorf("unknown backend kind %q", req.Kind)
	}
}

func (c *client) setAuthHeaders(req *http.Request, host string) {
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	req.Header.Set(apiHostHeader, host)
}
