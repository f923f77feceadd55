// Package ai implements the generative text boundary over a plain HTTP JSON
// API. Requests carry a bearer token and a per-request timeout from config;
// there is no retry or backoff.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ascend/config"
	"ascend/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTimeout = 30 * time.Second

type textClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the text client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTextService creates a TextService backed by the configured HTTP API.
func NewTextService(params Params) (service.TextService, error) {
	cfg := params.Config.AI
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("ai base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	params.Logger.Info("Text service client initialized",
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("timeout", timeout),
	)

	return &textClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}, nil
}

type summarizeRequest struct {
	HabitData   string `json:"habitData"`
	Preferences string `json:"preferences,omitempty"`
}

type quoteRequest struct {
	Category string `json:"category"`
}

type quoteResponse struct {
	Quote string `json:"quote"`
}

// SummarizeHabits asks the text API for a narrative summary of the raw habit
// report plus actionable suggestions.
func (c *textClient) SummarizeHabits(ctx context.Context, rawHabitData string, preferences string) (*service.HabitSummary, error) {
	var result service.HabitSummary
	if err := c.post(ctx, "/v1/habits/summarize", summarizeRequest{
		HabitData:   rawHabitData,
		Preferences: preferences,
	}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GenerateQuote asks the text API for a motivational quote in the given
// category. Category validity is checked by the caller.
func (c *textClient) GenerateQuote(ctx context.Context, category string) (string, error) {
	var result quoteResponse
	if err := c.post(ctx, "/v1/quotes", quoteRequest{Category: category}, &result); err != nil {
		return "", err
	}

	return result.Quote, nil
}

func (c *textClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a short prefix of the body for diagnostics
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Text API returned non-success status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return errors.Errorf("text api returned status %d: %s", resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Module provides the text service FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTextService),
)
