package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"news_risk_backend/internal/api"
)

// maxErrorBody caps how much of a non-200 body is kept for display.
const maxErrorBody = 64 * 1024

// StatusError is returned when the analysis service answers with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analysis service returned %d: %s", e.Code, e.Body)
}

// Client calls the analysis service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for baseURL using the given HTTP client.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Analyze posts articleText to /analyze and decodes the assessment.
func (c *Client) Analyze(ctx context.Context, articleText string) (*api.AnalysisResponse, error) {
	payload, err := json.Marshal(api.AnalyzeJSONRequestBody{ArticleText: &articleText})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &StatusError{Code: res.StatusCode, Body: string(body)}
	}

	var out api.AnalysisResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return &out, nil
}
