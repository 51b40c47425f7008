package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rtavil/salespipe/pkg/domain"
)

// Client implements ports.TextGenerator against a JSON completion endpoint.
// HTTP 429/500/503/504 responses are classified as transient so the caller's
// retry policy applies; other failures are permanent. No per-call timeout is
// enforced beyond the configured http.Client; a hung endpoint blocks the
// calling workflow.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	httpc    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a generation client for the given endpoint.
func New(endpoint, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		httpc:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Model           string `json:"model"`
	Prompt          string `json:"prompt"`
	MaxOutputTokens int    `json:"max_output_tokens"`
}

type generateResponse struct {
	Text string `json:"text"`
}

var transientStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Polish sends the prompt to the endpoint and returns the generated text.
func (c *Client) Polish(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:           c.model,
		Prompt:          prompt,
		MaxOutputTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Network-level failures are worth retrying.
		return "", domain.Transient("polish", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("generation endpoint returned %d", resp.StatusCode)
		if transientStatus[resp.StatusCode] {
			return "", domain.Transient("polish", err)
		}
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.Transient("polish", err)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Text, nil
}
