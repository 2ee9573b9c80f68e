package rewrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// AnythingLLM talks to an AnythingLLM workspace chat endpoint.
type AnythingLLM struct {
	endpoint string
	apiKey   string
	opts     clientOptions
}

// NewAnythingLLM creates a client posting to endpoint with apiKey as the
// bearer token.
func NewAnythingLLM(endpoint, apiKey string, opts ...ClientOption) *AnythingLLM {
	return &AnythingLLM{
		endpoint: endpoint,
		apiKey:   apiKey,
		opts:     newClientOptions(opts),
	}
}

// Complete sends system and user as one chat message.
func (c *AnythingLLM) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := sjson.SetBytes(nil, "message", Flatten(system, user))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	body, err = sjson.SetBytes(body, "mode", "chat")
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.opts.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.opts.log.Warn("request failed: %s", resp.Status)
		return "", fmt.Errorf("%w: %s", ErrAPI, resp.Status)
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: invalid json", ErrBadResponse)
	}
	text := gjson.GetBytes(data, "textResponse")
	if !text.Exists() {
		return "", fmt.Errorf("%w: missing textResponse", ErrBadResponse)
	}

	c.opts.log.WithField("endpoint", c.endpoint).Info("request json:\n%s\nresponse json:\n%s", body, data)
	return text.String(), nil
}
