package rewrite

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicModel is used when a model entry names none.
const DefaultAnthropicModel = "claude-sonnet-4-5"

// Anthropic talks to the Anthropic Messages API.
type Anthropic struct {
	client anthropic.Client
	model  string
	opts   clientOptions
}

// NewAnthropic creates a client. An empty baseURL uses the public API.
func NewAnthropic(baseURL, apiKey, model string, opts ...ClientOption) *Anthropic {
	o := newClientOptions(opts)
	if model == "" {
		model = DefaultAnthropicModel
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(o.http),
		option.WithMaxRetries(o.maxRetries),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	return &Anthropic{
		client: anthropic.NewClient(reqOpts...),
		model:  model,
		opts:   o,
	}
}

// Complete sends user as a single turn under the system prompt and joins
// the text blocks of the answer.
func (c *Anthropic) Complete(ctx context.Context, system, user string) (string, error) {
	log := c.opts.log.WithField("model", c.model)
	log.Debug("messages request: %d bytes", len(system)+len(user))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: DefaultMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPI, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text content", ErrBadResponse)
	}

	log.Info("response: %d bytes, stop %s", sb.Len(), msg.StopReason)
	return sb.String(), nil
}
