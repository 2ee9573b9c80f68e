package rewrite

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultOpenAIModel is used when a model entry names none.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAI talks to an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client openai.Client
	model  string
	opts   clientOptions
}

// NewOpenAI creates a client. An empty baseURL uses the public API.
func NewOpenAI(baseURL, apiKey, model string, opts ...ClientOption) *OpenAI {
	o := newClientOptions(opts)
	if model == "" {
		model = DefaultOpenAIModel
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(o.http),
		option.WithMaxRetries(o.maxRetries),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		client: openai.NewClient(reqOpts...),
		model:  model,
		opts:   o,
	}
}

// Complete sends system and user as separate chat messages.
func (c *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	log := c.opts.log.WithField("model", c.model)
	log.Debug("chat completion: %d bytes", len(system)+len(user))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPI, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrBadResponse)
	}

	text := resp.Choices[0].Message.Content
	log.Info("response: %d bytes, finish %s", len(text), resp.Choices[0].FinishReason)
	return text, nil
}
