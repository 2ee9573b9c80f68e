package rewrite

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dshills/vedit/internal/config"
	"github.com/dshills/vedit/internal/logging"
)

// Client produces rewritten text from a system and a user message.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// DefaultTimeout bounds a single request.
const DefaultTimeout = 2 * time.Minute

// DefaultMaxTokens caps the length of SDK answers.
const DefaultMaxTokens = 4096

// clientOptions holds settings shared by all clients.
type clientOptions struct {
	http       *http.Client
	log        *logging.Logger
	maxRetries int
}

// ClientOption configures a client.
type ClientOption func(*clientOptions)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) {
		if c != nil {
			o.http = c
		}
	}
}

// WithLogger sets the logger receiving request and response records.
func WithLogger(l *logging.Logger) ClientOption {
	return func(o *clientOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxRetries sets how often the SDK clients retry failed requests.
func WithMaxRetries(n int) ClientOption {
	return func(o *clientOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

func newClientOptions(opts []ClientOption) clientOptions {
	o := clientOptions{
		http:       &http.Client{Timeout: DefaultTimeout},
		log:        logging.Null(),
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewClient builds the client for a configured model.
func NewClient(m config.Model, opts ...ClientOption) (Client, error) {
	switch m.Provider {
	case config.ProviderAnythingLLM, "":
		return NewAnythingLLM(m.Endpoint, m.APIKey(), opts...), nil
	case config.ProviderOpenAI:
		return NewOpenAI(m.Endpoint, m.APIKey(), m.Name, opts...), nil
	case config.ProviderAnthropic:
		return NewAnthropic(m.Endpoint, m.APIKey(), m.Name, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, m.Provider)
}
