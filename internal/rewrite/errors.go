package rewrite

import "errors"

// Errors returned by rewrite operations.
var (
	// ErrBusy indicates a request is already outstanding.
	ErrBusy = errors.New("rewrite already in progress")

	// ErrNoSystemSection indicates a prompt file without a [system] section.
	ErrNoSystemSection = errors.New("no [system] section found in prompt file")

	// ErrEmptyInstruction indicates a prompt with nothing to ask.
	ErrEmptyInstruction = errors.New("prompt command requires text or filename")

	// ErrAPI indicates the endpoint answered with a non-success status.
	ErrAPI = errors.New("api error")

	// ErrBadResponse indicates the endpoint's answer could not be read.
	ErrBadResponse = errors.New("malformed response")

	// ErrUnknownProvider indicates a model with an unsupported provider.
	ErrUnknownProvider = errors.New("unknown provider")
)
