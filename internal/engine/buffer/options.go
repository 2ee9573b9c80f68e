package buffer

import (
	"strings"

	"github.com/dshills/vedit/internal/engine/text"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.metrics = text.New(width)
		}
	}
}

// WithMetrics sets the buffer's display metrics.
func WithMetrics(m text.Metrics) Option {
	return func(b *Buffer) {
		b.metrics = m
	}
}

// NormalizeLineEndings converts CRLF and lone CR line endings to LF.
// Hosts call this on file content before constructing a buffer.
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
