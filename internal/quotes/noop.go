package quotes

import (
	"context"
	"errors"

	"stock-research-bot/internal/interfaces"
)

// ErrNoQuote indicates no quote source is configured
var ErrNoQuote = errors.New("no quote source configured")

// Noop is the quote provider used when live quotes are disabled
type Noop struct{}

var _ interfaces.QuoteProvider = (*Noop)(nil)

// NewNoop creates a quote provider that always reports no quote
func NewNoop() *Noop {
	return &Noop{}
}

// LTP always returns ErrNoQuote
func (n *Noop) LTP(ctx context.Context, symbol string) (float64, error) {
	return 0, ErrNoQuote
}
