package interfaces

import "context"

// QuoteProvider returns the last traded price for a symbol.
type QuoteProvider interface {
	LTP(ctx context.Context, symbol string) (float64, error)
}
