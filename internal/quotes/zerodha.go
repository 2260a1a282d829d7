package quotes

import (
	"context"
	"fmt"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/logger"
)

// Zerodha fetches last traded prices through the Kite Connect API
type Zerodha struct {
	kc       *kiteconnect.Client
	exchange string
}

var _ interfaces.QuoteProvider = (*Zerodha)(nil)

// Params holds Zerodha quote provider credentials
type Params struct {
	APIKey      string
	AccessToken string
	Exchange    string
}

// NewZerodha creates a Kite Connect backed quote provider
func NewZerodha(p Params) *Zerodha {
	kc := kiteconnect.New(p.APIKey)
	kc.SetAccessToken(p.AccessToken)

	return &Zerodha{
		kc:       kc,
		exchange: p.Exchange,
	}
}

// LTP returns the last traded price for a symbol
func (z *Zerodha) LTP(ctx context.Context, symbol string) (float64, error) {
	instrument := fmt.Sprintf("%s:%s", z.exchange, symbol)

	ltp, err := z.kc.GetLTP(instrument)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch LTP for %s: %w", instrument, err)
	}

	quote, ok := ltp[instrument]
	if !ok {
		return 0, fmt.Errorf("no quote returned for %s", instrument)
	}

	logger.Debug(ctx, "Fetched last traded price", "instrument", instrument, "price", quote.LastPrice)
	return quote.LastPrice, nil
}
