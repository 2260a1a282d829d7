package types

// SearchResult is a single record returned by a search provider.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url,omitempty"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// Recommendation actions. The string values are part of the output format
// consumed by callers and must not change.
const (
	ActionBuy       = "BUY"
	ActionSellAvoid = "SELL/AVOID"
	ActionHold      = "HOLD/RESEARCH MORE"
)

// Confidence levels attached to a recommendation.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
)

// Recommendation is the combined verdict from the bull and bear cases.
type Recommendation struct {
	Symbol     string `json:"symbol"`
	Action     string `json:"action"`
	Confidence string `json:"confidence"`
	BullScore  int    `json:"bull_score"`
	BearScore  int    `json:"bear_score"`
}

// Analysis is a full research pass over one symbol.
type Analysis struct {
	Symbol         string         `json:"symbol"`
	BullCase       string         `json:"bull_case"`
	BearCase       string         `json:"bear_case"`
	GrowthOutlook  string         `json:"growth_outlook"`
	RiskOutlook    string         `json:"risk_outlook"`
	Sentiment      string         `json:"sentiment"`
	Recommendation Recommendation `json:"recommendation"`
	Verdict        string         `json:"verdict"`
	Timestamp      int64          `json:"timestamp"`
}
