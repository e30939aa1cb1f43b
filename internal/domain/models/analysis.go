package models

// Action is a discrete trading recommendation.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Signal pairs a recommendation with a confidence score and the
// human-readable reasons that produced it. Immutable once created.
type Signal struct {
	Action     Action
	Confidence int // percent, 0..100
	Reasons    []string
}

// PriceSeries is an ordered close-price history, oldest first.
type PriceSeries []float64

// Last returns the most recent close, or 0 for an empty series.
func (s PriceSeries) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Mean returns the arithmetic mean of the series, or 0 for an empty series.
func (s PriceSeries) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range s {
		sum += p
	}
	return sum / float64(len(s))
}

// TimestampLayout is the wire format of Analysis.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Analysis is the assembled per-request result record. Constructed once by
// the orchestrator, serialized, and discarded; nothing about it is shared
// across requests.
type Analysis struct {
	Success      bool     `json:"success"`
	Symbol       string   `json:"symbol"`
	AssetType    string   `json:"asset_type"`
	CurrentPrice float64  `json:"current_price"`
	Signal       Action   `json:"signal"`
	Confidence   int      `json:"confidence"`
	Reasons      []string `json:"reasons"`
	AIAnalysis   string   `json:"ai_analysis"`
	Timestamp    string   `json:"timestamp"`
}
