package service

import (
	"context"

	"TradePulse/internal/domain/models"
)

// SeriesSource yields a close-price history for a symbol. The synthetic
// generator is the default implementation; a real market-data source can be
// swapped in without touching the classifier.
type SeriesSource interface {
	Series(ctx context.Context, symbol string) (models.PriceSeries, error)
}

// SignalClassifier derives a trading signal from a price series.
type SignalClassifier interface {
	Classify(series models.PriceSeries) (models.Signal, error)
}

// Explainer produces narrative commentary for a classified signal. It never
// fails: provider errors are absorbed and a fallback text is returned so the
// orchestrator always receives a usable explanation.
type Explainer interface {
	Explain(ctx context.Context, symbol, assetType string, price float64, sig models.Signal) string
}
