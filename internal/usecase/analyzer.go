package usecase

import (
	"context"
	"fmt"
	"time"

	"TradePulse/internal/domain/models"
	domsvc "TradePulse/internal/domain/service"
)

// SignalAnalyzer composes source, classifier and explainer into one analysis.
// It holds no per-request state: every invocation is an independent
// request-to-response transformation.
type SignalAnalyzer struct {
	source     domsvc.SeriesSource
	classifier domsvc.SignalClassifier
	explainer  domsvc.Explainer
	now        func() time.Time
}

func NewSignalAnalyzer(source domsvc.SeriesSource, classifier domsvc.SignalClassifier, explainer domsvc.Explainer) *SignalAnalyzer {
	return &SignalAnalyzer{
		source:     source,
		classifier: classifier,
		explainer:  explainer,
		now:        time.Now,
	}
}

// Analyze runs the full pipeline for one symbol. Component failures come
// back as errors; the explanation step has already absorbed its own and
// always contributes a usable string. The timeframe is accepted for
// interface stability but the synthetic source has a single resolution.
func (a *SignalAnalyzer) Analyze(ctx context.Context, symbol, assetType, timeframe string) (models.Analysis, error) {
	series, err := a.source.Series(ctx, symbol)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("load series for %s: %w", symbol, err)
	}

	sig, err := a.classifier.Classify(series)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("classify %s: %w", symbol, err)
	}

	price := series.Last()
	explanation := a.explainer.Explain(ctx, symbol, assetType, price, sig)

	return models.Analysis{
		Success:      true,
		Symbol:       symbol,
		AssetType:    assetType,
		CurrentPrice: price,
		Signal:       sig.Action,
		Confidence:   sig.Confidence,
		Reasons:      sig.Reasons,
		AIAnalysis:   explanation,
		Timestamp:    a.now().Format(models.TimestampLayout),
	}, nil
}
