package classify

import (
	"errors"
	"testing"

	"TradePulse/internal/domain/models"
	"TradePulse/pkg/config"
)

func testClassifier() *Classifier {
	cfg := &config.Config{}
	cfg.Engine.BuyThreshold = 1.05
	cfg.Engine.SellThreshold = 0.95
	return NewClassifier(cfg)
}

// seriesWithRatio builds a two-element series whose last element relates to
// the mean by the given ratio.
func seriesWithRatio(ratio float64) models.PriceSeries {
	a := 100.0
	b := ratio * a / (2 - ratio)
	return models.PriceSeries{a, b}
}

func TestClassifyBuyBoundary(t *testing.T) {
	sig, err := testClassifier().Classify(seriesWithRatio(1.051))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Action != models.ActionBuy || sig.Confidence != 75 {
		t.Fatalf("expected BUY/75, got %s/%d", sig.Action, sig.Confidence)
	}
	if len(sig.Reasons) < 2 {
		t.Fatalf("expected at least 2 reasons, got %v", sig.Reasons)
	}
}

func TestClassifySellBoundary(t *testing.T) {
	sig, err := testClassifier().Classify(seriesWithRatio(0.949))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Action != models.ActionSell || sig.Confidence != 65 {
		t.Fatalf("expected SELL/65, got %s/%d", sig.Action, sig.Confidence)
	}
}

func TestClassifyHold(t *testing.T) {
	sig, err := testClassifier().Classify(seriesWithRatio(1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Action != models.ActionHold || sig.Confidence != 50 {
		t.Fatalf("expected HOLD/50, got %s/%d", sig.Action, sig.Confidence)
	}
}

func TestClassifyPure(t *testing.T) {
	c := testClassifier()
	s := seriesWithRatio(1.051)

	first, err := c.Classify(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Classify(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Action != second.Action || first.Confidence != second.Confidence {
		t.Fatalf("classification not pure: %v vs %v", first, second)
	}
}

func TestClassifyNonPositiveMean(t *testing.T) {
	sig, err := testClassifier().Classify(models.PriceSeries{-1, -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Action != models.ActionHold || sig.Confidence != 50 {
		t.Fatalf("expected defensive HOLD/50, got %s/%d", sig.Action, sig.Confidence)
	}
}

func TestClassifyEmptySeries(t *testing.T) {
	_, err := testClassifier().Classify(nil)
	if !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}
