package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"TradePulse/internal/domain/models"
	"TradePulse/internal/service/classify"
	"TradePulse/internal/service/series"
	"TradePulse/pkg/config"
)

func engineConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Engine.SeriesLength = 100
	cfg.Engine.StartPrice = 100.0
	cfg.Engine.Drift = 0.001
	cfg.Engine.Volatility = 0.02
	cfg.Engine.FloorPrice = 1.0
	cfg.Engine.BuyThreshold = 1.05
	cfg.Engine.SellThreshold = 0.95
	return cfg
}

type stubExplainer struct{ out string }

func (s stubExplainer) Explain(_ context.Context, _, _ string, _ float64, _ models.Signal) string {
	return s.out
}

type failingSource struct{ err error }

func (f failingSource) Series(_ context.Context, _ string) (models.PriceSeries, error) {
	return nil, f.err
}

func TestAnalyzeEndToEnd(t *testing.T) {
	cfg := engineConfig()
	a := NewSignalAnalyzer(series.NewGenerator(cfg), classify.NewClassifier(cfg), stubExplainer{out: "analisis"})

	res, err := a.Analyze(context.Background(), "BTC", "crypto", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success")
	}
	if res.Symbol != "BTC" || res.AssetType != "crypto" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	switch res.Signal {
	case models.ActionBuy, models.ActionSell, models.ActionHold:
	default:
		t.Fatalf("unexpected signal %q", res.Signal)
	}
	if res.Confidence != 50 && res.Confidence != 65 && res.Confidence != 75 {
		t.Fatalf("unexpected confidence %d", res.Confidence)
	}
	if len(res.Reasons) < 2 {
		t.Fatalf("expected at least 2 reasons, got %v", res.Reasons)
	}
	if res.CurrentPrice <= 0 {
		t.Fatalf("expected positive price, got %v", res.CurrentPrice)
	}
	if res.AIAnalysis != "analisis" {
		t.Fatalf("unexpected explanation %q", res.AIAnalysis)
	}
	if _, perr := time.Parse(models.TimestampLayout, res.Timestamp); perr != nil {
		t.Fatalf("bad timestamp %q: %v", res.Timestamp, perr)
	}
}

func TestAnalyzeDeterministicPerSymbol(t *testing.T) {
	cfg := engineConfig()
	a := NewSignalAnalyzer(series.NewGenerator(cfg), classify.NewClassifier(cfg), stubExplainer{out: "x"})

	first, err := a.Analyze(context.Background(), "ETH", "crypto", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Analyze(context.Background(), "ETH", "crypto", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.CurrentPrice != second.CurrentPrice || first.Signal != second.Signal || first.Confidence != second.Confidence {
		t.Fatalf("analysis not deterministic: %+v vs %+v", first, second)
	}
}

func TestAnalyzeSourceFailure(t *testing.T) {
	cfg := engineConfig()
	a := NewSignalAnalyzer(failingSource{err: errors.New("feed down")}, classify.NewClassifier(cfg), stubExplainer{out: "x"})

	_, err := a.Analyze(context.Background(), "BTC", "crypto", "1d")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "feed down") {
		t.Fatalf("error should preserve cause, got %v", err)
	}
}
