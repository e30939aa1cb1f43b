package series

import (
	"context"
	"testing"

	"TradePulse/pkg/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Engine.SeriesLength = 100
	cfg.Engine.StartPrice = 100.0
	cfg.Engine.Drift = 0.001
	cfg.Engine.Volatility = 0.02
	cfg.Engine.FloorPrice = 1.0
	return cfg
}

func TestSeriesDeterministic(t *testing.T) {
	g := NewGenerator(testConfig())

	a, err := g.Series(context.Background(), "BTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := g.Series(context.Background(), "BTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSeriesShape(t *testing.T) {
	g := NewGenerator(testConfig())

	s, err := g.Series(context.Background(), "ETH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 100 {
		t.Fatalf("expected 100 elements, got %d", len(s))
	}
	if s[0] != 100.0 {
		t.Fatalf("expected first element 100.0, got %v", s[0])
	}
	for i, p := range s {
		if p < 1.0 {
			t.Fatalf("element %d below floor: %v", i, p)
		}
	}
}

func TestSeedStable(t *testing.T) {
	if Seed("BTC") != Seed("BTC") {
		t.Fatalf("seed not stable for equal input")
	}
	s := Seed("DOGE")
	if s < 0 || s >= 10000 {
		t.Fatalf("seed out of range: %d", s)
	}
}
