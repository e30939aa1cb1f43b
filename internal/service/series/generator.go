package series

import (
	"context"
	"hash/fnv"
	"math/rand"

	"TradePulse/internal/domain/models"
	domsvc "TradePulse/internal/domain/service"
	"TradePulse/pkg/config"
)

// Generator synthesizes a reproducible close-price history per symbol.
// The same symbol always produces the same series, across process restarts:
// the seed comes from an FNV-1a hash of the symbol, not the runtime map hash.
type Generator struct {
	length     int
	startPrice float64
	drift      float64
	volatility float64
	floorPrice float64
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		length:     cfg.Engine.SeriesLength,
		startPrice: cfg.Engine.StartPrice,
		drift:      cfg.Engine.Drift,
		volatility: cfg.Engine.Volatility,
		floorPrice: cfg.Engine.FloorPrice,
	}
}

// Series builds the synthetic history: a fixed first price followed by
// multiplicative steps drawn from N(drift, volatility), floor-clamped so
// every element stays positive. It cannot fail for a defined symbol.
func (g *Generator) Series(_ context.Context, symbol string) (models.PriceSeries, error) {
	rng := rand.New(rand.NewSource(Seed(symbol)))

	prices := make(models.PriceSeries, 0, g.length)
	prices = append(prices, g.startPrice)
	for i := 1; i < g.length; i++ {
		change := rng.NormFloat64()*g.volatility + g.drift
		next := prices[i-1] * (1 + change)
		if next < g.floorPrice {
			next = g.floorPrice
		}
		prices = append(prices, next)
	}
	return prices, nil
}

// Seed derives the generator seed from the symbol, reduced modulo 10000.
func Seed(symbol string) int64 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return int64(h.Sum32() % 10000)
}

var _ domsvc.SeriesSource = (*Generator)(nil)
