package classify

import (
	"errors"

	"TradePulse/internal/domain/models"
	domsvc "TradePulse/internal/domain/service"
	"TradePulse/pkg/config"
)

// ErrEmptySeries is returned when there is nothing to classify.
var ErrEmptySeries = errors.New("empty price series")

// Classifier applies a threshold rule on the ratio of the latest close to
// the series mean. Pure function of the series; no side effects.
type Classifier struct {
	buyThreshold  float64
	sellThreshold float64
}

func NewClassifier(cfg *config.Config) *Classifier {
	return &Classifier{
		buyThreshold:  cfg.Engine.BuyThreshold,
		sellThreshold: cfg.Engine.SellThreshold,
	}
}

func (c *Classifier) Classify(series models.PriceSeries) (models.Signal, error) {
	if len(series) == 0 {
		return models.Signal{}, ErrEmptySeries
	}

	avg := series.Mean()
	// A non-positive mean cannot happen with the floor-clamped generator,
	// but a substituted source could produce one; avoid the ratio entirely.
	if avg <= 0 {
		return holdSignal(), nil
	}

	current := series.Last()
	switch {
	case current > avg*c.buyThreshold:
		return models.Signal{
			Action:     models.ActionBuy,
			Confidence: 75,
			Reasons:    []string{"Price above average", "Bullish momentum"},
		}, nil
	case current < avg*c.sellThreshold:
		return models.Signal{
			Action:     models.ActionSell,
			Confidence: 65,
			Reasons:    []string{"Price below average", "Bearish pressure"},
		}, nil
	default:
		return holdSignal(), nil
	}
}

func holdSignal() models.Signal {
	return models.Signal{
		Action:     models.ActionHold,
		Confidence: 50,
		Reasons:    []string{"Trading in range", "Neutral momentum"},
	}
}

var _ domsvc.SignalClassifier = (*Classifier)(nil)
