package explain

import (
	"context"
	"strings"

	"TradePulse/internal/domain/models"
	domsvc "TradePulse/internal/domain/service"
	"TradePulse/internal/service/metrics"
	"TradePulse/internal/service/ratelimit"
	"TradePulse/pkg/config"
	applogger "TradePulse/pkg/logger"
)

// Explainer turns a classified signal into narrative commentary via the chat
// provider. Every failure mode of the outbound call — timeout, bad status,
// malformed body, missing credential, exhausted call budget — degrades to
// the fixed Fallback text and never reaches the caller as an error.
type Explainer struct {
	client  ChatClient
	limiter *ratelimit.Limiter
	logger  *applogger.Logger

	callsPerSec float64
	burst       float64
}

func NewExplainer(cfg *config.Config, client ChatClient, l *applogger.Logger) *Explainer {
	metrics.Register()
	return &Explainer{
		client:      client,
		limiter:     ratelimit.New(),
		logger:      l,
		callsPerSec: cfg.AI.MaxCallsPerSec,
		burst:       cfg.AI.Burst,
	}
}

func (e *Explainer) Explain(ctx context.Context, symbol, assetType string, price float64, sig models.Signal) string {
	if !e.limiter.Allow("chat", e.burst, e.callsPerSec) {
		metrics.ExplainFallbacks.WithLabelValues("rate_limited").Inc()
		if e.logger != nil {
			e.logger.Warn("explain call budget exhausted", applogger.String("symbol", symbol))
		}
		return Fallback
	}

	prompt := BuildPrompt(symbol, assetType, price, sig)
	out, err := e.client.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		metrics.ExplainFallbacks.WithLabelValues("provider_error").Inc()
		if e.logger != nil {
			e.logger.Warn("explain provider error",
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return Fallback
	}
	if strings.TrimSpace(out) == "" {
		metrics.ExplainFallbacks.WithLabelValues("empty_completion").Inc()
		return Fallback
	}
	return out
}

var _ domsvc.Explainer = (*Explainer)(nil)
