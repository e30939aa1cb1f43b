package di

import (
	"TradePulse/internal/domain/service"
	"TradePulse/internal/handler/api"
	"TradePulse/internal/service/classify"
	"TradePulse/internal/service/explain"
	"TradePulse/internal/service/series"
	"TradePulse/internal/usecase"
	"TradePulse/pkg/config"
	xhttp "TradePulse/pkg/http"
	applogger "TradePulse/pkg/logger"
	"TradePulse/pkg/server"
)

// ProvideLogger creates the structured application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideSeriesSource creates the deterministic synthetic series generator.
func ProvideSeriesSource(cfg *config.Config) service.SeriesSource {
	return series.NewGenerator(cfg)
}

// ProvideClassifier creates the threshold signal classifier.
func ProvideClassifier(cfg *config.Config) service.SignalClassifier {
	return classify.NewClassifier(cfg)
}

// ProvideChatClient creates the Groq chat-completions client.
func ProvideChatClient(cfg *config.Config) explain.ChatClient {
	return explain.NewGroqClient(cfg)
}

// ProvideExplainer creates the failure-absorbing explanation builder.
func ProvideExplainer(cfg *config.Config, client explain.ChatClient, l *applogger.Logger) service.Explainer {
	return explain.NewExplainer(cfg, client, l)
}

// ProvideAnalyzer creates the signal orchestrator use case.
func ProvideAnalyzer(source service.SeriesSource, classifier service.SignalClassifier, explainer service.Explainer) *usecase.SignalAnalyzer {
	return usecase.NewSignalAnalyzer(source, classifier, explainer)
}

// ProvideHandler creates the HTTP boundary handler.
func ProvideHandler(l *applogger.Logger, analyzer *usecase.SignalAnalyzer) xhttp.Handler {
	return api.NewAnalyzeHandler(l, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
