//go:build wireinject
// +build wireinject

package di

import (
	"TradePulse/pkg/config"
	"TradePulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,

		// Engine services
		ProvideSeriesSource,
		ProvideClassifier,
		ProvideChatClient,
		ProvideExplainer,

		// Use case
		ProvideAnalyzer,

		// HTTP boundary and application server
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
