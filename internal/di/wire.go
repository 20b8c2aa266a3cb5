//go:build wireinject
// +build wireinject

package di

import (
	"CourtIQ/pkg/config"
	"CourtIQ/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideCacheBackend,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvidePlayerStore,
		ProvidePoolCache,

		// Analysis engines
		ProvideSimulator,
		ProvideRecommender,
		ProvideDraftRanker,

		// Use cases
		ProvideAnalyzer,
		ProvideStatUpdatesHandler,

		// HTTP surface
		ProvideLimiter,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
