//go:build wireinject
// +build wireinject

package di

import (
	"LogiPulse/pkg/config"
	"LogiPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Metrics and logging
		ProvideMetrics,
		ProvideLogger,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,
		ProvideRedisClient,

		// Repositories
		ProvideEventStorage,
		ProvideEventPublisher,
		ProvideRecordStore,
		ProvideAlertRuleStore,
		ProvideReportCache,
		ProvideTelematicsStream,

		// Monitoring engines
		ProvideMonitorRegistry,
		ProvideAlertDetector,
		ProvideAnomalyDetector,
		ProvideTrendSynthesizer,

		// Use cases
		ProvideEventProcessor,
		ProvideEventCollector,
		ProvideKafkaEventsHandler,
		ProvideReportUseCase,

		// HTTP
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
