package di

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"LogiPulse/internal/domain/repository"
	"LogiPulse/internal/domain/service"
	"LogiPulse/internal/handler/api"
	mid "LogiPulse/internal/middleware"
	"LogiPulse/internal/monitor"
	internalrepo "LogiPulse/internal/repository"
	"LogiPulse/internal/service/cache"
	smetrics "LogiPulse/internal/service/metrics"
	"LogiPulse/internal/service/ratelimit"
	"LogiPulse/internal/service/telematics"
	"LogiPulse/internal/usecase"
	pkgch "LogiPulse/pkg/clickhouse"
	"LogiPulse/pkg/config"
	xhttp "LogiPulse/pkg/http"
	pkgkafka "LogiPulse/pkg/kafka"
	applogger "LogiPulse/pkg/logger"
	"LogiPulse/pkg/metrics"
	"LogiPulse/pkg/server"
)

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithConnLifetime(10*time.Minute),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.SchemaStatements(cfg.ClickHouse.Database)); err != nil {
		_ = client.Close() // cannot log here (DI layer no logger); propagate error
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	smetrics.Register()
	return metrics.New()
}

// ProvideLogger creates the application logger.
func ProvideLogger() (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{Level: "info", Format: "console", Output: "stdout"})
}

// ProvideEventStorage creates ClickHouse tracking-event storage.
func ProvideEventStorage(chClient *pkgch.Client, cfg *config.Config) repository.Storage {
	return internalrepo.NewClickHouseEventStorage(chClient.DB(), cfg.ClickHouse.Database+".tracking_events")
}

// ProvideEventPublisher creates the Kafka event publisher.
func ProvideEventPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Kafka.Topic)
}

// ProvideRecordStore creates the per-tenant domain record store.
func ProvideRecordStore(chClient *pkgch.Client, cfg *config.Config) repository.RecordStore {
	return internalrepo.NewClickHouseRecordStore(chClient.DB(), cfg.ClickHouse.Database)
}

// ProvideRedisClient creates the shared Redis client.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Monitoring.Redis.Addr,
		Password: cfg.Monitoring.Redis.Password,
		DB:       cfg.Monitoring.Redis.DB,
	})
}

// ProvideAlertRuleStore creates the Redis-backed alert rule store.
func ProvideAlertRuleStore(cli *redis.Client) repository.AlertRuleStore {
	return internalrepo.NewRedisAlertRuleStore(cli)
}

// ProvideReportCache selects the report cache backend from config.
func ProvideReportCache(cfg *config.Config) cache.BytesCache {
	if cfg.Monitoring.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Monitoring.Redis.Addr,
			Password: cfg.Monitoring.Redis.Password,
			DB:       cfg.Monitoring.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideKafkaConsumer creates a Kafka consumer configured from YAML.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideKafkaEventsHandler registers the handler for the events topic.
func ProvideKafkaEventsHandler(store repository.Storage, metrics repository.Metrics, cfg *config.Config) *usecase.KafkaEventsHandler {
	return usecase.NewKafkaEventsHandler(cfg.Kafka.Topic, store, metrics)
}

// ProvideTelematicsStream creates the telematics WebSocket stream.
func ProvideTelematicsStream(cfg *config.Config) repository.EventStream {
	return telematics.New(
		cfg.Telematics.APIKey,
		cfg.Telematics.WebSocketURL,
		cfg.Telematics.Tenants,
		cfg.Telematics.ReconnectDelay,
		cfg.Telematics.PingInterval,
	)
}

// ProvideEventProcessor creates the event processor use case.
func ProvideEventProcessor(
	pub repository.Publisher,
	store repository.Storage,
	metrics repository.Metrics,
	cfg *config.Config,
) *usecase.EventProcessor {
	return usecase.NewEventProcessor(pub, store, metrics, cfg.Backend.Type)
}

// ProvideEventCollector creates the event collector use case.
func ProvideEventCollector(
	stream repository.EventStream,
	processor *usecase.EventProcessor,
	metrics repository.Metrics,
) *usecase.EventCollector {
	// Build middleware pipeline between WebSocket and the backend
	pipe := mid.NewIngestPipeline(processor, metrics,
		mid.WithMaxRPS(50),
		mid.WithBufferSize(2000),
	)
	return usecase.NewEventCollector(stream, processor, metrics, pipe)
}

// ProvideMonitorRegistry creates the category registry with its estimator.
func ProvideMonitorRegistry() *monitor.Registry {
	return monitor.NewRegistry(monitor.NewEstimator())
}

// ProvideAlertDetector creates the alert rule engine.
func ProvideAlertDetector() service.AlertDetector {
	return monitor.NewAlertEngine()
}

// ProvideAnomalyDetector creates the anomaly engine.
func ProvideAnomalyDetector() service.AnomalyDetector {
	return monitor.NewAnomalyEngine()
}

// ProvideTrendSynthesizer creates the trend engine.
func ProvideTrendSynthesizer() service.TrendSynthesizer {
	return monitor.NewTrendEngine()
}

// ProvideReportUseCase creates the monitoring report use case.
func ProvideReportUseCase(
	store repository.RecordStore,
	registry *monitor.Registry,
	alerts service.AlertDetector,
	anomalies service.AnomalyDetector,
	trends service.TrendSynthesizer,
	metrics repository.Metrics,
) *usecase.MonitoringReportUseCase {
	return usecase.NewMonitoringReportUseCase(store, registry, alerts, anomalies, trends, metrics)
}

// ProvideHTTPHandler creates the monitoring API handler.
func ProvideHTTPHandler(
	logger *applogger.Logger,
	reports *usecase.MonitoringReportUseCase,
	rules repository.AlertRuleStore,
	reportCache cache.BytesCache,
	cfg *config.Config,
) xhttp.Handler {
	cacheTTL := cfg.Monitoring.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	opts := []api.HandlerOption{
		api.WithReportCache(reportCache, cacheTTL),
		api.WithAuthSecret(cfg.Monitoring.AuthSecret),
	}
	if cfg.Monitoring.RateLimit.Enabled {
		opts = append(opts, api.WithRateLimit(
			ratelimit.New(),
			cfg.Monitoring.RateLimit.Capacity,
			cfg.Monitoring.RateLimit.RefillPerSec,
		))
	}
	return api.NewMonitoringHandler(logger, reports, rules, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	collector *usecase.EventCollector,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaEventsHandler,
	chClient *pkgch.Client,
	handler xhttp.Handler,
	m repository.Metrics,
) *server.App {
	if consumer != nil {
		consumer.WithConsumerHook(pkgkafka.LatencyHook{
			Observe: func(topic string, seconds float64) {
				m.RecordLatency("kafka_handle", seconds)
			},
		})
	}
	app := server.New(cfg, collector, consumer, kh, chClient)
	app.SetHTTPHandler(handler)
	if collector != nil {
		app.EventProc = collector.Processor()
	}
	return app
}
