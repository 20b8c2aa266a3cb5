package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"CourtIQ/internal/domain/repository"
	domsvc "CourtIQ/internal/domain/service"
	"CourtIQ/internal/handler/api"
	internalrepo "CourtIQ/internal/repository"
	icache "CourtIQ/internal/service/cache"
	"CourtIQ/internal/service/ratelimit"
	"CourtIQ/internal/services/draft"
	"CourtIQ/internal/services/recommend"
	"CourtIQ/internal/services/sim"
	"CourtIQ/internal/usecase"
	pkgcache "CourtIQ/pkg/cache"
	pkgch "CourtIQ/pkg/clickhouse"
	"CourtIQ/pkg/config"
	xhttp "CourtIQ/pkg/http"
	pkgkafka "CourtIQ/pkg/kafka"
	applogger "CourtIQ/pkg/logger"
	"CourtIQ/pkg/metrics"
	"CourtIQ/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lcfg := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lcfg.Level == "" {
		lcfg.Level = "info"
	}
	if lcfg.Format == "" {
		lcfg.Format = "json"
	}
	if lcfg.Output == "" {
		lcfg.Output = "stdout"
	}
	return applogger.New(lcfg)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvidePlayerStore creates the season stats store and ensures its schema.
func ProvidePlayerStore(client *pkgch.Client) (repository.PlayerStore, error) {
	store := internalrepo.NewClickHousePlayerStore(client)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("player store schema: %w", err)
	}
	return store, nil
}

// ProvideCacheBackend creates the cache backend per configuration.
// Memory is the default; redis and layered need a reachable Redis.
func ProvideCacheBackend(cfg *config.Config) (pkgcache.Service, error) {
	switch cfg.Cache.Mode {
	case "", "memory":
		return pkgcache.NewMemoryCache(), nil
	case "redis", "layered":
		host, port, err := splitRedisAddr(cfg.Cache.Redis.Addr)
		if err != nil {
			return nil, err
		}
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisHost(host),
			pkgcache.WithRedisPort(port),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		if cfg.Cache.Mode == "layered" {
			return pkgcache.NewLayeredCache(rc), nil
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown cache mode %q", cfg.Cache.Mode)
	}
}

func splitRedisAddr(addr string) (string, int, error) {
	if addr == "" {
		return "localhost", 6379, nil
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("redis addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("redis port %q: %w", portStr, err)
	}
	return host, port, nil
}

// ProvidePoolCache creates the season pool cache.
func ProvidePoolCache(backend pkgcache.Service, cfg *config.Config) *icache.PoolCache {
	return icache.NewPoolCache(backend, cfg.Cache.TTL, time.Now)
}

// ProvideSimulator creates the Monte Carlo engine.
func ProvideSimulator(cfg *config.Config) domsvc.Simulator {
	return sim.New(sim.Config{
		Trials:       cfg.Simulation.Trials,
		DetailTrials: cfg.Simulation.DetailTrials,
		Seed:         cfg.Simulation.Seed,
	})
}

// ProvideRecommender creates the roster move search. Zero config fields
// fall back to the engine defaults.
func ProvideRecommender(cfg *config.Config) domsvc.Recommender {
	s := cfg.Search
	return recommend.New(recommend.Config{
		MaxResults:          s.MaxResults,
		MaxFreeAgents:       s.MaxFreeAgents,
		MinImprovement:      s.MinImprovement,
		MaxSingleSwaps:      s.MaxSingleSwaps,
		MultiPoolSize:       s.MultiPoolSize,
		MaxPairCombos:       s.MaxPairCombos,
		MaxTripleCombos:     s.MaxTripleCombos,
		PairThreshold:       s.PairThreshold,
		TripleThreshold:     s.TripleThreshold,
		MaxMultiSwaps:       s.MaxMultiSwaps,
		ValuePlayRatio:      s.ValuePlayRatio,
		MaxValuePlays:       s.MaxValuePlays,
		TradeMinRatio:       s.TradeMinRatio,
		TradeMaxRatio:       s.TradeMaxRatio,
		TradesPerPlayer:     s.TradesPerPlayer,
		MaxSingleTrades:     s.MaxSingleTrades,
		PairTradeMinRatio:   s.PairTradeMinRatio,
		PairTradeMaxRatio:   s.PairTradeMaxRatio,
		PairTradesPerTeam:   s.PairTradesPerTeam,
		TripleTradeMinRatio: s.TripleTradeMinRatio,
		TripleTradeMaxRatio: s.TripleTradeMaxRatio,
		TripleTradesPerTeam: s.TripleTradesPerTeam,
		TradeComboSlice:     s.TradeComboSlice,
		MaxMultiTrades:      s.MaxMultiTrades,
		MaxTrades:           s.MaxTrades,
	})
}

// ProvideDraftRanker creates the draft board builder.
func ProvideDraftRanker(cfg *config.Config) domsvc.DraftRanker {
	return draft.New(draft.Config{
		SeasonWeights: cfg.Draft.SeasonWeights,
		TopN:          cfg.Draft.TopN,
	})
}

// ProvideAnalyzer creates the application service.
func ProvideAnalyzer(
	store repository.PlayerStore,
	pools *icache.PoolCache,
	simulator domsvc.Simulator,
	search domsvc.Recommender,
	ranker domsvc.DraftRanker,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(
		store, pools, simulator, search, ranker, m, log,
		cfg.League.Seasons, cfg.League.MinGamesPlayed,
	)
}

// ProvideLimiter creates the per-client rate limiter for heavy endpoints.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideHTTPHandler creates the REST handler.
func ProvideHTTPHandler(analyzer *usecase.Analyzer, limiter *ratelimit.Limiter, log *applogger.Logger) xhttp.Handler {
	return api.NewFantasyHandler(analyzer, limiter, log)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when Kafka is
// disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
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

// ProvideKafkaConsumer creates a Kafka consumer, or nil when Kafka is
// disabled.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
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

// ProvideStatUpdatesHandler registers the handler for the stat updates
// topic.
func ProvideStatUpdatesHandler(
	cfg *config.Config,
	store repository.PlayerStore,
	pools *icache.PoolCache,
	m repository.Metrics,
	log *applogger.Logger,
) pkgkafka.MessageHandler {
	return usecase.NewStatUpdatesHandler(cfg.Kafka.StatsTopic, store, pools, m, log)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	consumer *pkgkafka.Consumer,
	producer *pkgkafka.Producer,
	kh pkgkafka.MessageHandler,
	handler xhttp.Handler,
	store repository.PlayerStore,
) *server.App {
	if consumer != nil {
		consumer.WithConsumerHook(pkgkafka.NoopHook{})
	}
	return server.New(cfg, log, consumer, producer, kh, handler, store)
}
