package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"CourtIQ/pkg/util"
)

// Engine sections mirror the engines' own config shapes; zero fields take
// the engine defaults. The mapping onto engine configs happens in the DI
// providers so this package stays free of internal imports.
type Config struct {
	Environment string `yaml:"environment"`
	Logging     struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		StatsTopic   string   `yaml:"stats_topic"`
		LogsTopic    string   `yaml:"logs_topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
		Consumer struct {
			GroupID    string        `yaml:"group_id"`
			Workers    int           `yaml:"workers"`
			BufferSize int           `yaml:"buffer_size"`
			RetryMax   int           `yaml:"retry_max"`
			BackoffMin time.Duration `yaml:"backoff_min"`
			BackoffMax time.Duration `yaml:"backoff_max"`
			DLQTopic   string        `yaml:"dlq_topic"`
			MinBytes   int           `yaml:"min_bytes"`
			MaxBytes   int           `yaml:"max_bytes"`
		} `yaml:"consumer"`
	} `yaml:"kafka"`
	Cache struct {
		Mode string        `yaml:"mode"` // memory, redis, layered
		TTL  time.Duration `yaml:"ttl"`
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	League struct {
		DefaultSeason  string   `yaml:"default_season"`
		Seasons        []string `yaml:"seasons"` // most recent first
		MinGamesPlayed int      `yaml:"min_games_played"`
	} `yaml:"league"`
	Simulation struct {
		Trials       int   `yaml:"trials"`
		DetailTrials int   `yaml:"detail_trials"`
		Seed         int64 `yaml:"seed"`
	} `yaml:"simulation"`
	Search struct {
		MaxResults int `yaml:"max_results"`

		MaxFreeAgents  int     `yaml:"max_free_agents"`
		MinImprovement float64 `yaml:"min_improvement"`
		MaxSingleSwaps int     `yaml:"max_single_swaps"`

		MultiPoolSize   int     `yaml:"multi_pool_size"`
		MaxPairCombos   int     `yaml:"max_pair_combos"`
		MaxTripleCombos int     `yaml:"max_triple_combos"`
		PairThreshold   float64 `yaml:"pair_threshold"`
		TripleThreshold float64 `yaml:"triple_threshold"`
		MaxMultiSwaps   int     `yaml:"max_multi_swaps"`

		ValuePlayRatio float64 `yaml:"value_play_ratio"`
		MaxValuePlays  int     `yaml:"max_value_plays"`

		TradeMinRatio       float64 `yaml:"trade_min_ratio"`
		TradeMaxRatio       float64 `yaml:"trade_max_ratio"`
		TradesPerPlayer     int     `yaml:"trades_per_player"`
		MaxSingleTrades     int     `yaml:"max_single_trades"`
		PairTradeMinRatio   float64 `yaml:"pair_trade_min_ratio"`
		PairTradeMaxRatio   float64 `yaml:"pair_trade_max_ratio"`
		PairTradesPerTeam   int     `yaml:"pair_trades_per_team"`
		TripleTradeMinRatio float64 `yaml:"triple_trade_min_ratio"`
		TripleTradeMaxRatio float64 `yaml:"triple_trade_max_ratio"`
		TripleTradesPerTeam int     `yaml:"triple_trades_per_team"`
		TradeComboSlice     int     `yaml:"trade_combo_slice"`
		MaxMultiTrades      int     `yaml:"max_multi_trades"`
		MaxTrades           int     `yaml:"max_trades"`
	} `yaml:"search"`
	Draft struct {
		SeasonWeights []float64 `yaml:"season_weights"`
		TopN          int       `yaml:"top_n"`
	} `yaml:"draft"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.normalizeSeasons()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables, which take precedence in container deployments.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("CLICKHOUSE_PASSWORD"); v != "" {
		c.ClickHouse.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("DEFAULT_SEASON"); v != "" {
		s := util.NormalizeSeason(v)
		if s == "" {
			return nil, fmt.Errorf("DEFAULT_SEASON %q is not a season label", v)
		}
		c.League.DefaultSeason = s
	}

	return c, nil
}

// normalizeSeasons expands bare start years ("2024" -> "2024-25") and, when
// no season list is configured, derives one from the default season.
func (c *Config) normalizeSeasons() {
	if s := util.NormalizeSeason(c.League.DefaultSeason); s != "" {
		c.League.DefaultSeason = s
	}
	for i, s := range c.League.Seasons {
		if n := util.NormalizeSeason(s); n != "" {
			c.League.Seasons[i] = n
		}
	}
	if len(c.League.Seasons) == 0 && util.ValidSeason(c.League.DefaultSeason) {
		c.League.Seasons = util.SeasonHistory(c.League.DefaultSeason, 3)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required")
	}
	switch c.Cache.Mode {
	case "", "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.mode must be 'memory', 'redis' or 'layered', got '%s'", c.Cache.Mode)
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
		}
		if c.Kafka.StatsTopic == "" {
			return fmt.Errorf("kafka.stats_topic is required when kafka is enabled")
		}
	}
	if c.League.DefaultSeason == "" {
		return fmt.Errorf("league.default_season is required")
	}
	if !util.ValidSeason(c.League.DefaultSeason) {
		return fmt.Errorf("league.default_season %q is not a season label", c.League.DefaultSeason)
	}
	if len(c.League.Seasons) == 0 {
		return fmt.Errorf("league.seasons cannot be empty")
	}
	for _, s := range c.League.Seasons {
		if !util.ValidSeason(s) {
			return fmt.Errorf("league.seasons entry %q is not a season label", s)
		}
	}
	return nil
}
