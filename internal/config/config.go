package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cron      CronConfig      `mapstructure:"cron"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Consensus ConsensusConfig `mapstructure:"consensus"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
	Summary   SummaryConfig   `mapstructure:"summary"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	FilterTTL time.Duration `mapstructure:"filter_ttl"`
}

type CronConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Refresh     string `mapstructure:"refresh"`
	Cleanup     string `mapstructure:"cleanup"`
	KeepWindows int    `mapstructure:"keep_windows"`
}

// ScoringConfig points at the upstream scoring API that computes
// strength/opportunity/ranking scores. This service never recomputes them.
type ScoringConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ConsensusConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	URL           string        `mapstructure:"url"`
	FlashDuration time.Duration `mapstructure:"flash_duration"`
	BackoffMin    time.Duration `mapstructure:"backoff_min"`
	BackoffMax    time.Duration `mapstructure:"backoff_max"`
}

type RefreshConfig struct {
	Days     int    `mapstructure:"days"`
	SportKey string `mapstructure:"sport_key"`
	Limit    int    `mapstructure:"limit"`
}

// SummaryConfig overrides the operator summary thresholds. The shipped
// defaults are the business cutoffs documented in internal/insight.
type SummaryConfig struct {
	HealthySentRatePct    float64 `mapstructure:"healthy_sent_rate_pct"`
	HealthyCLVPositivePct float64 `mapstructure:"healthy_clv_positive_pct"`
	DegradedSentRatePct   float64 `mapstructure:"degraded_sent_rate_pct"`
	DegradedCLVPct        float64 `mapstructure:"degraded_clv_pct"`
	DegradedMinCLVSamples int     `mapstructure:"degraded_min_clv_samples"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "oddsdesk:filters:")
	v.SetDefault("redis.filter_ttl", "720h")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.refresh", "@every 1m")
	v.SetDefault("cron.cleanup", "@every 1h")
	v.SetDefault("cron.keep_windows", 10)
	v.SetDefault("scoring.base_url", "http://localhost:9090")
	v.SetDefault("scoring.timeout", "15s")
	v.SetDefault("consensus.enabled", false)
	v.SetDefault("consensus.url", "")
	v.SetDefault("consensus.flash_duration", "1500ms")
	v.SetDefault("consensus.backoff_min", "1s")
	v.SetDefault("consensus.backoff_max", "30s")
	v.SetDefault("refresh.days", 7)
	v.SetDefault("refresh.sport_key", "")
	v.SetDefault("refresh.limit", 200)
	v.SetDefault("summary.healthy_sent_rate_pct", 85)
	v.SetDefault("summary.healthy_clv_positive_pct", 50)
	v.SetDefault("summary.degraded_sent_rate_pct", 65)
	v.SetDefault("summary.degraded_clv_pct", 42)
	v.SetDefault("summary.degraded_min_clv_samples", 20)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
