package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr        string `mapstructure:"addr"`
	Development bool   `mapstructure:"development"`
	LogLevel    string `mapstructure:"log_level"`
}

type Database struct {
	// Driver is sqlite or postgres.
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWT struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type Feed struct {
	ExploreTTL   time.Duration `mapstructure:"explore_ttl"`
	ExploreLimit int           `mapstructure:"explore_limit"`
}

type Uploads struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
}

type RateLimit struct {
	// AuthRPS bounds login/register attempts per client IP.
	AuthRPS   float64 `mapstructure:"auth_rps"`
	AuthBurst int     `mapstructure:"auth_burst"`
}

type Observability struct {
	SentryDSN    string `mapstructure:"sentry_dsn"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type Config struct {
	Server        Server        `mapstructure:"server"`
	Database      Database      `mapstructure:"database"`
	Redis         Redis         `mapstructure:"redis"`
	JWT           JWT           `mapstructure:"jwt"`
	Feed          Feed          `mapstructure:"feed"`
	Uploads       Uploads       `mapstructure:"uploads"`
	RateLimit     RateLimit     `mapstructure:"rate_limit"`
	Observability Observability `mapstructure:"observability"`
}

// Load reads config.yaml from the working directory (optional) with
// LAZYBOOK_* environment variables taking precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.development", false)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "lazybook.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "dev-only-secret")
	v.SetDefault("jwt.ttl", 30*time.Minute)
	v.SetDefault("feed.explore_ttl", 30*time.Second)
	v.SetDefault("feed.explore_limit", 50)
	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("uploads.base_url", "/uploads")
	v.SetDefault("rate_limit.auth_rps", 5)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("observability.sentry_dsn", "")
	v.SetDefault("observability.otlp_endpoint", "")

	v.SetEnvPrefix("LAZYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
