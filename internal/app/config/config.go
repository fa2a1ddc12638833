package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	DB        DB         `mapstructure:",squash"`
	HTTP      HTTP       `mapstructure:",squash"`
	FlightAPI FlightAPI  `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
}
type DB struct {
	DSN                   string        `mapstructure:"DB_DSN"`
	MaxOpenConnections    int           `mapstructure:"DB_MAX_OPEN_CONNECTIONS"`
	MaxIdleConnections    int           `mapstructure:"DB_MAX_IDLE_CONNECTIONS"`
	MaxConnectionLifetime time.Duration `mapstructure:"DB_MAX_CONNECTIONS_LIFETIME"`
	MaxConnectionIdleTime time.Duration `mapstructure:"DB_MAX_CONNECTION_IDLE_TIME"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// FlightAPI holds the upstream flight catalog configuration. url will route
// to mock provider in local setups.
type FlightAPI struct {
	SearchAPIURL string        `mapstructure:"FLIGHT_API_SEARCH_URL"`
	Timeout      time.Duration `mapstructure:"FLIGHT_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"FLIGHT_API_RATE_LIMIT"`
}
