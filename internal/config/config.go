// Package config reads the service settings from the environment.
//
// Variable names are the ones the deployment already uses (DB_HOST,
// DB_USER, ...). A .env file in the working directory is loaded first when
// present.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App  AppConfig      `koanf:"app" validate:"required"`
	HTTP HTTPConfig     `koanf:"http" validate:"required"`
	DB   DatabaseConfig `koanf:"db" validate:"required"`
	Log  LogConfig      `koanf:"log" validate:"required"`
	AMQP AMQPConfig     `koanf:"amqp"`
}

type AppConfig struct {
	Env string `koanf:"env" validate:"required"`
}

type HTTPConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required,gt=0"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

// AMQPConfig is optional. With an empty URL change events stay in process.
type AMQPConfig struct {
	URL   string `koanf:"url"`
	Queue string `koanf:"queue" validate:"required"`
}

// prefixes of the environment variables that are read; everything else in
// the environment is ignored.
var prefixes = []string{"APP_", "HTTP_", "DB_", "LOG_", "AMQP_"}

// Default returns the settings used for anything not set in the environment.
func Default() Config {
	return Config{
		App: AppConfig{Env: "local"},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		DB: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Log:  LogConfig{Level: "info"},
		AMQP: AMQPConfig{Queue: "resource_events"},
	}
}

// Load reads .env (if any) and the process environment on top of Default.
func Load() (*Config, error) {
	// A missing .env is fine, the OS environment is used as is.
	_ = godotenv.Load()
	return load(env.Provider("", ".", envKey))
}

func load(p koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(p, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey maps DB_MAX_OPEN_CONNS to db.max_open_conns. Only the first
// underscore separates the section from the key.
func envKey(s string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return strings.Replace(strings.ToLower(s), "_", ".", 1)
		}
	}
	return ""
}

// DSN returns the postgres URL for lib/pq.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
