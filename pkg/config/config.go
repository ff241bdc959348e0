// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Config holds every runtime setting. Empty backend addresses switch the
// corresponding backend off.
type Config struct {
	ServiceName string
	LogLevel    string

	HTTP HTTPConfig
	DB   DBConfig
	RD   RedisConfig
	MQ   AMQPConfig
	OTel OTelConfig
}

type HTTPConfig struct {
	Addr            string
	TLSCertFile     string
	TLSKeyFile      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type OTelConfig struct {
	Host        string
	Probability float64
}

// TLS reports whether both certificate and key are configured.
func (c HTTPConfig) TLS() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Load builds a Config from getenv, usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	e := env{getenv: getenv}
	cfg := Config{
		ServiceName: e.str("SERVICE_NAME", "travelrest"),
		LogLevel:    e.str("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Addr:            e.str("HTTP_ADDR", ":8080"),
			TLSCertFile:     e.str("TLS_CERT_FILE", ""),
			TLSKeyFile:      e.str("TLS_KEY_FILE", ""),
			ReadTimeout:     e.duration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    e.duration("HTTP_WRITE_TIMEOUT", 20*time.Second),
			IdleTimeout:     e.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: e.duration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		DB: DBConfig{
			URL: e.str("DATABASE_URL", ""),
		},
		RD: RedisConfig{
			Addr:     e.str("REDIS_ADDR", ""),
			Password: e.str("REDIS_PASSWORD", ""),
			DB:       e.integer("REDIS_DB", 0),
			TTL:      e.duration("CACHE_TTL", 10*time.Minute),
		},
		MQ: AMQPConfig{
			URL:      e.str("AMQP_URL", ""),
			Exchange: e.str("AMQP_EXCHANGE", "travelrest.events"),
		},
		OTel: OTelConfig{
			Host:        e.str("OTEL_HOST", ""),
			Probability: e.float("TRACE_PROBABILITY", 1.0),
		},
	}
	if err := errors.Join(e.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if (c.HTTP.TLSCertFile == "") != (c.HTTP.TLSKeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together"))
	}
	if c.OTel.Probability < 0 || c.OTel.Probability > 1 {
		errs = append(errs, fmt.Errorf("TRACE_PROBABILITY must be within [0,1], got %v", c.OTel.Probability))
	}
	if c.RD.TTL < 0 {
		errs = append(errs, errors.New("CACHE_TTL must not be negative"))
	}
	return errors.Join(errs...)
}

type env struct {
	getenv func(string) string
	errs   []error
}

func (e *env) str(key, def string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return def
}

func (e *env) integer(key string, def int) int {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (e *env) float(key string, def float64) float64 {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
