// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultSessionTTL      = 30 * time.Minute
	DefaultMaxSessions     = 10000
	DefaultServiceName     = "go-chi-calculator"
)

// Config is the service configuration.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
	MaxSessions     int
	SecureCookies   bool
	Telemetry       bool
	Debug           bool
	ServiceName     string
}

// Load reads the configuration using os.LookupEnv.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads the configuration through lookup, applying defaults for
// unset variables.
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Addr:            DefaultAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
		SessionTTL:      DefaultSessionTTL,
		MaxSessions:     DefaultMaxSessions,
		Telemetry:       true,
		ServiceName:     DefaultServiceName,
	}

	if v, ok := lookup("CALC_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("OTEL_SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}

	var err error
	if cfg.ShutdownTimeout, err = duration(lookup, "CALC_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = duration(lookup, "CALC_SESSION_TTL", cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.MaxSessions, err = integer(lookup, "CALC_MAX_SESSIONS", cfg.MaxSessions); err != nil {
		return Config{}, err
	}
	if cfg.SecureCookies, err = boolean(lookup, "CALC_SECURE_COOKIES", cfg.SecureCookies); err != nil {
		return Config{}, err
	}
	if cfg.Telemetry, err = boolean(lookup, "CALC_TELEMETRY", cfg.Telemetry); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = boolean(lookup, "CALC_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func duration(lookup func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", key, v)
	}
	return d, nil
}

func integer(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: negative value %d", key, n)
	}
	return n, nil
}

func boolean(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
