package config

import (
	"errors"
	"fmt"
	"time"

	jlconfig "github.com/JeremyLoy/config"
)

// ServerConfig holds the settings of the arena server.
// Fields are read from an optional KEY=VALUE file and then from the environment.
type ServerConfig struct {
	WSPort  int `config:"ASTEROIDS_WS_PORT"`
	APIPort int `config:"ASTEROIDS_API_PORT"`
	// TLSCertFile and TLSKeyFile enable TLS on both listeners when set
	TLSCertFile string `config:"ASTEROIDS_TLS_CERT_FILE"`
	TLSKeyFile  string `config:"ASTEROIDS_TLS_KEY_FILE"`

	// DatabaseURL selects the repository: sqlite://<path> or postgresql://...
	DatabaseURL   string `config:"DATABASE_URL"`
	MigrationsDir string `config:"ASTEROIDS_MIGRATIONS_DIR"`
	// SaveIntervalSeconds is the period between checkpoints of the running run
	SaveIntervalSeconds int `config:"ASTEROIDS_SAVE_INTERVAL_SECONDS"`
	// RedisURL publishes snapshots through redis instead of process memory when set
	RedisURL string `config:"REDIS_URL"`

	TickRate int `config:"ASTEROIDS_TICK_RATE"`
	// Seed of the simulation; zero picks one from the clock
	Seed               int64   `config:"ASTEROIDS_SEED"`
	Immortal           bool    `config:"ASTEROIDS_IMMORTAL"`
	Restitution        float64 `config:"ASTEROIDS_RESTITUTION"`
	PositionCorrection float64 `config:"ASTEROIDS_POSITION_CORRECTION"`
	ResolverWorkers    int     `config:"ASTEROIDS_RESOLVER_WORKERS"`

	LogLevel string `config:"ASTEROIDS_LOG_LEVEL"`
}

func Default() ServerConfig {
	return ServerConfig{
		WSPort:              8888,
		APIPort:             8080,
		DatabaseURL:         "sqlite://asteroids.db",
		MigrationsDir:       "./migrations",
		SaveIntervalSeconds: 10,
		TickRate:            60,
		Restitution:         0.9,
		PositionCorrection:  0.4,
		ResolverWorkers:     1,
		LogLevel:            "info",
	}
}

// Load reads the config file at path, if any, and the environment over the defaults.
func Load(path string) (ServerConfig, error) {
	cfg := Default()

	builder := jlconfig.FromEnv()
	if path != "" {
		builder = jlconfig.From(path).FromEnv()
	}
	if err := builder.To(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func (c ServerConfig) Validate() error {
	if c.WSPort <= 0 || c.APIPort <= 0 {
		return errors.New("ports must be positive")
	}
	if c.WSPort == c.APIPort {
		return fmt.Errorf("websocket and API ports must differ, both are %d", c.WSPort)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("TLS needs both a certificate and a key file")
	}
	if c.DatabaseURL == "" {
		return errors.New("database url must be set")
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate %d must be positive", c.TickRate)
	}
	if c.SaveIntervalSeconds < 0 {
		return fmt.Errorf("save interval %d must not be negative", c.SaveIntervalSeconds)
	}
	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("restitution %v must be within [0, 1]", c.Restitution)
	}
	if c.PositionCorrection < 0 || c.PositionCorrection > 1 {
		return fmt.Errorf("position correction %v must be within [0, 1]", c.PositionCorrection)
	}
	return nil
}

func (c ServerConfig) GameLoopInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c ServerConfig) SaveInterval() time.Duration {
	return time.Duration(c.SaveIntervalSeconds) * time.Second
}

func (c ServerConfig) TLSEnabled() bool {
	return c.TLSCertFile != ""
}
