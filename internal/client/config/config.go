package config

import (
	"time"
)

// Config holds runtime settings for the GophSession CLI.
type Config struct {
	APIBaseURL     string          `env:"API_BASE_URL"`
	RequestTimeout time.Duration   `env:"REQUEST_TIMEOUT"`
	LogLevel       int             `env:"LOG_LEVEL"`
	Storage        StorageConfig   `envPrefix:"STORAGE_"`
	Bootstrap      BootstrapConfig `envPrefix:"BOOTSTRAP_"`
}

// StorageConfig selects where the session token is persisted.
type StorageConfig struct {
	Driver    string `env:"DRIVER"`
	DSN       string `env:"DSN"`
	Namespace string `env:"NAMESPACE"`
}

// BootstrapConfig tunes the startup session restore.
type BootstrapConfig struct {
	KeepTokenOnTransportError bool `env:"KEEP_TOKEN_ON_TRANSPORT_ERROR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api/"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = 0
	c.Storage = StorageConfig{Driver: "sqlite", DSN: "gophsession.db"}
	c.Bootstrap = BootstrapConfig{}
}

// LoadConfig builds a Config from defaults, then JSON, environment and
// flags taken from args (usually os.Args[1:]). Later sources take
// precedence. The result is validated.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
