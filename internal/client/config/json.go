package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophsession/internal/flagx"
	"github.com/dmitrijs2005/gophsession/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *int            `json:"log_level"`
	Storage        *struct {
		Driver    *string `json:"driver"`
		DSN       *string `json:"dsn"`
		Namespace *string `json:"namespace"`
	} `json:"storage"`
	Bootstrap *struct {
		KeepTokenOnTransportError *bool `json:"keep_token_on_transport_error"`
	} `json:"bootstrap"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if s := jc.Storage; s != nil {
		setIf(&cfg.Storage.Driver, s.Driver)
		setIf(&cfg.Storage.DSN, s.DSN)
		setIf(&cfg.Storage.Namespace, s.Namespace)
	}
	if b := jc.Bootstrap; b != nil {
		setIf(&cfg.Bootstrap.KeepTokenOnTransportError, b.KeepTokenOnTransportError)
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
