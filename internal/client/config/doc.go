// Package config loads runtime configuration for the GophSession CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with GOPHSESSION_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-s string   storage driver: sqlite, redis or memory
//	-d string   storage DSN (sqlite file path or redis:// URL)
//	-t int      request timeout (seconds)
//	-l int      log level (-4 debug, 0 info, 4 warn, 8 error)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000/api/",
//	  "request_timeout": "10s",
//	  "log_level": 0,
//	  "storage": {"driver": "sqlite", "dsn": "gophsession.db", "namespace": ""},
//	  "bootstrap": {"keep_token_on_transport_error": false}
//	}
//
// Environment
//
//	GOPHSESSION_API_BASE_URL, GOPHSESSION_REQUEST_TIMEOUT (e.g. "5s"),
//	GOPHSESSION_LOG_LEVEL, GOPHSESSION_STORAGE_DRIVER, GOPHSESSION_STORAGE_DSN,
//	GOPHSESSION_STORAGE_NAMESPACE,
//	GOPHSESSION_BOOTSTRAP_KEEP_TOKEN_ON_TRANSPORT_ERROR
package config
