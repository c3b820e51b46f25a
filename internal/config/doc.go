// Package config loads runtime configuration for the Sell It CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. SELLIT_*-prefixed environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory for the file-backed store
//	-b string   storage backend, "file" or "sqlite"
//	-q string   sqlite database path
//	-w int      change-watch debounce (milliseconds)
//	-noseed     skip demo-account seeding
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the debounce, so values can be
// either strings like "250ms" or integer nanoseconds:
//
//	{
//	  "data_dir": ".sellit",
//	  "backend": "file",
//	  "sqlite_path": "sellit.db",
//	  "watch_debounce": "250ms",
//	  "seed_demo": true
//	}
//
// Primary API
//
//   - type Config                     — holds the runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
