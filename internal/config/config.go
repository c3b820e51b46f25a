package config

import "time"

// Config holds runtime settings for the Sell It CLI.
//
// Fields:
//   - DataDir: directory holding the file-backed store.
//   - Backend: storage medium, "file" or "sqlite".
//   - SQLitePath: database file used when Backend is "sqlite".
//   - WatchDebounce: settle window for cross-process change notifications.
//   - SeedDemo: create the demo accounts on first run.
//
// Units: WatchDebounce is a time.Duration (e.g., 250*time.Millisecond).
type Config struct {
	DataDir       string        `env:"SELLIT_DATA_DIR"`
	Backend       string        `env:"SELLIT_BACKEND"`
	SQLitePath    string        `env:"SELLIT_SQLITE_PATH"`
	WatchDebounce time.Duration `env:"SELLIT_WATCH_DEBOUNCE"`
	SeedDemo      bool          `env:"SELLIT_SEED_DEMO"`
}

// Backend values accepted by Config.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".sellit"
	c.Backend = BackendFile
	c.SQLitePath = "sellit.db"
	c.WatchDebounce = 250 * time.Millisecond
	c.SeedDemo = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
