package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sellit-io/sellit/internal/flagx"
	"github.com/sellit-io/sellit/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the debounce either as a string like
// "250ms" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DataDir       string         `json:"data_dir"`
	Backend       string         `json:"backend"`
	SQLitePath    string         `json:"sqlite_path"`
	WatchDebounce timex.Duration `json:"watch_debounce"`
	SeedDemo      *bool          `json:"seed_demo"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c or -config flag. Absent flag means no JSON stage. Read or unmarshal
// errors panic; the caller may recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.SQLitePath != "" {
		cfg.SQLitePath = jc.SQLitePath
	}
	if jc.WatchDebounce.Duration != 0 {
		cfg.WatchDebounce = time.Duration(jc.WatchDebounce.Duration)
	}
	if jc.SeedDemo != nil {
		cfg.SeedDemo = *jc.SeedDemo
	}
}
