package config

import (
	"flag"
	"os"
	"time"

	"github.com/sellit-io/sellit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory for the file-backed store
//	-b string   storage backend, "file" or "sqlite"
//	-q string   sqlite database path
//	-w int      change-watch debounce in milliseconds
//	-noseed     skip demo-account seeding
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-q", "-w", "-noseed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the file-backed store")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file or sqlite)")
	fs.StringVar(&cfg.SQLitePath, "q", cfg.SQLitePath, "sqlite database path")
	watchDebounce := fs.Int("w", int(cfg.WatchDebounce.Milliseconds()), "change-watch debounce (in milliseconds)")
	noSeed := fs.Bool("noseed", !cfg.SeedDemo, "skip demo-account seeding")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.WatchDebounce = time.Duration(*watchDebounce) * time.Millisecond
	cfg.SeedDemo = !*noSeed
}
