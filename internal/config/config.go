package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Default values for configuration
const (
	DefaultColumns = 7
	DefaultBounces = 4
)

// Config holds the application configuration
type Config struct {
	DataDir string // where settings and high scores live
	Seed    int64  // 0 means seed from the clock
	Columns int
	Bounces int // trajectory preview bounce cap
	Mute    bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("blitzballz", flag.ContinueOnError)

	data := fs.String("data", "", "data directory for settings and high scores")
	seed := fs.Int64("seed", 0, "RNG seed for reproducible runs (0 = random)")
	columns := fs.Int("columns", DefaultColumns, "grid columns (2-12)")
	bounces := fs.Int("bounces", DefaultBounces, "aim preview bounce cap (1-16)")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validate columns range
	if *columns < 2 || *columns > 12 {
		return nil, fmt.Errorf("columns must be between 2 and 12, got %d", *columns)
	}

	// Validate bounce cap
	if *bounces < 1 || *bounces > 16 {
		return nil, fmt.Errorf("bounces must be between 1 and 16, got %d", *bounces)
	}

	cfg := &Config{
		DataDir: *data,
		Seed:    *seed,
		Columns: *columns,
		Bounces: *bounces,
		Mute:    *mute,
	}

	return cfg, nil
}

// ResolveDataDir returns the configured data directory, or the per-user
// default under the OS config dir when none was given.
func (c *Config) ResolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".blitzballz"
	}
	return filepath.Join(base, "blitzballz")
}
