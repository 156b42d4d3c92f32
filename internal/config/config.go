// Package config resolves skypath settings from defaults, an optional YAML
// file and SKYPATH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "SKYPATH"

	LOG_LEVEL      = "log.level"
	LOG_FORMAT     = "log.format"
	NETWORK        = "network"
	ALGORITHM      = "algorithm"
	BENCH_AIRPORTS = "bench.airports"
	BENCH_FANOUT   = "bench.fanout"
	BENCH_SEED     = "bench.seed"
	BENCH_RUNS     = "bench.runs"
	BENCH_BACKEND  = "bench.backend"
	METRICS_FILE   = "bench.metrics_file"
)

// ErrInvalidConfig wraps every validation failure in Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	Network   string
	Algorithm string
	Bench     Bench
}

// Bench holds the synthetic benchmark settings.
type Bench struct {
	Airports    int
	Fanout      int
	Seed        int64
	Runs        int
	Backend     string
	MetricsFile string
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", LOG_LEVEL, c.LogLevel)
	fmt.Fprintf(&b, "%s: %s\n", LOG_FORMAT, c.LogFormat)
	fmt.Fprintf(&b, "%s: %s\n", NETWORK, c.Network)
	fmt.Fprintf(&b, "%s: %s\n", ALGORITHM, c.Algorithm)
	fmt.Fprintf(&b, "%s: %d\n", BENCH_AIRPORTS, c.Bench.Airports)
	fmt.Fprintf(&b, "%s: %d\n", BENCH_FANOUT, c.Bench.Fanout)
	fmt.Fprintf(&b, "%s: %d\n", BENCH_SEED, c.Bench.Seed)
	fmt.Fprintf(&b, "%s: %d\n", BENCH_RUNS, c.Bench.Runs)
	fmt.Fprintf(&b, "%s: %s\n", BENCH_BACKEND, c.Bench.Backend)
	fmt.Fprintf(&b, "%s: %s", METRICS_FILE, c.Bench.MetricsFile)
	return b.String()
}

// Load reads the configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	options := viper.New()

	options.SetDefault(LOG_LEVEL, "info")
	options.SetDefault(LOG_FORMAT, "text")
	options.SetDefault(NETWORK, "")
	options.SetDefault(ALGORITHM, "dijkstra")
	options.SetDefault(BENCH_AIRPORTS, 10000)
	options.SetDefault(BENCH_FANOUT, 3)
	options.SetDefault(BENCH_SEED, 42)
	options.SetDefault(BENCH_RUNS, 10)
	options.SetDefault(BENCH_BACKEND, "adjacency")
	options.SetDefault(METRICS_FILE, "")
	options.SetEnvPrefix(ENV_PREFIX)
	options.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	options.AutomaticEnv()

	if path != "" {
		options.SetConfigFile(path)
		options.SetConfigType("yaml")
		if err := options.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		LogLevel:  options.GetString(LOG_LEVEL),
		LogFormat: options.GetString(LOG_FORMAT),
		Network:   options.GetString(NETWORK),
		Algorithm: options.GetString(ALGORITHM),
		Bench: Bench{
			Airports:    options.GetInt(BENCH_AIRPORTS),
			Fanout:      options.GetInt(BENCH_FANOUT),
			Seed:        options.GetInt64(BENCH_SEED),
			Runs:        options.GetInt(BENCH_RUNS),
			Backend:     options.GetString(BENCH_BACKEND),
			MetricsFile: options.GetString(METRICS_FILE),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	switch c.Algorithm {
	case "dijkstra", "astar":
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalidConfig, ALGORITHM, c.Algorithm)
	}
	switch c.Bench.Backend {
	case "adjacency", "edgelist", "compact":
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalidConfig, BENCH_BACKEND, c.Bench.Backend)
	}
	if c.Bench.Airports < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidConfig, BENCH_AIRPORTS, c.Bench.Airports)
	}
	if c.Bench.Fanout < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidConfig, BENCH_FANOUT, c.Bench.Fanout)
	}
	if c.Bench.Runs < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidConfig, BENCH_RUNS, c.Bench.Runs)
	}

	return nil
}
