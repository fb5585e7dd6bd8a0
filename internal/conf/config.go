package conf

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config - Runtime configuration of a run.
//   - TableSize is the number of buckets of every table
//   - DataDir is the directory Files are resolved against
//   - Files is the input set, one table is mapped per file
//   - InsertPolicy is "append" (default) or "update"
//   - LogLevel is one of debug, info, warn or error
//   - HistoryDB is an optional path to a SQLite run history, empty disables it
type Config struct {
	TableSize    int64    `yaml:"table_size"`
	DataDir      string   `yaml:"data_dir"`
	Files        []string `yaml:"files"`
	InsertPolicy string   `yaml:"insert_policy"`
	LogLevel     string   `yaml:"log_level"`
	HistoryDB    string   `yaml:"history_db"`
}

// Default - Returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		TableSize:    TableSize,
		DataDir:      DefaultDataDir,
		Files:        DefaultFiles(),
		InsertPolicy: "append",
		LogLevel:     DefaultLogLevel,
	}
}

// Load - Reads a YAML configuration file on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return config, nil
}

// Validate - Checks the values that can't be defaulted
func (c *Config) Validate() error {
	if c.TableSize < 1 {
		return errors.Newf("table_size must be 1 or higher, got %d", c.TableSize)
	}
	switch c.InsertPolicy {
	case "", "append", "update":
	default:
		return errors.Newf("insert_policy must be \"append\" or \"update\", got %q", c.InsertPolicy)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Paths - Returns Files resolved against DataDir, absolute entries are kept as they are
func (c *Config) Paths() []string {
	paths := make([]string, len(c.Files))
	for i, f := range c.Files {
		if filepath.IsAbs(f) || c.DataDir == "" {
			paths[i] = f
			continue
		}
		paths[i] = filepath.Join(c.DataDir, f)
	}

	return paths
}

// ParseLogLevel - Maps a level name to a slog level, empty selects DefaultLogLevel
func ParseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		name = DefaultLogLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return level, errors.Newf("unknown log level %q", name)
	}

	return level, nil
}
