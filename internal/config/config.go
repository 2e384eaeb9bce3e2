// Package config loads dashbuilder settings.
// Precedence (highest to lowest): flags > env vars > config file > defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"dashbuilder/internal/kvstore"
	"dashbuilder/internal/persist"
)

const (
	// DefaultConfigFile is looked up in the working directory when no
	// --config flag is given.
	DefaultConfigFile = "dashbuilder.yaml"
	// EnvPrefix prefixes environment overrides, e.g. DASHBUILDER_BACKEND.
	EnvPrefix = "DASHBUILDER_"
	// DefaultLogFile is relative to the data directory.
	DefaultLogFile  = "dashbuilder.log"
	DefaultLogLevel = "info"
)

// Config holds all settings.
type Config struct {
	DataDir     string `koanf:"data_dir"`
	Backend     string `koanf:"backend"`
	StorageKey  string `koanf:"storage_key"`
	QuotaBytes  int    `koanf:"quota_bytes"`
	LogFile     string `koanf:"log_file"`
	LogLevel    string `koanf:"log_level"`
	Verbose     bool   `koanf:"verbose"`
	ShowSidebar bool   `koanf:"show_sidebar"`

	// ConfigFile is the file that was read, if any.
	ConfigFile string `koanf:"-"`
}

// StoreOptions returns the kvstore options for this config.
func (c *Config) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Backend:    kvstore.Backend(c.Backend),
		DataDir:    c.DataDir,
		QuotaBytes: c.QuotaBytes,
	}
}

// BindFlags registers the flags Load understands on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ./"+DefaultConfigFile+")")
	fs.String("data-dir", "", "directory for saved layouts (default ~/"+kvstore.DefaultDataBase+")")
	fs.String("backend", string(kvstore.BackendFile), "storage backend: file, sqlite or memory")
	fs.String("key", persist.DefaultKey, "storage key for the layout")
	fs.Int("quota", 0, "maximum saved layout size in bytes (0 = unlimited)")
	fs.String("log-file", "", "log file (default <data-dir>/"+DefaultLogFile+")")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.BoolP("verbose", "v", false, "enable debug logging")
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"data-dir":  "data_dir",
	"key":       "storage_key",
	"quota":     "quota_bytes",
	"log-file":  "log_file",
	"log-level": "log_level",
}

// Load reads configuration from defaults, the config file, DASHBUILDER_*
// env vars and explicitly set flags. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"backend":      string(kvstore.BackendFile),
		"storage_key":  persist.DefaultKey,
		"quota_bytes":  0,
		"log_level":    DefaultLogLevel,
		"verbose":      false,
		"show_sidebar": true,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	cfgFile := ""
	if fs != nil {
		cfgFile, _ = fs.GetString("config")
	}
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = DefaultConfigFile
	}
	if _, err := os.Stat(cfgFile); err == nil {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
	} else {
		cfgFile = ""
	}

	// 3. Environment (DASHBUILDER_DATA_DIR -> data_dir)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = cfgFile

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve fills derived defaults and validates.
func (c *Config) resolve() error {
	switch kvstore.Backend(c.Backend) {
	case kvstore.BackendFile, kvstore.BackendSQLite, kvstore.BackendMemory:
	default:
		return fmt.Errorf("invalid backend %q (want file, sqlite or memory)", c.Backend)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("invalid quota %d", c.QuotaBytes)
	}
	if c.DataDir == "" {
		dir, err := kvstore.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		c.DataDir = dir
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, DefaultLogFile)
	}
	if c.Verbose {
		c.LogLevel = "debug"
	}
	return nil
}
