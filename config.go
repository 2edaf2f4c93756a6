package hivedrive

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// StoreConfig selects and locates the metadata store backend.
type StoreConfig struct {
	// Backend is one of "badger", "localfs" or "memory". Defaults to badger.
	Backend string `mapstructure:"backend" json:"backend,omitempty" yaml:"backend,omitempty"`
	Dir     string `mapstructure:"dir" json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Config is the runtime configuration.
type Config struct {
	Store    StoreConfig `mapstructure:"store" json:"store,omitempty" yaml:"store,omitempty"`
	LogLevel string      `mapstructure:"logLevel" json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

const (
	// BackendBadger selects the badger KV backend
	BackendBadger = "badger"
	// BackendLocalFS selects the file-per-record backend
	BackendLocalFS = "localfs"
	// BackendMemory selects the in-process backend
	BackendMemory = "memory"
)

// DefaultConfig is used when no config file or environment is present.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendBadger,
			Dir:     ".hivedrive",
		},
		LogLevel: "info",
	}
}

// LoadConfig reads configuration from an explicit file, or from a
// hivedrive.yaml found in the working directory or $HOME/.hivedrive, with
// HIVEDRIVE_* environment variables taking precedence. A missing file is
// not an error: defaults apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(os.Getenv("HOME") + "/.hivedrive")
		v.SetConfigName("hivedrive")
	}
	v.SetEnvPrefix("hivedrive")
	v.AutomaticEnv()

	cfg := DefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		// only an explicitly named file is required to exist and parse
		if path != "" {
			return nil, errors.Wrap(err, "read config")
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}
