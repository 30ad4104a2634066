// Package config loads client configuration from a YAML file, environment
// variables, and flags, with viper handling the precedence
// (flag > env > file > default).
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/basketeer/basketeer/internal/errors"
)

// Defaults
const (
	DefaultAPIURL   = "http://localhost:8000"
	DefaultTimeout  = 30 * time.Second
	DefaultOutput   = "text"
	DefaultLogLevel = "warn"
)

// Config holds the client configuration
type Config struct {
	APIURL    string        `mapstructure:"api_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Output    string        `mapstructure:"output"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
}

// Load reads configuration. cfgFile overrides the default location
// (~/.config/basketeer/config.yaml); flags, when non-nil, are bound so
// explicitly-set flags win over everything else.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("BASKETEER")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "basketeer"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not,
		// and neither is a broken file at the default location.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.Wrap(errors.ErrCodeConfigRead, "failed to read config file", err)
		}
	}

	if flags != nil {
		// A config key binds to the flag of the same name, or its
		// dashed spelling (api_url -> --api-url).
		for _, key := range []string{"api_url", "timeout", "output", "log_level", "log_format"} {
			flag := flags.Lookup(key)
			if flag == nil {
				flag = flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			}
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "failed to bind flags", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "invalid configuration", err)
	}

	if cfg.Timeout <= 0 {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "timeout must be positive")
	}

	return &cfg, nil
}
