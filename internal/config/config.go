// Package config resolves runtime settings from flags, environment,
// an optional TOML file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/factdrill/internal/curriculum"
)

// AppName names the XDG subdirectories and the env prefix.
const AppName = "factdrill"

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "FACTDRILL"
)

// Setting keys. Nested keys map to TOML tables and to env vars with the
// dot replaced by an underscore (log.file is FACTDRILL_LOG_FILE).
const (
	KeyCurriculum = "curriculum"
	KeyTimer      = "timer"
	KeyDB         = "db"
	KeyLogFile    = "log.file"
	KeyLogLevel   = "log.level"
)

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"curriculum": KeyCurriculum,
	"timer":      KeyTimer,
	"db":         KeyDB,
	"log-file":   KeyLogFile,
	"log-level":  KeyLogLevel,
}

// Config holds resolved settings.
type Config struct {
	Curriculum curriculum.Key
	Timer      int
	DBPath     string
	LogFile    string
	LogLevel   string

	// File is the config file that was read, empty when none was found.
	File string
}

// Load resolves settings with precedence flags > env > file > defaults.
// An explicit configFile must exist; the default location may be absent.
// flags may be nil.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyCurriculum, string(curriculum.KeyAddition))
	v.SetDefault(KeyTimer, 10)
	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeyLogFile, DefaultLogPath())
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Curriculum: curriculum.Key(strings.ToLower(strings.TrimSpace(v.GetString(KeyCurriculum)))),
		Timer:      v.GetInt(KeyTimer),
		DBPath:     v.GetString(KeyDB),
		LogFile:    v.GetString(KeyLogFile),
		LogLevel:   strings.ToLower(v.GetString(KeyLogLevel)),
		File:       v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	known := false
	for _, k := range curriculum.AllKeys() {
		if k == c.Curriculum {
			known = true
		}
	}
	if !known {
		errs = append(errs, fmt.Errorf("%s: unknown curriculum %q", KeyCurriculum, c.Curriculum))
	}
	if c.Timer <= 0 {
		errs = append(errs, fmt.Errorf("%s: must be a positive number of seconds, got %d", KeyTimer, c.Timer))
	}
	if c.DBPath == "" {
		errs = append(errs, fmt.Errorf("%s: path is empty", KeyDB))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyLogLevel, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
