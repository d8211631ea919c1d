package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configFile mirrors the keys read from config.toml.
type configFile struct {
	Curriculum string    `toml:"curriculum"`
	Timer      int       `toml:"timer"`
	DB         string    `toml:"db"`
	Log        logConfig `toml:"log"`
}

type logConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.File != "" {
			fmt.Fprintf(out, "# read from %s\n", cfg.File)
		}
		b, err := toml.Marshal(configFile{
			Curriculum: string(cfg.Curriculum),
			Timer:      cfg.Timer,
			DB:         cfg.DBPath,
			Log: logConfig{
				File:  cfg.LogFile,
				Level: cfg.LogLevel,
			},
		})
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = out.Write(b)
		return err
	},
}
