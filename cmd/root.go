package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/factdrill/internal/config"
	"github.com/abhisek/factdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "factdrill",
	Short: "Adaptive addition and subtraction fact drill",
	Long: "factdrill drills addition and subtraction facts up to 20 in the terminal.\n" +
		"Facts you miss come back more often; facts you know cool down until every one is mastered.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FACTDRILL_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the JSON log file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.Flags().String("curriculum", "", "Curriculum to open with (addition or subtraction)")
	rootCmd.Flags().Int("timer", 0, "Seconds allowed per question")

	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings for cmd from its flags, the environment
// and the config file named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), file)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore creates the database directory if needed and opens the store.
func openStore(cfg *config.Config) (*store.Store, error) {
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
