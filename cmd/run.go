package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/factdrill/internal/app"
	"github.com/abhisek/factdrill/internal/config"
	"github.com/abhisek/factdrill/internal/logging"
	"github.com/abhisek/factdrill/internal/session"
)

// runApp loads settings, opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting",
		zap.String("version", version),
		zap.String("config_file", cfg.File),
		zap.String("db", cfg.DBPath))

	persist, closeStore := openPersistence(cfg, cmd.ErrOrStderr(), logger)
	defer closeStore()

	ctrl, err := session.New(ctx, session.Options{
		Curriculum:  cfg.Curriculum,
		TimerLimit:  cfg.Timer,
		Persistence: persist,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return app.Run(ctx, app.Options{
		Controller: ctrl,
		Logger:     logger,
	})
}

// openPersistence opens durable storage. When that fails the drill still
// runs: progress is kept in memory and a warning is printed.
func openPersistence(cfg *config.Config, stderr io.Writer, logger *zap.Logger) (session.Persistence, func()) {
	st, err := openStore(cfg)
	if err != nil {
		logger.Warn("store unavailable, progress will not be saved",
			zap.String("db", cfg.DBPath), zap.Error(err))
		fmt.Fprintf(stderr, "warning: %v\nProgress will not be saved this session.\n", err)
		return session.NewMemoryPersistence(), func() {}
	}
	return session.NewRepoPersistence(st.CompletedUnitRepo(), logger), func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}
}
