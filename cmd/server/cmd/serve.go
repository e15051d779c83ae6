package cmd

import (
	"fmt"

	"securenest/internal/app/server"
	"securenest/internal/app/server/config"
	"securenest/internal/infrastructure/migration"
	"securenest/internal/utils/logger"

	"github.com/spf13/cobra"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Без ключа шифрования сервер не стартует
	cfg := config.MustLoad()
	log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)

	if !skipMigrations {
		if err := migration.NewMigration(cfg.DB, nil).Up(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		log.Info("migrations applied")
	}

	app, err := server.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context())
}

func init() {
	// serve и корневая команда запускают один и тот же сервер
	rootCmd.PersistentFlags().BoolVar(&skipMigrations, "skip-migrations", false, "не применять миграции при старте")
}
