package cmd

import (
	"fmt"

	"securenest/internal/app/server/config"
	"securenest/internal/infrastructure/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Управление схемой базы данных",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все миграции",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := config.LoadDB()
		if err != nil {
			return err
		}
		if err := migration.NewMigration(db, nil).Up(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Миграции применены")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить все миграции",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := config.LoadDB()
		if err != nil {
			return err
		}
		if err := migration.NewMigration(db, nil).Down(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Миграции откачены")
		return nil
	},
}
