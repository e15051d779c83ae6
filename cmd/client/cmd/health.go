package cmd

import (
	"context"
	"fmt"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		stop := ui.StartSpinner("Проверка соединения с сервером...")
		if err := app.Health(ctx); err != nil {
			stop(false, "Сервер недоступен")
			return err
		}
		stop(true, "Сервер доступен")
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}
