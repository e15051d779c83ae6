package auth

import (
	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить локальные данные",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}
		ui.Success.Fprintln(cmd.OutOrStdout(), "✓ Токен и кэш удалены")
		return nil
	},
}
