package auth

import (
	"context"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var loginToken string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в SecureNest",
	Long: `Проверяет токен на сервере и сохраняет его локально
для последующих команд.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		// Токен из --token или SECURENEST_TOKEN уже установлен в приложении
		tok := loginToken
		if tok == "" && !app.IsAuthenticated() {
			if tok, err = promptToken(""); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		stop := ui.StartSpinner("Аутентификация...")
		user, err := app.Login(ctx, tok)
		if err != nil {
			stop(false, "Вход не выполнен")
			return err
		}
		stop(true, "Вход выполнен")

		printUser(cmd.OutOrStdout(), user)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVar(&loginToken, "id-token", "", "токен провайдера (иначе будет запрошен)")
}
