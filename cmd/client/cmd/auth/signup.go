package auth

import (
	"context"
	"fmt"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var (
	signupEmail string
	signupName  string
	signupToken string
)

var SignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Создать аккаунт SecureNest",
	Long: `Создаёт аккаунт для пользователя, которому выдан токен.
Email из токена важнее указанного флагом.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		// Без сохранённого токена и флага спрашиваем токен
		tok := signupToken
		if tok == "" && !app.IsAuthenticated() {
			if tok, err = promptToken(""); err != nil {
				return err
			}
		}

		var name *string
		if cmd.Flags().Changed("name") {
			name = &signupName
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		stop := ui.StartSpinner("Регистрация...")
		user, err := app.Signup(ctx, tok, signupEmail, name)
		if err != nil {
			stop(false, "Регистрация не удалась")
			return err
		}
		stop(true, "Аккаунт создан")

		printUser(cmd.OutOrStdout(), user)
		fmt.Fprintln(cmd.OutOrStdout(), "\nСоздайте первую запись: securenest record create --title ...")
		return nil
	},
}

func init() {
	SignupCmd.Flags().StringVar(&signupEmail, "email", "", "email, если токен его не содержит")
	SignupCmd.Flags().StringVar(&signupName, "name", "", "отображаемое имя")
	SignupCmd.Flags().StringVar(&signupToken, "id-token", "", "токен провайдера (иначе будет запрошен)")
}
