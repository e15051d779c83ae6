package record

import (
	"context"
	"errors"
	"fmt"
	"io"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client"
	"securenest/internal/app/client/passgen"

	"github.com/spf13/cobra"
)

var (
	createTitle    string
	createUsername string
	createPassword string
	createURL      string
	createNotes    string
	createGenerate bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать запись",
	Long: `Сохраняет новую запись. Если пароль не передан флагом,
он будет запрошен без эха; --generate создаёт случайный пароль.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if createTitle == "" {
			return errors.New("укажите --title")
		}

		secret := createPassword
		switch {
		case createGenerate:
			if secret, err = passgen.Generate(passgen.Default()); err != nil {
				return err
			}
		case secret == "":
			if secret, err = ui.ReadSecret("Пароль: "); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		stop := ui.StartSpinner("Сохранение...")
		summary, err := app.CreateRecord(ctx, client.CreateRequest{
			Title:    createTitle,
			Username: createUsername,
			Password: secret,
			URL:      createURL,
			Notes:    createNotes,
		})
		if err != nil {
			stop(false, "Не удалось сохранить запись")
			return err
		}
		stop(true, "Запись сохранена")

		return ui.Render(cmd.OutOrStdout(), output, summary, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "ID: %s\n", summary.ID)
			if err == nil && createGenerate {
				_, err = fmt.Fprintf(w, "Сгенерированный пароль: %s\n", secret)
			}
			return err
		})
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "название (обязательно)")
	CreateCmd.Flags().StringVarP(&createUsername, "username", "u", "", "имя пользователя")
	CreateCmd.Flags().StringVar(&createPassword, "password", "", "пароль (небезопасно: попадёт в историю shell)")
	CreateCmd.Flags().StringVar(&createURL, "url", "", "адрес ресурса")
	CreateCmd.Flags().StringVarP(&createNotes, "notes", "n", "", "заметки")
	CreateCmd.Flags().BoolVarP(&createGenerate, "generate", "g", false, "сгенерировать пароль")
	CreateCmd.MarkFlagsMutuallyExclusive("password", "generate")
}
