package record

import (
	"context"
	"fmt"
	"io"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	updateTitle       string
	updateUsername    string
	updatePassword    string
	updateURL         string
	updateNotes       string
	updateAskPassword bool
	clearUsername     bool
	clearURL          bool
	clearNotes        bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить запись",
	Long: `Отправляет на сервер только явно указанные поля.
Флаги --clear-* очищают необязательные поля.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		req, err := buildUpdate(cmd.Flags())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		stop := ui.StartSpinner("Обновление...")
		summary, err := app.UpdateRecord(ctx, args[0], req)
		if err != nil {
			stop(false, "Не удалось обновить запись")
			return err
		}
		stop(true, "Запись обновлена")

		return ui.Render(cmd.OutOrStdout(), output, summary, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "ID: %s\n", summary.ID)
			return err
		})
	},
}

// buildUpdate собирает частичное обновление из явно заданных флагов
func buildUpdate(flags *pflag.FlagSet) (client.UpdateRequest, error) {
	var req client.UpdateRequest
	empty := ""

	if flags.Changed("title") {
		req.Title = &updateTitle
	}
	if flags.Changed("username") {
		req.Username = &updateUsername
	}
	if clearUsername {
		req.Username = &empty
	}
	if flags.Changed("url") {
		req.URL = &updateURL
	}
	if clearURL {
		req.URL = &empty
	}
	if flags.Changed("notes") {
		req.Notes = &updateNotes
	}
	if clearNotes {
		req.Notes = &empty
	}
	if flags.Changed("password") {
		req.Password = &updatePassword
	}
	if updateAskPassword {
		secret, err := ui.ReadSecret("Новый пароль: ")
		if err != nil {
			return client.UpdateRequest{}, err
		}
		req.Password = &secret
	}

	if req.IsEmpty() {
		return client.UpdateRequest{}, client.ErrEmptyUpdate
	}
	return req, nil
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "новое название")
	UpdateCmd.Flags().StringVarP(&updateUsername, "username", "u", "", "новое имя пользователя")
	UpdateCmd.Flags().StringVar(&updatePassword, "password", "", "новый пароль (небезопасно: попадёт в историю shell)")
	UpdateCmd.Flags().BoolVarP(&updateAskPassword, "ask-password", "P", false, "запросить новый пароль без эха")
	UpdateCmd.Flags().StringVar(&updateURL, "url", "", "новый адрес")
	UpdateCmd.Flags().StringVarP(&updateNotes, "notes", "n", "", "новые заметки")
	UpdateCmd.Flags().BoolVar(&clearUsername, "clear-username", false, "очистить имя пользователя")
	UpdateCmd.Flags().BoolVar(&clearURL, "clear-url", false, "очистить адрес")
	UpdateCmd.Flags().BoolVar(&clearNotes, "clear-notes", false, "очистить заметки")
	UpdateCmd.MarkFlagsMutuallyExclusive("username", "clear-username")
	UpdateCmd.MarkFlagsMutuallyExclusive("url", "clear-url")
	UpdateCmd.MarkFlagsMutuallyExclusive("notes", "clear-notes")
	UpdateCmd.MarkFlagsMutuallyExclusive("password", "ask-password")
}
