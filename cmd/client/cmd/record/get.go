package record

import (
	"context"
	"io"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var showPassword bool

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать запись",
	Long: `Показывает запись. Пароль скрыт, пока не указан --show-password.
В форматах json и yaml пароль выводится всегда.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		detail, err := app.GetRecord(ctx, args[0])
		if err != nil {
			return err
		}

		return ui.Render(cmd.OutOrStdout(), output, detail, func(w io.Writer) error {
			return printDetail(w, detail, showPassword)
		})
	},
}

func init() {
	GetCmd.Flags().BoolVarP(&showPassword, "show-password", "p", false, "показать пароль")
}
