package record

import (
	"context"
	"fmt"
	"io"
	"time"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client"

	"github.com/spf13/cobra"
)

var (
	listSearch  string
	listOffline bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей без паролей",
	Long: `Загружает список записей с сервера и обновляет локальный кэш.
С флагом --offline список читается из кэша.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		res, err := app.ListRecords(ctx, client.ListOptions{Search: listSearch, Offline: listOffline})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		return ui.Render(out, output, res.Items, func(w io.Writer) error {
			if res.FromCache {
				at := "никогда"
				if !res.RefreshedAt.IsZero() {
					at = res.RefreshedAt.Local().Format(time.DateTime)
				}
				ui.Warn.Fprintf(w, "Данные из кэша, обновлены: %s\n", at)
			}
			if err := printTable(w, res.Items); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "\nВсего: %d\n", len(res.Items))
			return err
		})
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по названию, пользователю и URL")
	ListCmd.Flags().BoolVar(&listOffline, "offline", false, "читать из локального кэша")
}
