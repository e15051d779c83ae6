package record

import (
	"context"
	"fmt"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"

	"github.com/spf13/cobra"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if !deleteYes {
			fmt.Fprintf(cmd.ErrOrStderr(), "Удалить запись %s? [y/N]: ", args[0])
			var answer string
			_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
			if answer != "y" && answer != "Y" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Отменено")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		if err := app.DeleteRecord(ctx, args[0]); err != nil {
			return err
		}
		ui.Success.Fprintln(cmd.OutOrStdout(), "✓ Запись удалена")
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
