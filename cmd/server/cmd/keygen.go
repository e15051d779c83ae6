package cmd

import (
	"fmt"

	"securenest/internal/app/server/crypto"

	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Сгенерировать ключ шифрования для ENCRYPTION_KEY",
	Long: `Печатает случайный 256-битный ключ в hex. Ключ нужно сохранить:
без него ранее зашифрованные секреты не расшифровать.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := crypto.GenerateKey(nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key.Hex())
		return nil
	},
}
