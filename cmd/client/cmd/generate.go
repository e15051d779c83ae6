package cmd

import (
	"fmt"
	"io"

	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client/passgen"

	"github.com/spf13/cobra"
)

var (
	genLength    int
	genNoUpper   bool
	genNoLower   bool
	genNoDigits  bool
	genNoSymbols bool
	genQuiet     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Сгенерировать случайный пароль",
	Long: `Генерирует пароль из криптографически стойкого источника случайности
и оценивает надёжность выбранных настроек.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := passgen.Options{
			Length:  genLength,
			Upper:   !genNoUpper,
			Lower:   !genNoLower,
			Digits:  !genNoDigits,
			Symbols: !genNoSymbols,
		}

		pw, err := passgen.Generate(opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if genQuiet {
			_, err := fmt.Fprintln(out, pw)
			return err
		}
		fmt.Fprintln(out, ui.Bold.Sprint(pw))
		printStrength(out, passgen.Rate(opts))
		return nil
	},
}

func printStrength(w io.Writer, s passgen.Strength) {
	c := ui.Error
	switch s {
	case passgen.VeryStrong, passgen.Strong:
		c = ui.Success
	case passgen.Medium:
		c = ui.Warn
	}
	fmt.Fprintf(w, "Надёжность: %s\n", c.Sprint(s.String()))
}

func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", passgen.DefaultLength, "длина пароля (8-32)")
	generateCmd.Flags().BoolVar(&genNoUpper, "no-upper", false, "без заглавных букв")
	generateCmd.Flags().BoolVar(&genNoLower, "no-lower", false, "без строчных букв")
	generateCmd.Flags().BoolVar(&genNoDigits, "no-digits", false, "без цифр")
	generateCmd.Flags().BoolVar(&genNoSymbols, "no-symbols", false, "без спецсимволов")
	generateCmd.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "печатать только пароль")
}
