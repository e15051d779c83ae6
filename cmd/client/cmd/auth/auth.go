package auth

import (
	"fmt"
	"io"
	"time"

	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client"

	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

// AuthCmd - родительская команда для всех операций с аккаунтом
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление аккаунтом",
	Long:  `Регистрация, вход по токену провайдера идентичности, выход.`,
}

// promptToken берёт токен из аргумента или спрашивает его без эха
func promptToken(given string) (string, error) {
	if given != "" {
		return given, nil
	}
	return ui.ReadSecret("Токен провайдера идентичности: ")
}

func printUser(w io.Writer, u client.User) {
	fmt.Fprintf(w, "ID:      %s\n", u.ID)
	fmt.Fprintf(w, "Email:   %s\n", u.Email)
	fmt.Fprintf(w, "Имя:     %s\n", ui.Deref(u.Name))
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Создан:  %s\n", u.CreatedAt.Local().Format(time.DateTime))
	}
}
