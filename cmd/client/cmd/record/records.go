package record

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client"

	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

var output string

// RecordCmd - родительская команда для всех операций с записями
var RecordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"records", "password", "passwords"},
	Short:   "Управление записями",
	Long:    `Создание, просмотр, изменение и удаление сохранённых учётных данных.`,
}

func init() {
	RecordCmd.PersistentFlags().StringVarP(&output, "output", "o", ui.FormatText, "формат вывода: text, json, yaml")
}

func printTable(w io.Writer, items []client.Summary) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Записей нет")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tНАЗВАНИЕ\tПОЛЬЗОВАТЕЛЬ\tURL\tИЗМЕНЕНА")
	for _, s := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Title, ui.Deref(s.Username), ui.Deref(s.URL),
			s.UpdatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func printDetail(w io.Writer, d client.Detail, showPassword bool) error {
	secret := "********"
	if showPassword {
		secret = d.Password
	}
	fmt.Fprintf(w, "ID:            %s\n", d.ID)
	fmt.Fprintf(w, "Название:      %s\n", d.Title)
	fmt.Fprintf(w, "Пользователь:  %s\n", ui.Deref(d.Username))
	fmt.Fprintf(w, "Пароль:        %s\n", secret)
	fmt.Fprintf(w, "URL:           %s\n", ui.Deref(d.URL))
	fmt.Fprintf(w, "Заметки:       %s\n", ui.Deref(d.Notes))
	fmt.Fprintf(w, "Создана:       %s\n", d.CreatedAt.Local().Format(time.DateTime))
	_, err := fmt.Fprintf(w, "Изменена:      %s\n", d.UpdatedAt.Local().Format(time.DateTime))
	return err
}
