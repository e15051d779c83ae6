package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"securenest/cmd/client/cmd/types"
	"securenest/cmd/client/cmd/ui"
	"securenest/internal/app/client"
	"securenest/internal/app/client/config"
	"securenest/internal/utils/logger"

	"github.com/spf13/cobra"
)

const tokenEnv = "SECURENEST_TOKEN"

var (
	cfgFile   string
	debug     bool
	serverURL string
	token     string
	app       *client.App
)

var rootCmd = &cobra.Command{
	Use:   "securenest",
	Short: "SecureNest - клиент хранилища учётных данных",
	Long: `SecureNest хранит ваши логины и пароли на сервере в зашифрованном виде.

Для работы нужен токен провайдера идентичности: передайте его флагом --token,
переменной окружения SECURENEST_TOKEN или выполните securenest auth login.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error.Sprint("Ошибка:"), err)
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Токен недействителен или истёк. Выполните: securenest auth login")
		}
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}

	log := logger.NewWithLevel(cfg.Env, level)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Токен из флага важнее токена из окружения и сохранённого файла
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	app.UseToken(token)

	cmd.SetContext(types.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера SecureNest (host:port)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "токен провайдера идентичности")
}

const requestTimeout = 30 * time.Second
