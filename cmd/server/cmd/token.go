package cmd

import (
	"errors"
	"fmt"
	"time"

	"securenest/internal/app/server/config"
	"securenest/internal/domain/identity"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenEmail   string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Выпустить токен идентичности для локальной разработки",
	Long: `Подписывает HS256 токен секретом IDENTITY_HMAC_SECRET.
В production токены выдаёт внешний провайдер.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		idCfg := config.LoadIdentity()
		if idCfg.HMACSecret == "" {
			return errors.New("IDENTITY_HMAC_SECRET is not set")
		}

		issuer, err := identity.NewIssuer([]byte(idCfg.HMACSecret), idCfg.Issuer, idCfg.Audience, nil)
		if err != nil {
			return err
		}

		token, err := issuer.Issue(tokenSubject, tokenEmail, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "идентификатор пользователя (sub)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email пользователя")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "время жизни токена")
	_ = tokenCmd.MarkFlagRequired("subject")
}
