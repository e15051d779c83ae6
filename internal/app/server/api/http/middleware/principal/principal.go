// Package principal resolves the verified identity of a request to a local
// account.
package principal

import (
	"context"
	"net/http"

	"securenest/internal/app/server/api/http/httperr"
	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/domain/account"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Principal struct {
	accounts account.Servicer
	api      huma.API
	log      *slog.Logger
}

func New(api huma.API, accounts account.Servicer, log *slog.Logger) *Principal {
	return &Principal{
		accounts: accounts,
		api:      api,
		log:      log.With("component", "principal_middleware"),
	}
}

type contextKey string

const accountKey contextKey = "account"

// Middleware должен стоять после auth: ему нужна проверенная идентичность
func (p *Principal) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id, ok := auth.GetIdentity(ctx.Context())
		if !ok {
			if err := huma.WriteErr(p.api, ctx, http.StatusUnauthorized, httperr.MsgNoToken); err != nil {
				p.log.Error("failed to write response", "error", err)
			}
			return
		}

		acc, err := p.accounts.Resolve(ctx.Context(), id.Subject)
		if err != nil {
			httperr.Write(p.api, ctx, p.log, err)
			return
		}

		next(huma.WithContext(ctx, WithAccount(ctx.Context(), acc)))
	}
}

func WithAccount(ctx context.Context, acc account.Account) context.Context {
	return context.WithValue(ctx, accountKey, acc)
}

func GetAccount(ctx context.Context) (account.Account, bool) {
	acc, ok := ctx.Value(accountKey).(account.Account)
	return acc, ok
}
