package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"securenest/internal/app/server/api/http/httperr"
	"securenest/internal/domain/identity"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Auth struct {
	verifier identity.Verifier
	api      huma.API
	log      *slog.Logger
}

func New(api huma.API, verifier identity.Verifier, log *slog.Logger) *Auth {
	return &Auth{
		verifier: verifier,
		api:      api,
		log:      log.With("component", "auth_middleware"),
	}
}

type contextKey string

const identityKey contextKey = "identity"

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			a.unauthorized(ctx, httperr.MsgNoToken)
			return
		}

		// Проверяем токен у провайдера идентичности
		id, err := a.verifier.Verify(ctx.Context(), token)
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			msg := httperr.MsgInvalidToken
			if errors.Is(err, identity.ErrExpiredCredential) {
				msg = httperr.MsgExpiredToken
			}
			a.unauthorized(ctx, msg)
			return
		}

		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), id)))
	}
}

func (a *Auth) unauthorized(ctx huma.Context, msg string) {
	ctx.SetHeader("WWW-Authenticate", "Bearer")
	if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, msg); err != nil {
		a.log.Error("failed to write response", "error", err)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithIdentity(ctx context.Context, id identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func GetIdentity(ctx context.Context) (identity.Identity, bool) {
	id, ok := ctx.Value(identityKey).(identity.Identity)
	return id, ok
}
