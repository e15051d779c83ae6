package account

import (
	"context"

	"securenest/internal/app/server/api/http/httperr"
	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/domain/account"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    account.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler expects middleware to include token verification but not account
// resolution: signup runs before an account exists.
func NewHandler(service account.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) signup(ctx context.Context, input *signupInput) (*output, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized(httperr.MsgNoToken)
	}

	var body signupRequest
	if input.Body != nil {
		body = *input.Body
	}

	// проверенный email из токена важнее email из тела запроса
	email := id.Email
	if email == "" {
		email = body.Email
	}

	acc, err := h.service.Create(ctx, id.Subject, email, body.Name)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &output{
		Body: authResponse{
			Message: "User created successfully",
			User:    toPayload(acc),
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, _ *loginInput) (*output, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized(httperr.MsgNoToken)
	}

	acc, err := h.service.Resolve(ctx, id.Subject)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &output{
		Body: authResponse{
			Message: "Login successful",
			User:    toPayload(acc),
		},
	}, nil
}
