package record

import (
	"context"

	"securenest/internal/app/server/api/http/httperr"
	"securenest/internal/app/server/api/http/middleware/principal"
	"securenest/internal/domain/account"
	"securenest/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	acc, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := h.service.List(ctx, acc)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &listOutput{
		Body: listResponse{Passwords: summaries},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*summaryOutput, error) {
	acc, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := h.service.Create(ctx, acc, input.Body.toInput())
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &summaryOutput{
		Body: summaryResponse{
			Message:  "Password saved successfully",
			Password: summary,
		},
	}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*getOutput, error) {
	acc, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	detail, err := h.service.Get(ctx, acc, id)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &getOutput{
		Body: getResponse{Password: detail},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*summaryOutput, error) {
	acc, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	summary, err := h.service.Update(ctx, acc, id, input.Body.toPatch())
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &summaryOutput{
		Body: summaryResponse{
			Message:  "Password updated successfully",
			Password: summary,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*messageOutput, error) {
	acc, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, acc, id); err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "Password deleted successfully"},
	}, nil
}

func owner(ctx context.Context) (account.Account, error) {
	acc, ok := principal.GetAccount(ctx)
	if !ok {
		return account.Account{}, huma.Error401Unauthorized(httperr.MsgNoToken)
	}
	return acc, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, httperr.InvalidField("path.id", "Invalid password ID", raw)
	}
	return id, nil
}
