package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler creates the health handler. db may be nil, in which case only
// process liveness is reported.
func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	database := "unchecked"
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Warn("health check: database unreachable", "error", err)
			return nil, huma.Error503ServiceUnavailable("Database unavailable")
		}
		database = "up"
	}

	return &Output{
		Body: Response{
			Status:   "OK",
			Message:  "SecureNest API is running",
			Database: database,
		},
	}, nil
}
