//GET    /health               # Проверка живости (публичный)
//POST   /api/auth/signup      # Регистрация аккаунта (bearer)
//POST   /api/auth/login       # Вход, возвращает профиль (bearer)
//GET    /api/passwords        # Список записей (bearer + аккаунт)
//POST   /api/passwords        # Создать запись (bearer + аккаунт)
//GET    /api/passwords/{id}   # Получить запись с секретом (bearer + аккаунт)
//PUT    /api/passwords/{id}   # Частично обновить запись (bearer + аккаунт)
//DELETE /api/passwords/{id}   # Удалить запись (bearer + аккаунт)

package api

import (
	"net/http"

	accountAPI "securenest/internal/app/server/api/http/account"
	healthAPI "securenest/internal/app/server/api/http/health"
	"securenest/internal/app/server/api/http/middleware"
	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/app/server/api/http/middleware/logger"
	"securenest/internal/app/server/api/http/middleware/principal"
	recordAPI "securenest/internal/app/server/api/http/record"
	"securenest/internal/domain/account"
	"securenest/internal/domain/identity"
	"securenest/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

// Deps - всё, что нужно роутеру от слоя приложения
type Deps struct {
	Accounts     account.Servicer
	Records      record.Servicer
	Verifier     identity.Verifier
	DB           healthAPI.Pinger
	ClientOrigin string
}

type Handlers struct {
	Health  *healthAPI.Handler
	Account *accountAPI.Handler
	Record  *recordAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	if deps.ClientOrigin != "" {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{deps.ClientOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	config := huma.DefaultConfig("SecureNest API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(API, deps, log)
	h.Health.SetupRoutes(API)
	h.Account.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(api huma.API, deps Deps, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	authMW := auth.New(api, deps.Verifier, log)
	principalMW := principal.New(api, deps.Accounts, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(deps.DB, log, middlewares.GetAllAndClear())

	// Регистрация и вход: токен нужен, аккаунт ещё может не существовать
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	accountHandler := accountAPI.NewHandler(deps.Accounts, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware(), principalMW.Middleware())
	recordHandler := recordAPI.NewHandler(deps.Records, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Account: accountHandler,
		Record:  recordHandler,
	}
}
