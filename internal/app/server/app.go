// Package server wires configuration, storage and HTTP handlers into a
// running vault service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"securenest/internal/app/server/api"
	"securenest/internal/app/server/config"
	"securenest/internal/app/server/crypto"
	"securenest/internal/domain/account"
	"securenest/internal/domain/identity"
	"securenest/internal/domain/record"
	"securenest/internal/infrastructure/storage/postgres"

	"golang.org/x/exp/slog"
)

type App struct {
	config  *config.Config
	log     *slog.Logger
	storage *postgres.Storage
	server  *http.Server
}

// NewApp connects to the store and builds the router. The caller owns the
// returned App and must call Run, which closes the store on exit.
func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	cipher, err := crypto.NewServerEncryptor(cfg.Crypto.Key)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}

	verifier, err := NewVerifier(cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("identity init: %w", err)
	}

	store, err := postgres.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db init: %w", err)
	}

	timeout := store.QueryTimeout()
	accounts := account.NewService(postgres.NewAccountRepository(store.DB(), timeout, log), nil, log)
	records := record.NewService(postgres.NewRecordRepository(store.DB(), timeout, log), cipher, nil, log)

	mux := api.New(api.Deps{
		Accounts:     accounts,
		Records:      records,
		Verifier:     verifier,
		DB:           store,
		ClientOrigin: cfg.Server.ClientOrigin,
	}, log)

	return &App{
		config:  cfg,
		log:     log,
		storage: store,
		server: &http.Server{
			Addr:    cfg.Server.RunAddress,
			Handler: mux,
		},
	}, nil
}

// NewVerifier builds the token verifier from config. A public key path
// selects RS256, otherwise the HMAC secret is used.
func NewVerifier(cfg config.Identity) (*identity.JWTVerifier, error) {
	vc := identity.Config{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   cfg.Leeway,
	}

	if cfg.PublicKeyPath != "" {
		pub, err := identity.LoadPublicKey(cfg.PublicKeyPath)
		if err != nil {
			return nil, err
		}
		vc.PublicKey = pub
	} else {
		vc.HMACSecret = []byte(cfg.HMACSecret)
	}

	return identity.NewJWTVerifier(vc)
}

// Run serves until SIGINT/SIGTERM or ctx cancellation, then drains in-flight
// requests within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer func() {
		if err := a.storage.Close(); err != nil {
			a.log.Error("failed to close storage", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", "address", a.server.Addr, "env", a.config.Env)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}
