package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"securenest/internal/app/client/config"

	"golang.org/x/exp/slog"
)

// ErrEmptyUpdate - в запросе на обновление нет ни одного поля
var ErrEmptyUpdate = errors.New("не указано ни одного поля для обновления")

type App struct {
	config *config.Config
	log    *slog.Logger
	http   *httpClient
	cache  *Cache
	tokens *TokenStore
	now    func() time.Time
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Инициализируем локальный кэш; без него работаем только онлайн
	cache, err := NewCache(cfg.CachePath)
	if err != nil {
		log.Warn("Не удалось открыть локальный кэш", "error", err)
		cache = nil
	}

	app := &App{
		config: cfg,
		log:    log,
		http:   newHTTPClient(cfg.BaseURL(), cfg.RequestTimeout, log),
		cache:  cache,
		tokens: NewTokenStore(cfg.TokenPath),
		now:    time.Now,
	}

	// Загружаем токен если он есть
	if token, err := app.tokens.Load(); err == nil {
		app.http.SetToken(token)
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

func (a *App) Close() error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Close()
}

// UseToken задаёт токен на время текущего запуска, не сохраняя его
func (a *App) UseToken(token string) {
	if token != "" {
		a.http.SetToken(token)
	}
}

func (a *App) IsAuthenticated() bool {
	return a.http.token != ""
}

func (a *App) requireToken() error {
	if !a.IsAuthenticated() {
		return ErrNoToken
	}
	return nil
}

func (a *App) Health(ctx context.Context) error {
	return a.http.Health(ctx)
}

// Signup создаёт аккаунт для токена и сохраняет токен при успехе
func (a *App) Signup(ctx context.Context, token, email string, name *string) (User, error) {
	a.UseToken(token)
	if err := a.requireToken(); err != nil {
		return User{}, err
	}

	user, err := a.http.Signup(ctx, email, name)
	if err != nil {
		return User{}, err
	}
	if err := a.tokens.Save(a.http.token); err != nil {
		return user, err
	}
	return user, nil
}

// Login проверяет токен на сервере и сохраняет его при успехе
func (a *App) Login(ctx context.Context, token string) (User, error) {
	a.UseToken(token)
	if err := a.requireToken(); err != nil {
		return User{}, err
	}

	user, err := a.http.Login(ctx)
	if err != nil {
		return User{}, err
	}
	if err := a.tokens.Save(a.http.token); err != nil {
		return user, err
	}
	return user, nil
}

// Whoami возвращает профиль текущего пользователя
func (a *App) Whoami(ctx context.Context) (User, error) {
	if err := a.requireToken(); err != nil {
		return User{}, err
	}
	return a.http.Login(ctx)
}

// Logout удаляет сохранённый токен и очищает кэш
func (a *App) Logout(ctx context.Context) error {
	a.http.SetToken("")
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	if a.cache != nil {
		if err := a.cache.Clear(ctx); err != nil {
			return fmt.Errorf("ошибка очистки кэша: %w", err)
		}
	}
	return nil
}

type ListOptions struct {
	Search  string
	Offline bool
}

type ListResult struct {
	Items       []Summary
	FromCache   bool
	RefreshedAt time.Time
}

// ListRecords получает список с сервера и обновляет кэш.
// В офлайн-режиме список читается из кэша.
func (a *App) ListRecords(ctx context.Context, opts ListOptions) (ListResult, error) {
	if opts.Offline {
		return a.listCached(ctx, opts.Search)
	}

	if err := a.requireToken(); err != nil {
		return ListResult{}, err
	}

	items, err := a.http.ListPasswords(ctx)
	if err != nil {
		return ListResult{}, err
	}

	now := a.now()
	if a.cache != nil {
		if err := a.cache.Replace(ctx, items, now); err != nil {
			a.log.Warn("Не удалось обновить кэш", "error", err)
		}
	}

	return ListResult{Items: Filter(items, opts.Search), RefreshedAt: now}, nil
}

func (a *App) listCached(ctx context.Context, search string) (ListResult, error) {
	if a.cache == nil {
		return ListResult{}, errors.New("локальный кэш недоступен")
	}

	items, err := a.cache.List(ctx)
	if err != nil {
		return ListResult{}, err
	}
	at, _, err := a.cache.RefreshedAt(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Items: Filter(items, search), FromCache: true, RefreshedAt: at}, nil
}

func (a *App) GetRecord(ctx context.Context, id string) (Detail, error) {
	if err := a.requireToken(); err != nil {
		return Detail{}, err
	}
	return a.http.GetPassword(ctx, id)
}

func (a *App) CreateRecord(ctx context.Context, req CreateRequest) (Summary, error) {
	if err := a.requireToken(); err != nil {
		return Summary{}, err
	}
	return a.http.CreatePassword(ctx, req)
}

func (a *App) UpdateRecord(ctx context.Context, id string, req UpdateRequest) (Summary, error) {
	if req.IsEmpty() {
		return Summary{}, ErrEmptyUpdate
	}
	if err := a.requireToken(); err != nil {
		return Summary{}, err
	}
	return a.http.UpdatePassword(ctx, id, req)
}

func (a *App) DeleteRecord(ctx context.Context, id string) error {
	if err := a.requireToken(); err != nil {
		return err
	}
	if err := a.http.DeletePassword(ctx, id); err != nil {
		return err
	}
	if a.cache != nil {
		if err := a.cache.Remove(ctx, id); err != nil {
			a.log.Warn("Не удалось удалить запись из кэша", "id", id, "error", err)
		}
	}
	return nil
}
