package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// ErrUnauthorized - сервер отверг токен или токен не задан
var ErrUnauthorized = errors.New("не авторизован")

// FieldError - ошибка валидации конкретного поля
type FieldError struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}

// APIError - разобранный problem+json ответ сервера
type APIError struct {
	Status int          `json:"status"`
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if len(e.Errors) == 0 {
		return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, msg)
	}

	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, strings.TrimPrefix(fe.Location, "body.")+": "+fe.Message)
	}
	return fmt.Sprintf("ошибка сервера (%d): %s (%s)", e.Status, msg, strings.Join(parts, "; "))
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(baseURL string, timeout time.Duration, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "SecureNest-CLI/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// Health проверяет доступность сервера
func (h *httpClient) Health(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/health", nil, nil)
}

func (h *httpClient) Signup(ctx context.Context, email string, name *string) (User, error) {
	body := struct {
		Email string  `json:"email,omitempty"`
		Name  *string `json:"name,omitempty"`
	}{Email: email, Name: name}

	var resp struct {
		User User `json:"user"`
	}
	if err := h.call(ctx, http.MethodPost, "/api/auth/signup", body, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

func (h *httpClient) Login(ctx context.Context) (User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := h.call(ctx, http.MethodPost, "/api/auth/login", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

func (h *httpClient) ListPasswords(ctx context.Context) ([]Summary, error) {
	var resp struct {
		Passwords []Summary `json:"passwords"`
	}
	if err := h.call(ctx, http.MethodGet, "/api/passwords", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Passwords, nil
}

func (h *httpClient) GetPassword(ctx context.Context, id string) (Detail, error) {
	var resp struct {
		Password Detail `json:"password"`
	}
	if err := h.call(ctx, http.MethodGet, "/api/passwords/"+url.PathEscape(id), nil, &resp); err != nil {
		return Detail{}, err
	}
	return resp.Password, nil
}

func (h *httpClient) CreatePassword(ctx context.Context, req CreateRequest) (Summary, error) {
	var resp struct {
		Password Summary `json:"password"`
	}
	if err := h.call(ctx, http.MethodPost, "/api/passwords", req, &resp); err != nil {
		return Summary{}, err
	}
	return resp.Password, nil
}

func (h *httpClient) UpdatePassword(ctx context.Context, id string, req UpdateRequest) (Summary, error) {
	var resp struct {
		Password Summary `json:"password"`
	}
	if err := h.call(ctx, http.MethodPut, "/api/passwords/"+url.PathEscape(id), req, &resp); err != nil {
		return Summary{}, err
	}
	return resp.Password, nil
}

func (h *httpClient) DeletePassword(ctx context.Context, id string) error {
	return h.call(ctx, http.MethodDelete, "/api/passwords/"+url.PathEscape(id), nil, nil)
}

func (h *httpClient) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	// Тело запроса не логируем: в нём может быть секрет
	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("сервер недоступен: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil {
			apiErr = &APIError{}
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
