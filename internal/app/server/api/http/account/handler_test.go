package account

import (
	"context"
	"net/http"
	"testing"
	"time"

	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/domain/account"
	"securenest/internal/domain/identity"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Resolve(ctx context.Context, subject string) (account.Account, error) {
	args := m.Called(ctx, subject)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, subject, email string, displayName *string) (account.Account, error) {
	args := m.Called(ctx, subject, email, displayName)
	return args.Get(0).(account.Account), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Signup(t *testing.T) {
	acc := account.Account{ID: uuid.New(), Subject: "uid-1", Email: "token@example.com", CreatedAt: time.Now()}

	t.Run("token email wins", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, "uid-1", "token@example.com", (*string)(nil)).Return(acc, nil)
		h := NewHandler(svc, slog.Default(), nil)

		ctx := auth.WithIdentity(context.Background(), identity.Identity{Subject: "uid-1", Email: "token@example.com"})
		input := &signupInput{Body: &signupRequest{Email: "body@example.com"}}

		out, err := h.signup(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, acc.ID, out.Body.User.ID)
		assert.Equal(t, "User created successfully", out.Body.Message)
		svc.AssertExpectations(t)
	})

	t.Run("body email used when token has none", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, "uid-1", "body@example.com", mock.Anything).Return(acc, nil)
		h := NewHandler(svc, slog.Default(), nil)

		ctx := auth.WithIdentity(context.Background(), identity.Identity{Subject: "uid-1"})
		input := &signupInput{Body: &signupRequest{Email: "body@example.com"}}

		_, err := h.signup(ctx, input)
		require.NoError(t, err)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(account.Account{}, account.ErrDuplicate)
		h := NewHandler(svc, slog.Default(), nil)

		ctx := auth.WithIdentity(context.Background(), identity.Identity{Subject: "uid-1", Email: "a@example.com"})
		_, err := h.signup(ctx, &signupInput{})
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("no identity", func(t *testing.T) {
		h := NewHandler(new(MockService), slog.Default(), nil)
		_, err := h.signup(context.Background(), &signupInput{})
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestHandler_Login(t *testing.T) {
	acc := account.Account{ID: uuid.New(), Subject: "uid-1", Email: "a@example.com"}
	ctx := auth.WithIdentity(context.Background(), identity.Identity{Subject: "uid-1"})

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Resolve", mock.Anything, "uid-1").Return(acc, nil)
		h := NewHandler(svc, slog.Default(), nil)

		out, err := h.login(ctx, &loginInput{})
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", out.Body.User.Email)
	})

	t.Run("not signed up", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Resolve", mock.Anything, "uid-1").Return(account.Account{}, account.ErrNotFound)
		h := NewHandler(svc, slog.Default(), nil)

		_, err := h.login(ctx, &loginInput{})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Equal(t, "User not found. Please sign up first.", err.Error())
	})
}
