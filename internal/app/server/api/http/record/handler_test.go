package record

import (
	"context"
	"net/http"
	"testing"
	"time"

	"securenest/internal/app/server/api/http/middleware/principal"
	"securenest/internal/domain/account"
	"securenest/internal/domain/record"
	"securenest/internal/domain/validation"
	"securenest/internal/infrastructure/storage"

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

func (m *MockService) List(ctx context.Context, owner account.Account) ([]record.Summary, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Summary), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, owner account.Account, in record.CreateInput) (record.Summary, error) {
	args := m.Called(ctx, owner, in)
	return args.Get(0).(record.Summary), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, owner account.Account, id uuid.UUID) (record.Detail, error) {
	args := m.Called(ctx, owner, id)
	return args.Get(0).(record.Detail), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, owner account.Account, id uuid.UUID, patch record.Patch) (record.Summary, error) {
	args := m.Called(ctx, owner, id, patch)
	return args.Get(0).(record.Summary), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, owner account.Account, id uuid.UUID) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*MockService, *Handler, account.Account, context.Context) {
	t.Helper()
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	acc := account.Account{ID: uuid.New(), Subject: "uid-1", Email: "a@example.com"}
	return svc, h, acc, principal.WithAccount(context.Background(), acc)
}

func TestHandler_List(t *testing.T) {
	svc, h, acc, ctx := setup(t)
	now := time.Now()
	summaries := []record.Summary{
		{ID: uuid.New(), Title: "Gmail", UpdatedAt: now},
		{ID: uuid.New(), Title: "Bank", UpdatedAt: now.Add(-time.Hour)},
	}
	svc.On("List", mock.Anything, acc).Return(summaries, nil)

	out, err := h.list(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, summaries, out.Body.Passwords)
	svc.AssertExpectations(t)
}

func TestHandler_List_StoreUnavailable(t *testing.T) {
	svc, h, acc, ctx := setup(t)
	svc.On("List", mock.Anything, acc).Return(nil, storage.ErrUnavailable)

	_, err := h.list(ctx, nil)
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(t, err))
}

func TestHandler_NoAccount(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	_, err := h.list(context.Background(), nil)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, h, acc, ctx := setup(t)
		want := record.CreateInput{Title: "Gmail", Username: "alice", Secret: "p@ss1", URL: "https://mail.google.com"}
		summary := record.Summary{ID: uuid.New(), Title: "Gmail", Username: strPtr("alice")}
		svc.On("Create", mock.Anything, acc, want).Return(summary, nil)

		out, err := h.create(ctx, &createInput{Body: createRequest{
			Title:    "Gmail",
			Username: "alice",
			Password: "p@ss1",
			URL:      "https://mail.google.com",
		}})
		require.NoError(t, err)
		assert.Equal(t, "Password saved successfully", out.Body.Message)
		assert.Equal(t, summary, out.Body.Password)
		svc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		svc, h, _, ctx := setup(t)
		verr := validation.Field("title", "Title is required")
		svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(record.Summary{}, verr)

		_, err := h.create(ctx, &createInput{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

		var model *huma.ErrorModel
		require.ErrorAs(t, err, &model)
		require.Len(t, model.Errors, 1)
		assert.Equal(t, "body.title", model.Errors[0].Location)
	})
}

func TestHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, h, acc, ctx := setup(t)
		id := uuid.New()
		detail := record.Detail{Summary: record.Summary{ID: id, Title: "Gmail"}, Secret: "p@ss1"}
		svc.On("Get", mock.Anything, acc, id).Return(detail, nil)

		out, err := h.get(ctx, &idInput{ID: id.String()})
		require.NoError(t, err)
		assert.Equal(t, "p@ss1", out.Body.Password.Secret)
	})

	t.Run("not found", func(t *testing.T) {
		svc, h, _, ctx := setup(t)
		svc.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(record.Detail{}, record.ErrNotFound)

		_, err := h.get(ctx, &idInput{ID: uuid.NewString()})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Equal(t, "Password not found", err.Error())
	})

	t.Run("bad id", func(t *testing.T) {
		svc, h, _, ctx := setup(t)

		_, err := h.get(ctx, &idInput{ID: "not-a-uuid"})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

		var model *huma.ErrorModel
		require.ErrorAs(t, err, &model)
		require.Len(t, model.Errors, 1)
		assert.Equal(t, "path.id", model.Errors[0].Location)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("integrity fault is opaque", func(t *testing.T) {
		svc, h, _, ctx := setup(t)
		svc.On("Get", mock.Anything, mock.Anything, mock.Anything).
			Return(record.Detail{}, assert.AnError)

		_, err := h.get(ctx, &idInput{ID: uuid.NewString()})
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.NotContains(t, err.Error(), assert.AnError.Error())
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		svc, h, acc, ctx := setup(t)
		id := uuid.New()
		want := record.Patch{Secret: record.Some("n3w"), URL: record.Some("")}
		svc.On("Update", mock.Anything, acc, id, want).Return(record.Summary{ID: id, Title: "Gmail"}, nil)

		out, err := h.update(ctx, &updateInput{
			ID:   id.String(),
			Body: updateRequest{Password: strPtr("n3w"), URL: strPtr("")},
		})
		require.NoError(t, err)
		assert.Equal(t, "Password updated successfully", out.Body.Message)
		svc.AssertExpectations(t)
	})

	t.Run("foreign record", func(t *testing.T) {
		svc, h, _, ctx := setup(t)
		svc.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(record.Summary{}, record.ErrNotFound)

		_, err := h.update(ctx, &updateInput{ID: uuid.NewString(), Body: updateRequest{Title: strPtr("x")}})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestHandler_Delete(t *testing.T) {
	svc, h, acc, ctx := setup(t)
	id := uuid.New()
	svc.On("Delete", mock.Anything, acc, id).Return(nil)

	out, err := h.delete(ctx, &idInput{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, "Password deleted successfully", out.Body.Message)

	svc.On("Delete", mock.Anything, acc, mock.Anything).Return(record.ErrNotFound)
	_, err = h.delete(ctx, &idInput{ID: uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
