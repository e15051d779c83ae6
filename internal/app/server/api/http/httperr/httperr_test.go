package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"securenest/internal/app/server/crypto"
	"securenest/internal/domain/account"
	"securenest/internal/domain/identity"
	"securenest/internal/domain/record"
	"securenest/internal/domain/validation"
	"securenest/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "record not found", err: record.ErrNotFound, wantStatus: http.StatusNotFound, wantDetail: MsgRecordNotFound},
		{name: "account not found", err: account.ErrNotFound, wantStatus: http.StatusNotFound, wantDetail: MsgAccountNotFound},
		{name: "duplicate", err: account.ErrDuplicate, wantStatus: http.StatusConflict, wantDetail: MsgAccountExists},
		{name: "expired", err: identity.ErrExpiredCredential, wantStatus: http.StatusUnauthorized, wantDetail: MsgExpiredToken},
		{name: "invalid", err: fmt.Errorf("%w: bad sig", identity.ErrInvalidCredential), wantStatus: http.StatusUnauthorized, wantDetail: MsgInvalidToken},
		{name: "store down", err: fmt.Errorf("list: %w", storage.ErrUnavailable), wantStatus: http.StatusServiceUnavailable, wantDetail: MsgUnavailable},
		{name: "tampered", err: fmt.Errorf("decrypt: %w", crypto.ErrAuthenticationFailed), wantStatus: http.StatusInternalServerError, wantDetail: MsgInternal},
		{name: "malformed", err: crypto.ErrMalformedBlob, wantStatus: http.StatusInternalServerError, wantDetail: MsgInternal},
		{name: "unknown", err: errors.New("pq: relation does not exist"), wantStatus: http.StatusInternalServerError, wantDetail: MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := From(slog.Default(), tt.err)
			assert.Equal(t, tt.wantStatus, se.GetStatus())
			assert.Equal(t, tt.wantDetail, se.Error())
		})
	}
}

func TestFrom_Validation(t *testing.T) {
	verr := &validation.Error{}
	verr.Add("title", "Title is required")
	verr.Add("url", "Invalid URL format")

	se := From(slog.Default(), verr)
	require.Equal(t, http.StatusBadRequest, se.GetStatus())

	model, ok := se.(*huma.ErrorModel)
	require.True(t, ok)
	require.Len(t, model.Errors, 2)
	assert.Equal(t, "body.title", model.Errors[0].Location)
	assert.Equal(t, "Title is required", model.Errors[0].Message)
	assert.Equal(t, "body.url", model.Errors[1].Location)
}

func TestFrom_InternalDetailsHidden(t *testing.T) {
	se := From(slog.Default(), errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.NotContains(t, se.Error(), "10.0.0.5")
}

func TestInvalidField(t *testing.T) {
	se := InvalidField("path.id", "Invalid password ID", "abc")
	assert.Equal(t, http.StatusBadRequest, se.GetStatus())

	model := se.(*huma.ErrorModel)
	require.Len(t, model.Errors, 1)
	assert.Equal(t, "path.id", model.Errors[0].Location)
	assert.Equal(t, "abc", model.Errors[0].Value)
}
