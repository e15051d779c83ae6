// Package httperr translates domain errors into HTTP problem responses.
package httperr

import (
	"errors"

	"securenest/internal/app/server/crypto"
	"securenest/internal/domain/account"
	"securenest/internal/domain/identity"
	"securenest/internal/domain/record"
	"securenest/internal/domain/validation"
	"securenest/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	MsgAccountNotFound = "User not found. Please sign up first."
	MsgAccountExists   = "User already exists"
	MsgRecordNotFound  = "Password not found"
	MsgValidation      = "Validation failed"
	MsgUnavailable     = "Service temporarily unavailable"
	MsgInternal        = "Internal server error"
	MsgNoToken         = "Unauthorized: No token provided"
	MsgInvalidToken    = "Unauthorized: Invalid token"
	MsgExpiredToken    = "Unauthorized: Token expired"
)

// From maps err to a huma status error. Internal details never reach the
// client; faults are logged here instead.
func From(log *slog.Logger, err error) huma.StatusError {
	var ve *validation.Error

	switch {
	case errors.As(err, &ve):
		details := make([]error, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, &huma.ErrorDetail{
				Message:  f.Message,
				Location: "body." + f.Field,
			})
		}
		return huma.Error400BadRequest(MsgValidation, details...)

	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound(MsgRecordNotFound)

	case errors.Is(err, account.ErrNotFound):
		return huma.Error404NotFound(MsgAccountNotFound)

	case errors.Is(err, account.ErrDuplicate):
		return huma.Error409Conflict(MsgAccountExists)

	case errors.Is(err, identity.ErrExpiredCredential):
		return huma.Error401Unauthorized(MsgExpiredToken)

	case errors.Is(err, identity.ErrInvalidCredential):
		return huma.Error401Unauthorized(MsgInvalidToken)

	case errors.Is(err, storage.ErrUnavailable):
		log.Warn("store unavailable", "error", err)
		return huma.Error503ServiceUnavailable(MsgUnavailable)

	case errors.Is(err, crypto.ErrAuthenticationFailed),
		errors.Is(err, crypto.ErrMalformedBlob),
		errors.Is(err, crypto.ErrKeyUnavailable):
		log.Error("stored data integrity fault", "error", err)
		return huma.Error500InternalServerError(MsgInternal)

	default:
		log.Error("unhandled error", "error", err)
		return huma.Error500InternalServerError(MsgInternal)
	}
}

// Write renders err from inside a middleware, where no handler return value
// is available.
func Write(api huma.API, ctx huma.Context, log *slog.Logger, err error) {
	se := From(log, err)
	if werr := huma.WriteErr(api, ctx, se.GetStatus(), se.Error()); werr != nil {
		log.Error("failed to write error response", "error", werr)
	}
}

// InvalidField is a 400 for a malformed request parameter.
func InvalidField(location, message string, value any) huma.StatusError {
	return huma.Error400BadRequest(MsgValidation, &huma.ErrorDetail{
		Message:  message,
		Location: location,
		Value:    value,
	})
}
