package account

import (
	"time"

	"securenest/internal/domain/account"

	"github.com/google/uuid"
)

type signupInput struct {
	Body *signupRequest
}

type signupRequest struct {
	Email string  `json:"email,omitempty" doc:"Email; email из проверенного токена имеет приоритет" example:"alice@example.com"`
	Name  *string `json:"name,omitempty" doc:"Отображаемое имя" example:"Alice"`
}

type loginInput struct{}

type output struct {
	Body authResponse
}

type authResponse struct {
	Message string      `json:"message"`
	User    userPayload `json:"user"`
}

type userPayload struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPayload(acc account.Account) userPayload {
	return userPayload{
		ID:        acc.ID,
		Email:     acc.Email,
		Name:      acc.DisplayName,
		CreatedAt: acc.CreatedAt,
	}
}
