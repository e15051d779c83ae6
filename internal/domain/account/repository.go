package account

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, acc *Account) error
	FindBySubject(ctx context.Context, subject string) (Account, error)
}
