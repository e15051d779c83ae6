package identity

import (
	"errors"
	"fmt"
	"time"

	"securenest/internal/utils/clock"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer mints HS256 identity tokens. It stands in for the external provider
// in local development and tests.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	clock    clock.Clock
}

func NewIssuer(secret []byte, issuer, audience string, clk clock.Clock) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("identity: issuer requires an HMAC secret")
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &Issuer{secret: secret, issuer: issuer, audience: audience, clock: clk}, nil
}

func (i *Issuer) Issue(subject, email string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("identity: subject is required")
	}

	now := i.clock.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	if i.audience != "" {
		claims.Audience = jwt.ClaimStrings{i.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
