package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"securenest/internal/utils/clock"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: standard claims plus the account email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Config selects how tokens are verified. Exactly one of HMACSecret or
// PublicKey must be set.
type Config struct {
	Issuer     string
	Audience   string
	HMACSecret []byte
	PublicKey  *rsa.PublicKey
	Leeway     time.Duration
	Clock      clock.Clock
}

// JWTVerifier checks HS256 or RS256 signed tokens.
type JWTVerifier struct {
	key    any
	parser *jwt.Parser
}

func NewJWTVerifier(cfg Config) (*JWTVerifier, error) {
	var (
		key    any
		method string
	)
	switch {
	case len(cfg.HMACSecret) > 0 && cfg.PublicKey != nil:
		return nil, errors.New("identity: both HMAC secret and public key configured")
	case len(cfg.HMACSecret) > 0:
		key, method = cfg.HMACSecret, jwt.SigningMethodHS256.Alg()
	case cfg.PublicKey != nil:
		key, method = cfg.PublicKey, jwt.SigningMethodRS256.Alg()
	default:
		return nil, errors.New("identity: no verification key configured")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real()
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(clk.Now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &JWTVerifier{
		key:    key,
		parser: jwt.NewParser(opts...),
	}, nil
}

// LoadPublicKey reads an RSA public key in PEM form.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return key, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrInvalidCredential
	}

	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredCredential
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidCredential
	}

	return Identity{Subject: claims.Subject, Email: claims.Email}, nil
}
