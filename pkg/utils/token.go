package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid authentication token")
	ErrExpiredToken  = errors.New("authentication token has expired")
)

// Claims carried by an issued token
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as a user identifier.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenIssuer signs and validates HS256 bearer tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenIssuer fails when no signing secret is configured.
func NewTokenIssuer(cfg JWTConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	lifetime := time.Duration(cfg.ExpiryHours) * time.Hour
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}

	return &TokenIssuer{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

// Issue builds a signed token for the user.
func (t *TokenIssuer) Issue(userID int64, username string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.lifetime)

	claims := Claims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse validates signature, issuer, audience and expiry.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	if t.audience != "" {
		opts = append(opts, jwt.WithAudience(t.audience))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return claims, nil
}
