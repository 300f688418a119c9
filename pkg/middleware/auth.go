package middleware

import (
	"errors"
	"net/http"
	"strings"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// TokenParser validates a bearer token and returns its claims.
type TokenParser interface {
	Parse(token string) (*utils.Claims, error)
}

// Auth middleware for validating JWT bearer tokens
func Auth(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			token = strings.TrimSpace(token)

			claims, err := tokens.Parse(token)
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				if errors.Is(err, utils.ErrExpiredToken) {
					utils.ResponseUnauthorized(w, "Token has expired")
					return
				}
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Parse already checked the subject
			userID, _ := claims.UserID()

			ctx := utils.SetUserContext(r.Context(), userID, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
