package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth registers the only public API routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
}
