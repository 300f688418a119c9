package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Movie    *MovieHandler
	Actor    *PersonHandler
	Director *PersonHandler
	Genre    *GenreHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Actor:    NewPersonHandler("actor", service.Actor, log),
		Director: NewPersonHandler("director", service.Director, log),
		Genre:    NewGenreHandler(service.Genre, log),
	}
}
