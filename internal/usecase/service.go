package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Actor    ActorService
	Director DirectorService
	Genre    GenreService
}

func NewService(repo *repository.Repository, hasher utils.PasswordHasher, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, hasher, tokens, log),
		User:     NewUserService(repo.User, log),
		Movie:    NewMovieService(repo, repo, NewAssociationManager(log), log),
		Actor:    NewActorService(repo, log),
		Director: NewDirectorService(repo, log),
		Genre:    NewGenreService(repo, log),
	}
}
