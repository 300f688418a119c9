package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMoviesPaged(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) error
	DeleteMovie(ctx context.Context, id int64) error
	GetMoviesByDirector(ctx context.Context, directorID int64) ([]response.MovieResponse, error)
	GetMoviesByGenre(ctx context.Context, genreID int64) ([]response.MovieResponse, error)
	GetMoviesByActor(ctx context.Context, actorID int64) ([]response.MovieResponse, error)
	SearchMovies(ctx context.Context, term string) ([]response.MovieResponse, error)
}

// Transactor runs fn against repositories bound to one transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *repository.Repository) error) error
}

type movieService struct {
	repo  *repository.Repository
	tx    Transactor
	assoc AssociationManager
	log   *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	tx Transactor,
	assoc AssociationManager,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:  repo,
		tx:    tx,
		assoc: assoc,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMoviesPaged(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	req = req.Normalize()

	page, err := s.repo.Movie.ListPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		s.log.Error("Failed to get movies page",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	return response.NewPaginatedResponse(
		response.MoviesToResponse(page.Items),
		page.PageNumber, page.PageSize, page.TotalCount, page.TotalPages(),
	), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		s.log.Warn("Movie not found", zap.Int64("movie_id", id))
		return nil, notFound("Movie", id)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie := entity.NewMovie()
	applyMovieRequest(movie, req)

	err := s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		if err := s.checkDirector(ctx, tx, movie.DirectorID); err != nil {
			return err
		}
		if _, err := tx.Movie.Add(ctx, movie); err != nil {
			return fmt.Errorf("create movie: %w", err)
		}
		return s.assoc.Reconcile(ctx, tx, movie.ID, req.GenreIDs, req.ActorIDs)
	})
	if err != nil {
		s.log.Warn("Create movie failed", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	// Re-read so the response carries the resolved associations.
	return s.GetMovieByID(ctx, movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) error {
	movie, err := s.repo.Movie.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		s.log.Warn("Movie not found for update", zap.Int64("movie_id", id))
		return notFound("Movie", id)
	}

	applyMovieRequest(movie, req)

	err = s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		if err := s.checkDirector(ctx, tx, movie.DirectorID); err != nil {
			return err
		}
		if err := tx.Movie.Update(ctx, movie); err != nil {
			return fmt.Errorf("update movie: %w", err)
		}
		return s.assoc.Reconcile(ctx, tx, movie.ID, req.GenreIDs, req.ActorIDs)
	})
	if err != nil {
		s.log.Warn("Update movie failed", zap.Error(err), zap.Int64("movie_id", id))
		return err
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", id))
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	movie, err := s.repo.Movie.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		s.log.Warn("Movie not found for delete", zap.Int64("movie_id", id))
		return notFound("Movie", id)
	}

	// movie_genres and movie_actors rows cascade
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (s *movieService) GetMoviesByDirector(ctx context.Context, directorID int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.ByDirector(ctx, directorID)
	if err != nil {
		return nil, fmt.Errorf("get movies by director: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMoviesByGenre(ctx context.Context, genreID int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.ByGenre(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("get movies by genre: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMoviesByActor(ctx context.Context, actorID int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.ByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get movies by actor: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) SearchMovies(ctx context.Context, term string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.SearchByTitle(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}

	s.log.Debug("Movies searched", zap.String("term", term), zap.Int("count", len(movies)))
	return response.MoviesToResponse(movies), nil
}

// checkDirector rejects a director reference that has no record.
func (s *movieService) checkDirector(ctx context.Context, repo *repository.Repository, directorID *int64) error {
	if directorID == nil {
		return nil
	}
	director, err := repo.Director.GetByID(ctx, *directorID)
	if err != nil {
		return fmt.Errorf("check director: %w", err)
	}
	if director == nil {
		return newError(ErrValidation, "Director with ID %d not found", *directorID)
	}
	return nil
}

func applyMovieRequest(movie *entity.Movie, req *request.MovieRequest) {
	movie.Title = req.Title
	movie.ReleaseYear = req.ReleaseYear
	movie.Plot = req.Plot
	movie.RuntimeMinutes = req.RuntimeMinutes
	movie.PosterURL = req.PosterURL
	movie.DirectorID = req.DirectorID
}
