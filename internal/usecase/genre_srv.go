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

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenresPaged(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) error
	DeleteGenre(ctx context.Context, id int64) error
	GetMovies(ctx context.Context, id int64) ([]response.MovieResponse, error)
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetGenresPaged(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	req = req.Normalize()

	page, err := s.repo.Genre.ListPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.NewPaginatedResponse(
		response.GenresToResponse(page.Items),
		page.PageNumber, page.PageSize, page.TotalCount, page.TotalPages(),
	), nil
}

func (s *genreService) find(ctx context.Context, id int64) (*entity.Genre, error) {
	genre, err := s.repo.Genre.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		s.log.Warn("Genre not found", zap.Int64("genre_id", id))
		return nil, notFound("Genre", id)
	}
	return genre, nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id int64) (*response.GenreResponse, error) {
	genre, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	genre := entity.NewGenre()
	genre.Name = req.Name
	genre.Description = req.Description

	if _, err := s.repo.Genre.Add(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) error {
	genre, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	genre.Name = req.Name
	genre.Description = req.Description

	if err := s.repo.Genre.Update(ctx, genre); err != nil {
		return fmt.Errorf("update genre: %w", err)
	}

	s.log.Info("Genre updated", zap.Int64("genre_id", id))
	return nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}

func (s *genreService) GetMovies(ctx context.Context, id int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.ByGenre(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movies by genre: %w", err)
	}
	return response.MoviesToResponse(movies), nil
}
