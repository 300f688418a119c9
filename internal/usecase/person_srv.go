package usecase

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

// PersonService covers the identical use cases of actors and directors.
type PersonService interface {
	GetAll(ctx context.Context) ([]response.PersonResponse, error)
	GetPage(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PersonResponse], error)
	GetByID(ctx context.Context, id int64) (*response.PersonResponse, error)
	Create(ctx context.Context, req *request.PersonRequest) (*response.PersonResponse, error)
	Update(ctx context.Context, id int64, req *request.PersonRequest) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]response.PersonResponse, error)
	GetMovies(ctx context.Context, id int64) ([]response.MovieResponse, error)
}

type ActorService = PersonService

type DirectorService = PersonService

type personStore[T any] interface {
	repository.Store[T]
	SearchByName(ctx context.Context, term string) ([]*T, error)
}

type personService[T any] struct {
	kind    string
	store   personStore[T]
	movies  func(ctx context.Context, id int64) ([]*entity.Movie, error)
	person  func(*T) *entity.Person
	newItem func() *T
	log     *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &personService[entity.Actor]{
		kind:    "Actor",
		store:   repo.Actor,
		movies:  repo.Movie.ByActor,
		person:  func(a *entity.Actor) *entity.Person { return &a.Person },
		newItem: entity.NewActor,
		log:     log.With(zap.String("service", "actor")),
	}
}

func NewDirectorService(repo *repository.Repository, log *zap.Logger) DirectorService {
	return &personService[entity.Director]{
		kind:    "Director",
		store:   repo.Director,
		movies:  repo.Movie.ByDirector,
		person:  func(d *entity.Director) *entity.Person { return &d.Person },
		newItem: entity.NewDirector,
		log:     log.With(zap.String("service", "director")),
	}
}

func (s *personService[T]) toResponse(items []*T) []response.PersonResponse {
	out := make([]response.PersonResponse, len(items))
	for i, item := range items {
		out[i] = response.PersonToResponse(s.person(item))
	}
	return out
}

func (s *personService[T]) op(verb string) string {
	return verb + " " + strings.ToLower(s.kind)
}

func (s *personService[T]) GetAll(ctx context.Context) ([]response.PersonResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.op("list"), err)
	}
	return s.toResponse(items), nil
}

func (s *personService[T]) GetPage(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PersonResponse], error) {
	req = req.Normalize()

	page, err := s.store.ListPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.op("list"), err)
	}

	return response.NewPaginatedResponse(
		s.toResponse(page.Items),
		page.PageNumber, page.PageSize, page.TotalCount, page.TotalPages(),
	), nil
}

func (s *personService[T]) find(ctx context.Context, id int64) (*T, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.op("find"), err)
	}
	if item == nil {
		s.log.Warn(s.kind+" not found", zap.Int64("id", id))
		return nil, notFound(s.kind, id)
	}
	return item, nil
}

func (s *personService[T]) GetByID(ctx context.Context, id int64) (*response.PersonResponse, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.PersonToResponse(s.person(item))
	return &resp, nil
}

func (s *personService[T]) Create(ctx context.Context, req *request.PersonRequest) (*response.PersonResponse, error) {
	item := s.newItem()
	if err := applyPersonRequest(s.person(item), req); err != nil {
		return nil, err
	}

	if _, err := s.store.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", s.op("create"), err)
	}

	p := s.person(item)
	s.log.Info(s.kind+" created", zap.Int64("id", p.ID), zap.String("name", p.Name))

	resp := response.PersonToResponse(p)
	return &resp, nil
}

func (s *personService[T]) Update(ctx context.Context, id int64, req *request.PersonRequest) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := applyPersonRequest(s.person(item), req); err != nil {
		return err
	}
	if err := s.store.Update(ctx, item); err != nil {
		return fmt.Errorf("%s: %w", s.op("update"), err)
	}

	s.log.Info(s.kind+" updated", zap.Int64("id", id))
	return nil
}

func (s *personService[T]) Delete(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", s.op("delete"), err)
	}

	s.log.Info(s.kind+" deleted", zap.Int64("id", id))
	return nil
}

func (s *personService[T]) Search(ctx context.Context, term string) ([]response.PersonResponse, error) {
	items, err := s.store.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.op("search"), err)
	}
	return s.toResponse(items), nil
}

func (s *personService[T]) GetMovies(ctx context.Context, id int64) ([]response.MovieResponse, error) {
	movies, err := s.movies(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movies by %s: %w", strings.ToLower(s.kind), err)
	}
	return response.MoviesToResponse(movies), nil
}

func applyPersonRequest(p *entity.Person, req *request.PersonRequest) error {
	dob, err := req.BirthDate()
	if err != nil {
		return newError(ErrValidation, "date_of_birth must be a YYYY-MM-DD date")
	}
	p.Name = req.Name
	p.DateOfBirth = dob
	p.Bio = req.Bio
	return nil
}
