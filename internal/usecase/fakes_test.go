package usecase

import (
	"context"
	"slices"
	"sort"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// memStore is an in-memory repository.Store keyed by id.
type memStore[T any] struct {
	items  map[int64]*T
	nextID int64
	base   func(*T) *entity.Base
}

func newMemStore[T any](base func(*T) *entity.Base) *memStore[T] {
	return &memStore[T]{items: map[int64]*T{}, base: base}
}

func (m *memStore[T]) copyOf(item *T) *T {
	c := *item
	return &c
}

func (m *memStore[T]) sorted() []*T {
	ids := make([]int64, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*T, len(ids))
	for i, id := range ids {
		out[i] = m.copyOf(m.items[id])
	}
	return out
}

func (m *memStore[T]) List(context.Context) ([]*T, error) {
	return m.sorted(), nil
}

func (m *memStore[T]) ListPaged(_ context.Context, pageNumber, pageSize int) (*repository.Page[T], error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, repository.ErrInvalidPage
	}
	all := m.sorted()
	start := min(utils.PageOffset(pageNumber, pageSize), len(all))
	end := min(start+pageSize, len(all))
	return &repository.Page[T]{
		Items:      all[start:end],
		TotalCount: int64(len(all)),
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}, nil
}

func (m *memStore[T]) GetByID(_ context.Context, id int64) (*T, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return m.copyOf(item), nil
}

func (m *memStore[T]) Add(_ context.Context, item *T) (*T, error) {
	m.nextID++
	m.base(item).ID = m.nextID
	m.items[m.nextID] = m.copyOf(item)
	return item, nil
}

func (m *memStore[T]) Update(_ context.Context, item *T) error {
	id := m.base(item).ID
	if _, ok := m.items[id]; ok {
		m.items[id] = m.copyOf(item)
	}
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func (m *memStore[T]) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	found := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := m.items[id]; ok {
			found = append(found, id)
		}
	}
	slices.Sort(found)
	return found, nil
}

type memPersonStore[T any] struct {
	*memStore[T]
	person func(*T) *entity.Person
}

func (m *memPersonStore[T]) SearchByName(_ context.Context, term string) ([]*T, error) {
	out := make([]*T, 0)
	for _, item := range m.sorted() {
		if strings.Contains(m.person(item).Name, term) {
			out = append(out, item)
		}
	}
	return out, nil
}

type memUserStore struct {
	*memStore[entity.User]
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.sorted() {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.sorted() {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// memLinks is one join table: movie id -> linked ids.
type memLinks struct {
	rows map[int64]map[int64]bool
}

func newMemLinks() *memLinks {
	return &memLinks{rows: map[int64]map[int64]bool{}}
}

func (l *memLinks) IDsByMovie(_ context.Context, movieID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for id := range l.rows[movieID] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (l *memLinks) Add(_ context.Context, movieID int64, ids []int64) error {
	if l.rows[movieID] == nil {
		l.rows[movieID] = map[int64]bool{}
	}
	for _, id := range ids {
		l.rows[movieID][id] = true
	}
	return nil
}

func (l *memLinks) Remove(_ context.Context, movieID int64, ids []int64) error {
	for _, id := range ids {
		delete(l.rows[movieID], id)
	}
	return nil
}

func (l *memLinks) movieIDsFor(id int64) []int64 {
	out := make([]int64, 0)
	for movieID, linked := range l.rows {
		if linked[id] {
			out = append(out, movieID)
		}
	}
	slices.Sort(out)
	return out
}

// memMovieStore attaches director, genres and actors the way the real store does.
type memMovieStore struct {
	*memStore[entity.Movie]
	f *fixture
}

func (m *memMovieStore) attach(movie *entity.Movie) *entity.Movie {
	movie.Director = nil
	if movie.DirectorID != nil {
		movie.Director, _ = m.f.directors.GetByID(context.Background(), *movie.DirectorID)
	}
	movie.Genres = []*entity.Genre{}
	for id := range m.f.movieGenres.rows[movie.ID] {
		if g, _ := m.f.genres.GetByID(context.Background(), id); g != nil {
			movie.Genres = append(movie.Genres, g)
		}
	}
	sort.Slice(movie.Genres, func(i, j int) bool { return movie.Genres[i].ID < movie.Genres[j].ID })
	movie.Actors = []*entity.Actor{}
	for id := range m.f.movieActors.rows[movie.ID] {
		if a, _ := m.f.actors.GetByID(context.Background(), id); a != nil {
			movie.Actors = append(movie.Actors, a)
		}
	}
	sort.Slice(movie.Actors, func(i, j int) bool { return movie.Actors[i].ID < movie.Actors[j].ID })
	return movie
}

func (m *memMovieStore) attachAll(movies []*entity.Movie) []*entity.Movie {
	for _, movie := range movies {
		m.attach(movie)
	}
	return movies
}

func (m *memMovieStore) List(ctx context.Context) ([]*entity.Movie, error) {
	movies, _ := m.memStore.List(ctx)
	return m.attachAll(movies), nil
}

func (m *memMovieStore) ListPaged(ctx context.Context, pageNumber, pageSize int) (*repository.Page[entity.Movie], error) {
	page, err := m.memStore.ListPaged(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	m.attachAll(page.Items)
	return page, nil
}

func (m *memMovieStore) GetByID(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, _ := m.memStore.GetByID(ctx, id)
	if movie == nil {
		return nil, nil
	}
	return m.attach(movie), nil
}

func (m *memMovieStore) Delete(ctx context.Context, id int64) error {
	delete(m.f.movieGenres.rows, id)
	delete(m.f.movieActors.rows, id)
	return m.memStore.Delete(ctx, id)
}

func (m *memMovieStore) filter(keep func(*entity.Movie) bool) []*entity.Movie {
	out := make([]*entity.Movie, 0)
	for _, movie := range m.sorted() {
		if keep(movie) {
			out = append(out, m.attach(movie))
		}
	}
	return out
}

func (m *memMovieStore) ByDirector(_ context.Context, directorID int64) ([]*entity.Movie, error) {
	return m.filter(func(mv *entity.Movie) bool {
		return mv.DirectorID != nil && *mv.DirectorID == directorID
	}), nil
}

func (m *memMovieStore) ByGenre(_ context.Context, genreID int64) ([]*entity.Movie, error) {
	ids := m.f.movieGenres.movieIDsFor(genreID)
	return m.filter(func(mv *entity.Movie) bool { return slices.Contains(ids, mv.ID) }), nil
}

func (m *memMovieStore) ByActor(_ context.Context, actorID int64) ([]*entity.Movie, error) {
	ids := m.f.movieActors.movieIDsFor(actorID)
	return m.filter(func(mv *entity.Movie) bool { return slices.Contains(ids, mv.ID) }), nil
}

func (m *memMovieStore) SearchByTitle(_ context.Context, term string) ([]*entity.Movie, error) {
	return m.filter(func(mv *entity.Movie) bool { return strings.Contains(mv.Title, term) }), nil
}

// passthroughTx runs fn against the same in-memory repositories.
type passthroughTx struct {
	repo *repository.Repository
}

func (p passthroughTx) WithTx(_ context.Context, fn func(*repository.Repository) error) error {
	return fn(p.repo)
}

type fixture struct {
	repo        *repository.Repository
	genres      *memStore[entity.Genre]
	actors      *memPersonStore[entity.Actor]
	directors   *memPersonStore[entity.Director]
	users       *memUserStore
	movies      *memMovieStore
	movieGenres *memLinks
	movieActors *memLinks
}

func newFixture() *fixture {
	f := &fixture{
		genres: newMemStore(func(g *entity.Genre) *entity.Base { return g.Record() }),
		actors: &memPersonStore[entity.Actor]{
			memStore: newMemStore(func(a *entity.Actor) *entity.Base { return a.Record() }),
			person:   func(a *entity.Actor) *entity.Person { return &a.Person },
		},
		directors: &memPersonStore[entity.Director]{
			memStore: newMemStore(func(d *entity.Director) *entity.Base { return d.Record() }),
			person:   func(d *entity.Director) *entity.Person { return &d.Person },
		},
		users:       &memUserStore{memStore: newMemStore(func(u *entity.User) *entity.Base { return u.Record() })},
		movieGenres: newMemLinks(),
		movieActors: newMemLinks(),
	}
	f.movies = &memMovieStore{
		memStore: newMemStore(func(m *entity.Movie) *entity.Base { return m.Record() }),
		f:        f,
	}
	f.repo = &repository.Repository{
		Movie:      f.movies,
		Actor:      f.actors,
		Director:   f.directors,
		Genre:      f.genres,
		User:       f.users,
		MovieGenre: f.movieGenres,
		MovieActor: f.movieActors,
	}
	return f
}

func (f *fixture) movieService() MovieService {
	return NewMovieService(f.repo, passthroughTx{repo: f.repo}, NewAssociationManager(zap.NewNop()), zap.NewNop())
}

func (f *fixture) addGenre(name string) int64 {
	g := entity.NewGenre()
	g.Name = name
	_, _ = f.genres.Add(context.Background(), g)
	return g.ID
}

func (f *fixture) addActor(name string) int64 {
	a := entity.NewActor()
	a.Name = name
	_, _ = f.actors.Add(context.Background(), a)
	return a.ID
}

func (f *fixture) addDirector(name string) int64 {
	d := entity.NewDirector()
	d.Name = name
	_, _ = f.directors.Add(context.Background(), d)
	return d.ID
}
