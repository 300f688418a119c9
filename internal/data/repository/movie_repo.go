package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

// MovieRepository returns movies with director, genres and actors attached.
type MovieRepository interface {
	Store[entity.Movie]
	ByDirector(ctx context.Context, directorID int64) ([]*entity.Movie, error)
	ByGenre(ctx context.Context, genreID int64) ([]*entity.Movie, error)
	ByActor(ctx context.Context, actorID int64) ([]*entity.Movie, error)
	SearchByTitle(ctx context.Context, term string) ([]*entity.Movie, error)
}

var movieTable = table[entity.Movie]{
	name:    "movies",
	kind:    "movie",
	columns: []string{"title", "release_year", "plot", "runtime_minutes", "poster_url", "director_id"},
	orderBy: "title, id",
	newItem: func() *entity.Movie { return &entity.Movie{} },
	base:    func(m *entity.Movie) *entity.Base { return m.Record() },
	values: func(m *entity.Movie) []any {
		return []any{m.Title, m.ReleaseYear, m.Plot, m.RuntimeMinutes, m.PosterURL, m.DirectorID}
	},
	fields: func(m *entity.Movie) []any {
		return []any{&m.Title, &m.ReleaseYear, &m.Plot, &m.RuntimeMinutes, &m.PosterURL, &m.DirectorID}
	},
}

type movieRepository struct {
	*crudStore[entity.Movie]
	directors *crudStore[entity.Director]
}

func NewMovieRepository(db database.Querier, log *zap.Logger) MovieRepository {
	return &movieRepository{
		crudStore: newCrudStore(db, log, movieTable),
		directors: newCrudStore(db, log, directorTable),
	}
}

func (r *movieRepository) List(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := r.crudStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return movies, r.attach(ctx, movies)
}

func (r *movieRepository) ListPaged(ctx context.Context, pageNumber, pageSize int) (*Page[entity.Movie], error) {
	page, err := r.crudStore.ListPaged(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	return page, r.attach(ctx, page.Items)
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := r.crudStore.GetByID(ctx, id)
	if err != nil || movie == nil {
		return movie, err
	}
	return movie, r.attach(ctx, []*entity.Movie{movie})
}

func (r *movieRepository) ByDirector(ctx context.Context, directorID int64) ([]*entity.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE director_id = $1 ORDER BY %s`,
		r.t.selectColumns(""), r.t.orderBy)
	return r.queryAttached(ctx, "find movies by director", query, directorID)
}

func (r *movieRepository) ByGenre(ctx context.Context, genreID int64) ([]*entity.Movie, error) {
	return r.byLink(ctx, "movie_genres", "genre_id", genreID)
}

func (r *movieRepository) ByActor(ctx context.Context, actorID int64) ([]*entity.Movie, error) {
	return r.byLink(ctx, "movie_actors", "actor_id", actorID)
}

func (r *movieRepository) SearchByTitle(ctx context.Context, term string) ([]*entity.Movie, error) {
	movies, err := r.searchColumn(ctx, "title", term)
	if err != nil {
		return nil, err
	}
	return movies, r.attach(ctx, movies)
}

func (r *movieRepository) byLink(ctx context.Context, link, column string, id int64) ([]*entity.Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM movies m
		INNER JOIN %s l ON l.movie_id = m.id
		WHERE l.%s = $1
		ORDER BY %s
	`, r.t.selectColumns("m"), link, column, aliased("m", r.t.orderBy))
	return r.queryAttached(ctx, "find movies by "+strings.TrimSuffix(column, "_id"), query, id)
}

func (r *movieRepository) queryAttached(ctx context.Context, op, query string, args ...any) ([]*entity.Movie, error) {
	movies, err := r.queryAll(ctx, op, query, args...)
	if err != nil {
		return nil, err
	}
	return movies, r.attach(ctx, movies)
}

// attach loads director, genres and actors for all movies with one query per association.
func (r *movieRepository) attach(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	movieIDs := make([]int64, len(movies))
	directorIDs := make([]int64, 0, len(movies))
	seen := make(map[int64]bool)
	for i, m := range movies {
		movieIDs[i] = m.ID
		m.Genres = []*entity.Genre{}
		m.Actors = []*entity.Actor{}
		if m.DirectorID != nil && !seen[*m.DirectorID] {
			seen[*m.DirectorID] = true
			directorIDs = append(directorIDs, *m.DirectorID)
		}
	}

	if len(directorIDs) > 0 {
		query := fmt.Sprintf(`SELECT %s FROM directors WHERE id = ANY($1)`, directorTable.selectColumns(""))
		directors, err := r.directors.queryAll(ctx, "load directors", query, directorIDs)
		if err != nil {
			return err
		}
		byID := make(map[int64]*entity.Director, len(directors))
		for _, d := range directors {
			byID[d.ID] = d
		}
		for _, m := range movies {
			if m.DirectorID != nil {
				m.Director = byID[*m.DirectorID]
			}
		}
	}

	genres, err := loadLinked(ctx, r.db, genreTable, "movie_genres", "genre_id", movieIDs)
	if err != nil {
		r.log.Error("Failed to load movie genres", zap.Error(err), zap.Int64s("movie_ids", movieIDs))
		return err
	}
	actors, err := loadLinked(ctx, r.db, actorTable, "movie_actors", "actor_id", movieIDs)
	if err != nil {
		r.log.Error("Failed to load movie actors", zap.Error(err), zap.Int64s("movie_ids", movieIDs))
		return err
	}

	for _, m := range movies {
		if gs, ok := genres[m.ID]; ok {
			m.Genres = gs
		}
		if as, ok := actors[m.ID]; ok {
			m.Actors = as
		}
	}
	return nil
}

// loadLinked reads the rows of t joined through a movie link table, grouped by movie id.
func loadLinked[T any](ctx context.Context, db database.Querier, t table[T], link, column string, movieIDs []int64) (map[int64][]*T, error) {
	query := fmt.Sprintf(`
		SELECT l.movie_id, %s
		FROM %s l
		INNER JOIN %s x ON x.id = l.%s
		WHERE l.movie_id = ANY($1)
		ORDER BY %s
	`, t.selectColumns("x"), link, t.name, column, aliased("x", t.orderBy))

	rows, err := db.Query(ctx, query, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", link, err)
	}
	defer rows.Close()

	out := make(map[int64][]*T)
	for rows.Next() {
		var movieID int64
		item := t.newItem()
		targets := append([]any{&movieID}, t.scanTargets(item)...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", link, err)
		}
		out[movieID] = append(out[movieID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", link, err)
	}
	return out, nil
}

func aliased(alias, orderBy string) string {
	parts := strings.Split(orderBy, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
