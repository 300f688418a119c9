package repository

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

// LinkRepository manages one movie association join table
// (movie_genres or movie_actors).
type LinkRepository interface {
	IDsByMovie(ctx context.Context, movieID int64) ([]int64, error)
	Add(ctx context.Context, movieID int64, ids []int64) error
	Remove(ctx context.Context, movieID int64, ids []int64) error
}

type linkRepository struct {
	db     database.Querier
	log    *zap.Logger
	table  string
	column string
	now    func() time.Time
}

func NewMovieGenreRepository(db database.Querier, log *zap.Logger) LinkRepository {
	return newLinkRepository(db, log, "movie_genres", "genre_id")
}

func NewMovieActorRepository(db database.Querier, log *zap.Logger) LinkRepository {
	return newLinkRepository(db, log, "movie_actors", "actor_id")
}

func newLinkRepository(db database.Querier, log *zap.Logger, table, column string) *linkRepository {
	return &linkRepository{
		db:     db,
		log:    log.With(zap.String("repository", table)),
		table:  table,
		column: column,
		now:    time.Now,
	}
}

func (r *linkRepository) IDsByMovie(ctx context.Context, movieID int64) ([]int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE movie_id = $1 ORDER BY %s`, r.column, r.table, r.column)

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find links by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find %s: %w", r.table, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan link row", zap.Error(err))
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *linkRepository) Add(ctx context.Context, movieID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (movie_id, %s, created_at)
		SELECT $1, linked, $3 FROM unnest($2::bigint[]) AS linked
		ON CONFLICT DO NOTHING`, r.table, r.column)

	if _, err := r.db.Exec(ctx, query, movieID, ids, r.now().UTC()); err != nil {
		r.log.Error("Failed to create batch links",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("create %s: %w", r.table, err)
	}

	return nil
}

func (r *linkRepository) Remove(ctx context.Context, movieID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE movie_id = $1 AND %s = ANY($2)`, r.table, r.column)

	if _, err := r.db.Exec(ctx, query, movieID, ids); err != nil {
		r.log.Error("Failed to delete links",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64s("ids", ids),
		)
		return fmt.Errorf("delete %s: %w", r.table, err)
	}

	return nil
}
