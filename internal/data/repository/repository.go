package repository

import (
	"context"
	"fmt"

	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie      MovieRepository
	Actor      ActorRepository
	Director   DirectorRepository
	Genre      GenreRepository
	User       UserRepository
	MovieGenre LinkRepository
	MovieActor LinkRepository

	db  database.Querier
	log *zap.Logger
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Movie:      NewMovieRepository(db, log),
		Actor:      NewActorRepository(db, log),
		Director:   NewDirectorRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		User:       NewUserRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		MovieActor: NewMovieActorRepository(db, log),
		db:         db,
		log:        log,
	}
}

// WithTx runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(NewRepository(tx, r.log)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
