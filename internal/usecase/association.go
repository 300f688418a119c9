package usecase

import (
	"context"
	"fmt"
	"slices"

	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// AssociationManager keeps a movie's genre and actor links equal to a requested set.
type AssociationManager interface {
	Reconcile(ctx context.Context, repo *repository.Repository, movieID int64, genreIDs, actorIDs []int64) error
}

type idResolver interface {
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type associationManager struct {
	log *zap.Logger
}

func NewAssociationManager(log *zap.Logger) AssociationManager {
	return &associationManager{
		log: log.With(zap.String("service", "association")),
	}
}

// Reconcile resolves the requested ids, drops the ones with no record, and
// rewrites both link sets so they hold exactly what resolved. repo should be
// transaction-scoped so the two sets change together.
func (m *associationManager) Reconcile(ctx context.Context, repo *repository.Repository, movieID int64, genreIDs, actorIDs []int64) error {
	genres, err := m.resolve(ctx, repo.Genre, "genre", genreIDs)
	if err != nil {
		return err
	}
	actors, err := m.resolve(ctx, repo.Actor, "actor", actorIDs)
	if err != nil {
		return err
	}

	if err := m.sync(ctx, repo.MovieGenre, movieID, genres); err != nil {
		return fmt.Errorf("sync movie genres: %w", err)
	}
	if err := m.sync(ctx, repo.MovieActor, movieID, actors); err != nil {
		return fmt.Errorf("sync movie actors: %w", err)
	}
	return nil
}

func (m *associationManager) resolve(ctx context.Context, store idResolver, kind string, requested []int64) ([]int64, error) {
	wanted := uniqueIDs(requested)
	if len(wanted) == 0 {
		return wanted, nil
	}

	found, err := store.ExistingIDs(ctx, wanted)
	if err != nil {
		return nil, fmt.Errorf("resolve %s ids: %w", kind, err)
	}

	if len(found) < len(wanted) {
		skipped, _ := diffIDs(found, wanted)
		m.log.Warn("Skipping unknown ids",
			zap.String("kind", kind),
			zap.Int64s("ids", skipped),
		)
	}
	return found, nil
}

func (m *associationManager) sync(ctx context.Context, links repository.LinkRepository, movieID int64, desired []int64) error {
	current, err := links.IDsByMovie(ctx, movieID)
	if err != nil {
		return err
	}

	add, remove := diffIDs(current, desired)
	if err := links.Remove(ctx, movieID, remove); err != nil {
		return err
	}
	if err := links.Add(ctx, movieID, add); err != nil {
		return err
	}

	m.log.Debug("Links reconciled",
		zap.Int64("movie_id", movieID),
		zap.Int("added", len(add)),
		zap.Int("removed", len(remove)),
	)
	return nil
}

// diffIDs returns the ids in desired but not in current, and the ids in
// current but not in desired. Both results are sorted.
func diffIDs(current, desired []int64) (add, remove []int64) {
	have := make(map[int64]bool, len(current))
	for _, id := range current {
		have[id] = true
	}
	want := make(map[int64]bool, len(desired))
	for _, id := range desired {
		want[id] = true
	}

	add = make([]int64, 0)
	for id := range want {
		if !have[id] {
			add = append(add, id)
		}
	}
	remove = make([]int64, 0)
	for id := range have {
		if !want[id] {
			remove = append(remove, id)
		}
	}

	slices.Sort(add)
	slices.Sort(remove)
	return add, remove
}

func uniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
