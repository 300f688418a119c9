package repository

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type ActorRepository interface {
	Store[entity.Actor]
	SearchByName(ctx context.Context, term string) ([]*entity.Actor, error)
}

type DirectorRepository interface {
	Store[entity.Director]
	SearchByName(ctx context.Context, term string) ([]*entity.Director, error)
}

var personColumns = []string{"name", "date_of_birth", "bio"}

func personValues(p *entity.Person) []any {
	return []any{p.Name, p.DateOfBirth, p.Bio}
}

func personFields(p *entity.Person) []any {
	return []any{&p.Name, &p.DateOfBirth, &p.Bio}
}

var actorTable = table[entity.Actor]{
	name:    "actors",
	kind:    "actor",
	columns: personColumns,
	orderBy: "name, id",
	newItem: func() *entity.Actor { return &entity.Actor{} },
	base:    func(a *entity.Actor) *entity.Base { return a.Record() },
	values:  func(a *entity.Actor) []any { return personValues(&a.Person) },
	fields:  func(a *entity.Actor) []any { return personFields(&a.Person) },
}

var directorTable = table[entity.Director]{
	name:    "directors",
	kind:    "director",
	columns: personColumns,
	orderBy: "name, id",
	newItem: func() *entity.Director { return &entity.Director{} },
	base:    func(d *entity.Director) *entity.Base { return d.Record() },
	values:  func(d *entity.Director) []any { return personValues(&d.Person) },
	fields:  func(d *entity.Director) []any { return personFields(&d.Person) },
}

type actorRepository struct {
	*crudStore[entity.Actor]
}

func NewActorRepository(db database.Querier, log *zap.Logger) ActorRepository {
	return &actorRepository{crudStore: newCrudStore(db, log, actorTable)}
}

func (r *actorRepository) SearchByName(ctx context.Context, term string) ([]*entity.Actor, error) {
	return r.searchColumn(ctx, "name", term)
}

type directorRepository struct {
	*crudStore[entity.Director]
}

func NewDirectorRepository(db database.Querier, log *zap.Logger) DirectorRepository {
	return &directorRepository{crudStore: newCrudStore(db, log, directorTable)}
}

func (r *directorRepository) SearchByName(ctx context.Context, term string) ([]*entity.Director, error) {
	return r.searchColumn(ctx, "name", term)
}
