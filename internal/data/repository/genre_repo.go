package repository

import (
	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type GenreRepository interface {
	Store[entity.Genre]
}

var genreTable = table[entity.Genre]{
	name:    "genres",
	kind:    "genre",
	columns: []string{"name", "description"},
	orderBy: "name, id",
	newItem: func() *entity.Genre { return &entity.Genre{} },
	base:    func(g *entity.Genre) *entity.Base { return g.Record() },
	values: func(g *entity.Genre) []any {
		return []any{g.Name, g.Description}
	},
	fields: func(g *entity.Genre) []any {
		return []any{&g.Name, &g.Description}
	},
}

type genreRepository struct {
	*crudStore[entity.Genre]
}

func NewGenreRepository(db database.Querier, log *zap.Logger) GenreRepository {
	return &genreRepository{crudStore: newCrudStore(db, log, genreTable)}
}
