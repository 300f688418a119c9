package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wirePerson mounts the shared actor/director routes under prefix
func wirePerson(r chi.Router, prefix string, personHandler *adaptor.PersonHandler) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", personHandler.List)
		r.Post("/", personHandler.Create)
		r.Get("/search", personHandler.Search)
		r.Get("/{id}", personHandler.GetByID)
		r.Put("/{id}", personHandler.Update)
		r.Delete("/{id}", personHandler.Delete)
		r.Get("/{id}/movies", personHandler.GetMovies)
	})
}
