package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)
		r.Post("/", genreHandler.CreateGenre)
		r.Get("/{id}", genreHandler.GetGenreByID)
		r.Put("/{id}", genreHandler.UpdateGenre)
		r.Delete("/{id}", genreHandler.DeleteGenre)
		r.Get("/{id}/movies", genreHandler.GetMovies)
	})
}
