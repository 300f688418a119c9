package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)

		// static segments win over {id}
		r.Get("/search", movieHandler.SearchMovies)
		r.Get("/director/{directorId}", movieHandler.GetMoviesByDirector)
		r.Get("/genre/{genreId}", movieHandler.GetMoviesByGenre)
		r.Get("/actor/{actorId}", movieHandler.GetMoviesByActor)

		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
