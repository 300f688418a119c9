package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies, paged when page or per_page is given
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	if page, ok := pageRequest(r); ok {
		movies, err := h.service.GetMoviesPaged(r.Context(), page)
		if err != nil {
			h.handleServiceError(w, err, "get movies page")
			return
		}
		utils.ResponseSuccess(w, movies)
		return
	}

	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, location(r, movie.ID), movie)
}

// UpdateMovie handles PUT /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.MovieRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateMovie(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

// GetMoviesByDirector handles GET /movies/director/{directorId}
func (h *MovieHandler) GetMoviesByDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "directorId")
	if !ok {
		return
	}

	movies, err := h.service.GetMoviesByDirector(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movies by director")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMoviesByGenre handles GET /movies/genre/{genreId}
func (h *MovieHandler) GetMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "genreId")
	if !ok {
		return
	}

	movies, err := h.service.GetMoviesByGenre(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movies by genre")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMoviesByActor handles GET /movies/actor/{actorId}
func (h *MovieHandler) GetMoviesByActor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "actorId")
	if !ok {
		return
	}

	movies, err := h.service.GetMoviesByActor(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movies by actor")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// SearchMovies handles GET /movies/search?searchTerm=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(w, r)
	if !ok {
		return
	}

	movies, err := h.service.SearchMovies(r.Context(), term)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(w, h.log, err, operation)
}
