package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	if page, ok := pageRequest(r); ok {
		genres, err := h.service.GetGenresPaged(r.Context(), page)
		if err != nil {
			h.handleServiceError(w, err, "get genres page")
			return
		}
		utils.ResponseSuccess(w, genres)
		return
	}

	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, genres)
}

// GetGenreByID handles GET /genres/{id}
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, genre)
}

// CreateGenre handles POST /genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, location(r, genre.ID), genre)
}

// UpdateGenre handles PUT /genres/{id}
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.GenreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateGenre(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update genre")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteGenre handles DELETE /genres/{id}
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteGenre(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}

// GetMovies handles GET /genres/{id}/movies
func (h *GenreHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movies, err := h.service.GetMovies(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get genre movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

func (h *GenreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(w, h.log, err, operation)
}
