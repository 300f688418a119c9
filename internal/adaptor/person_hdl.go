package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// PersonHandler serves the actor and director resources, which share one shape.
type PersonHandler struct {
	kind    string
	service usecase.PersonService
	log     *zap.Logger
}

func NewPersonHandler(kind string, service usecase.PersonService, log *zap.Logger) *PersonHandler {
	return &PersonHandler{
		kind:    kind,
		service: service,
		log:     log.With(zap.String("handler", kind)),
	}
}

// List handles GET /actors and GET /directors
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	if page, ok := pageRequest(r); ok {
		people, err := h.service.GetPage(r.Context(), page)
		if err != nil {
			h.handleServiceError(w, err, "get "+h.kind+" page")
			return
		}
		utils.ResponseSuccess(w, people)
		return
	}

	people, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get "+h.kind+"s")
		return
	}

	utils.ResponseSuccess(w, people)
}

func (h *PersonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	person, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get "+h.kind+" by ID")
		return
	}

	utils.ResponseSuccess(w, person)
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.PersonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	person, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create "+h.kind)
		return
	}

	utils.ResponseCreated(w, location(r, person.ID), person)
}

func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.PersonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update "+h.kind)
		return
	}

	utils.ResponseNoContent(w)
}

func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete "+h.kind)
		return
	}

	utils.ResponseNoContent(w)
}

// Search handles GET /actors/search?searchTerm=
func (h *PersonHandler) Search(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(w, r)
	if !ok {
		return
	}

	people, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.handleServiceError(w, err, "search "+h.kind+"s")
		return
	}

	utils.ResponseSuccess(w, people)
}

// GetMovies handles GET /actors/{id}/movies
func (h *PersonHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movies, err := h.service.GetMovies(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get "+h.kind+" movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

func (h *PersonHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	handleServiceError(w, h.log, err, operation)
}
