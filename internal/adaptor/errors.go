package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError maps a service failure to its status code. Anything
// that is not a usecase error kind is reported as a bare 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeAndValidate reads a JSON body into dst and runs the struct rules.
// It writes the 400 itself and reports false when the request is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// pathID parses the named route parameter, answering 400 when it is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, fmt.Sprintf("Invalid %s", name), nil)
		return 0, false
	}
	return id, true
}

// pageRequest reports whether the client asked for a page and, if so, which one.
func pageRequest(r *http.Request) (request.PaginatedRequest, bool) {
	query := r.URL.Query()
	if !query.Has("page") && !query.Has("per_page") {
		return request.PaginatedRequest{}, false
	}

	return request.PaginatedRequest{
		Page:    utils.QueryInt(query, "page", 1),
		PerPage: utils.QueryInt(query, "per_page", request.DefaultPerPage),
	}.Normalize(), true
}

func searchTerm(w http.ResponseWriter, r *http.Request) (string, bool) {
	term := r.URL.Query().Get("searchTerm")
	if term == "" {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"searchTerm": "This field is required"})
		return "", false
	}
	return term, true
}

func location(r *http.Request, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimSuffix(r.URL.Path, "/"), id)
}
