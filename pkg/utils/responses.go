package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ResponseJSON writes data as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created with the location of the new resource
func ResponseCreated(w http.ResponseWriter, location string, data any) {
	if location != "" {
		w.Header().Set("Location", location)
	}
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// ResponseError writes {message, details} with the given status code
func ResponseError(w http.ResponseWriter, code int, message string, details any) {
	ResponseJSON(w, code, ErrorResponse{Message: message, Details: details})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, details any) {
	ResponseError(w, http.StatusBadRequest, message, details)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusTooManyRequests, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
