package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "not found", err: &usecase.Error{Kind: usecase.ErrNotFound, Message: "Actor with ID 3 not found"}, status: http.StatusNotFound, message: "Actor with ID 3 not found"},
		{name: "conflict", err: &usecase.Error{Kind: usecase.ErrConflict, Message: "Email 'a@b.c' is already registered"}, status: http.StatusBadRequest, message: "Email 'a@b.c' is already registered"},
		{name: "validation", err: &usecase.Error{Kind: usecase.ErrValidation, Message: "Director with ID 4 not found"}, status: http.StatusBadRequest, message: "Director with ID 4 not found"},
		{name: "unauthorized", err: &usecase.Error{Kind: usecase.ErrUnauthorized, Message: "Invalid username or password"}, status: http.StatusUnauthorized, message: "Invalid username or password"},
		{name: "wrapped kind", err: fmt.Errorf("update: %w", &usecase.Error{Kind: usecase.ErrNotFound, Message: "Genre with ID 1 not found"}), status: http.StatusNotFound, message: "update: Genre with ID 1 not found"},
		{name: "internal", err: errors.New("pq: relation does not exist"), status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}
