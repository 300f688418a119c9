package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUserService struct{}

func (stubUserService) GetProfile(_ context.Context, userID int64) (*response.UserResponse, error) {
	if userID != 1 {
		return nil, &usecase.Error{Kind: usecase.ErrNotFound, Message: "User with ID 2 not found"}
	}
	return &response.UserResponse{ID: 1, Username: "demo", Email: "demo@example.com"}, nil
}

func TestUserHandler_GetProfile(t *testing.T) {
	h := NewUserHandler(stubUserService{}, zap.NewNop())

	tests := []struct {
		name   string
		ctx    context.Context
		status int
	}{
		{name: "authenticated", ctx: utils.SetUserContext(context.Background(), 1, "demo"), status: http.StatusOK},
		{name: "deleted account", ctx: utils.SetUserContext(context.Background(), 2, "gone"), status: http.StatusNotFound},
		{name: "no identity", ctx: context.Background(), status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			h.GetProfile(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
