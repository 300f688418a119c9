package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	taken map[string]bool
}

func (s *stubAuthService) Register(_ context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if s.taken[req.Username] {
		return nil, &usecase.Error{Kind: usecase.ErrConflict, Message: "Username '" + req.Username + "' is already taken"}
	}
	return &response.AuthResponse{Token: "signed", Username: req.Username, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *stubAuthService) Login(_ context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if req.Password != "right-pass" {
		return nil, &usecase.Error{Kind: usecase.ErrUnauthorized, Message: "Invalid username or password"}
	}
	return &response.AuthResponse{Token: "signed", Username: req.Username}, nil
}

func authRouter() http.Handler {
	h := NewAuthHandler(&stubAuthService{taken: map[string]bool{"bob": true}}, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	router := authRouter()

	rec := do(t, router, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var got response.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice", got.Username)
	assert.NotEmpty(t, got.Token)

	rec = do(t, router, http.MethodPost, "/auth/register",
		`{"username":"bob","email":"bob@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username 'bob' is already taken", decodeError(t, rec).Message)

	rec = do(t, router, http.MethodPost, "/auth/register",
		`{"username":"al","email":"not-an-email","password":"123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	details, ok := decodeError(t, rec).Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "username")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestAuthHandler_Login(t *testing.T) {
	router := authRouter()

	rec := do(t, router, http.MethodPost, "/auth/login", `{"username":"carol","password":"right-pass"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/auth/login", `{"username":"carol","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decodeError(t, rec).Message)

	rec = do(t, router, http.MethodPost, "/auth/login", `{"username":"carol"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
