package wire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func testApp(t *testing.T, db Pinger) (*App, *utils.TokenIssuer) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	tokens, err := utils.NewTokenIssuer(utils.JWTConfig{Secret: "wire-secret", Issuer: "movie-catalog", Audience: "movie-catalog-clients"})
	require.NoError(t, err)

	config := &utils.Config{
		App:       utils.AppConfig{APIPrefix: "/api/v1"},
		RateLimit: utils.RateLimitConfig{Enabled: false},
	}

	log := zap.NewNop()
	return Wiring(repository.NewRepository(mock, log), db, tokens, config, log), tokens
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	app, _ := testApp(t, stubPinger{})
	rec := serve(app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	app, _ = testApp(t, stubPinger{err: errors.New("down")})
	rec = serve(app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutes_RequireBearerExceptAuth(t *testing.T) {
	app, tokens := testApp(t, stubPinger{})

	for _, path := range []string{"/api/v1/movies", "/api/v1/actors", "/api/v1/directors/1", "/api/v1/genres/1/movies", "/api/v1/users/me"} {
		rec := serve(app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	// reaches the handler and fails validation, so no token was demanded
	rec := serve(app, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token, _, err := tokens.Issue(1, "demo")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/not-a-number", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = serve(app, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/actors/search", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = serve(app, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
