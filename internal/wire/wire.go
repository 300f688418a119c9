package wire

import (
	"context"
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the assembled router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(
	repo *repository.Repository,
	db Pinger,
	tokens *utils.TokenIssuer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, utils.NewHMACHasher(), tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, tokens, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db Pinger,
	tokens middleware.TokenParser,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RateLimit(middleware.NewLimiter(config.RateLimit), logger))

	r.Get("/health", health(db, logger))

	r.Route(config.App.APIPrefix, func(r chi.Router) {
		wireAuth(r, handler.Auth)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens, logger))

			wireUser(r, handler.User)
			wireMovie(r, handler.Movie)
			wirePerson(r, "/actors", handler.Actor)
			wirePerson(r, "/directors", handler.Director)
			wireGenre(r, handler.Genre)
		})
	})

	return r
}

func health(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseError(w, http.StatusServiceUnavailable, "Database unavailable", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
