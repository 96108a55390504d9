package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(repo *repository.Repository, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
