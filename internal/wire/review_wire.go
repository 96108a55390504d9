package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.With(middleware.RequireJSON).Post("/review/add", reviewHandler.CreateReview)
}
