package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// Reads
	r.Get("/movie/get", movieHandler.GetMovies)
	r.Get("/movie/get/{id}", movieHandler.GetMovieByID)

	// Mutations carrying a body must declare it as JSON
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireJSON)

		r.Post("/movie/add", movieHandler.CreateMovie)
		r.Post("/movie/add/many", movieHandler.BulkCreateMovies)
		r.Put("/movie/edit/{id}", movieHandler.UpdateMovie)
	})

	// Delete carries no body, so no media-type check
	r.Delete("/movie/delete/{id}", movieHandler.DeleteMovie)
}
