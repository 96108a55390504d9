package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
