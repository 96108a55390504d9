package repository

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/apperrors"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (star_rating, review_text, movie_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.StarRating,
		review.ReviewText,
		review.MovieID,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		// The foreign key is the existence check for the target movie.
		if apperrors.IsForeignKeyViolation(err) {
			r.log.Warn("Review references missing movie",
				zap.Error(err),
				zap.Int64("movie_id", review.MovieID),
			)
			return apperrors.NotFound("movie does not exist")
		}

		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", review.MovieID),
		)
		return apperrors.Internal("create review", err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT id, star_rating, review_text, movie_id, created_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.StarRating,
		&review.ReviewText,
		&review.MovieID,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, apperrors.Internal("find review", err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, star_rating, review_text, movie_id, created_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, apperrors.Internal("find reviews", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.StarRating,
			&review.ReviewText,
			&review.MovieID,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, apperrors.Internal("scan review", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperrors.Internal("iterate reviews", err)
	}

	return reviews, nil
}
