package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/apperrors"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// translateMovieConstraint maps unique-constraint violations onto
// conflict errors the caller can surface as 409.
func translateMovieConstraint(err error, title string) error {
	constraint, ok := apperrors.UniqueConstraint(err)
	if !ok {
		return nil
	}

	switch constraint {
	case "movies_title_key":
		return apperrors.Conflict(fmt.Sprintf("movie with title %q already exists", title))
	case "movies_poster_img_key":
		return apperrors.Conflict("movie with that poster image already exists")
	default:
		return apperrors.Conflict("movie violates a uniqueness constraint")
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genre, mpaa_rating, poster_img)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Genre,
		movie.MPAARating,
		movie.PosterImg,
	).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		if conflict := translateMovieConstraint(err, movie.Title); conflict != nil {
			r.log.Warn("Movie insert hit uniqueness constraint",
				zap.Error(err),
				zap.String("title", movie.Title),
			)
			return conflict
		}

		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return apperrors.Internal("create movie", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, genre, mpaa_rating, poster_img, created_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.MPAARating,
		&movie.PosterImg,
		&movie.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, apperrors.Internal("find movie", err)
	}

	return &movie, nil
}

// FindAll returns every movie in primary-key order, which for serial
// keys is insertion order.
func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, genre, mpaa_rating, poster_img, created_at
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, apperrors.Internal("find movies", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.MPAARating,
			&movie.PosterImg,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, apperrors.Internal("scan movie", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, apperrors.Internal("iterate movies", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movies WHERE title = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, title).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie title",
			zap.Error(err),
			zap.String("title", title),
		)
		return false, apperrors.Internal("check movie title", err)
	}

	return exists, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre = $3, mpaa_rating = $4, poster_img = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.MPAARating,
		movie.PosterImg,
	)

	if err != nil {
		if conflict := translateMovieConstraint(err, movie.Title); conflict != nil {
			r.log.Warn("Movie update hit uniqueness constraint",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
			)
			return conflict
		}

		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return apperrors.Internal("update movie", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound("movie not found")
	}

	return nil
}

// Delete removes the movie row. The reviews foreign key cascades, so
// the movie's reviews are deleted in the same transaction.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return apperrors.Internal("delete movie", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound("movie not found")
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
