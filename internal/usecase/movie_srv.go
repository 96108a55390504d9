package usecase

import (
	"context"
	"fmt"
	"strconv"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperrors"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	BulkCreateMovies(ctx context.Context, req *request.BulkMovieRequest) ([]response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func parseMovieID(movieID string) (int64, error) {
	id, err := strconv.ParseInt(movieID, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid movie id: %s", movieID))
	}
	return id, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Title:      req.Title,
		Genre:      req.Genre,
		MPAARating: req.MPAARating,
		PosterImg:  req.PosterImg,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	// A freshly created movie has no reviews yet.
	movieResp := response.MovieToResponse(movie, nil)
	return &movieResp, nil
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID)
		if err != nil {
			return nil, fmt.Errorf("get reviews for movie %d: %w", movie.ID, err)
		}
		movieResponses = append(movieResponses, response.MovieToResponse(movie, reviews))
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movieResponses)))

	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("movie %d not found", id))
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get reviews for movie %d: %w", movie.ID, err)
	}

	movieResp := response.MovieToResponse(movie, reviews)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("movie %d not found", id))
	}

	// Apply only the fields present in the request.
	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		movie.Title = *req.Title
		updated = true
	}

	if req.Genre != nil && *req.Genre != movie.Genre {
		movie.Genre = *req.Genre
		updated = true
	}

	if req.MPAARating != nil {
		movie.MPAARating = req.MPAARating
		updated = true
	}

	if req.PosterImg != nil {
		movie.PosterImg = req.PosterImg
		updated = true
	}

	if updated {
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get reviews for movie %d: %w", movie.ID, err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Bool("was_updated", updated),
	)

	movieResp := response.MovieToResponse(movie, reviews)
	return &movieResp, nil
}

// DeleteMovie removes the movie and, via the store cascade, all its
// reviews. It returns the projection as it existed before deletion.
func (s *movieService) DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("movie %d not found", id))
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get reviews for movie %d: %w", movie.ID, err)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
		zap.Int("cascaded_reviews", len(reviews)),
	)

	movieResp := response.MovieToResponse(movie, reviews)
	return &movieResp, nil
}

// BulkCreateMovies processes items in input order, each insert
// committing on its own. An item whose title already exists in
// committed state is skipped silently, so a duplicate later in the
// same batch is skipped once its first occurrence has committed.
// Other per-item failures are logged and skipped; earlier rows stay.
func (s *movieService) BulkCreateMovies(ctx context.Context, req *request.BulkMovieRequest) ([]response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bulk create validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	created := make([]response.MovieResponse, 0, len(req.Movies))

	for _, item := range req.Movies {
		exists, err := s.repo.Movie.ExistsByTitle(ctx, item.Title)
		if err != nil {
			return created, fmt.Errorf("check movie title %q: %w", item.Title, err)
		}
		if exists {
			s.log.Debug("Skipping duplicate movie title", zap.String("title", item.Title))
			continue
		}

		movie := &entity.Movie{
			Title:      item.Title,
			Genre:      item.Genre,
			MPAARating: item.MPAARating,
			PosterImg:  item.PosterImg,
		}

		if err := s.repo.Movie.Create(ctx, movie); err != nil {
			// Earlier inserts already committed; keep going.
			s.log.Warn("Skipping movie that failed to insert",
				zap.Error(err),
				zap.String("title", item.Title),
			)
			continue
		}

		created = append(created, response.MovieToResponse(movie, nil))
	}

	s.log.Info("Bulk movie create finished",
		zap.Int("requested", len(req.Movies)),
		zap.Int("created", len(created)),
	)

	return created, nil
}
