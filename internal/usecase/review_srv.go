package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperrors"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: " + utils.FormatValidationErrors(errs))
	}

	review := &entity.Review{
		StarRating: req.StarRating,
		ReviewText: req.ReviewText,
		MovieID:    req.MovieID,
	}

	// The movie's existence is enforced by the foreign key; a missing
	// target surfaces as a not-found error from the repository.
	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.Float64("star_rating", review.StarRating),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}
