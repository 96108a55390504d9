package response

import (
	"movie-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID         int64   `json:"id"`
	StarRating float64 `json:"star_rating"`
	ReviewText *string `json:"review_text"`
	MovieID    int64   `json:"movie_id"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		StarRating: review.StarRating,
		ReviewText: review.ReviewText,
		MovieID:    review.MovieID,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, ReviewToResponse(review))
	}
	return out
}
