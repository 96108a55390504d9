package request

type CreateReviewRequest struct {
	StarRating float64 `json:"star_rating" validate:"required"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=300"`
	MovieID    int64   `json:"movie_id" validate:"required"`
}
