package response

import (
	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Genre      string           `json:"genre"`
	MPAARating *string          `json:"mpaa_rating"`
	PosterImg  *string          `json:"poster_img"`
	Reviews    []ReviewResponse `json:"reviews"`
}

// MovieToResponse builds the movie projection with its reviews
// embedded in full. Reviews is never null, a movie without reviews
// serializes with an empty list.
func MovieToResponse(movie *entity.Movie, reviews []*entity.Review) MovieResponse {
	return MovieResponse{
		ID:         movie.ID,
		Title:      movie.Title,
		Genre:      movie.Genre,
		MPAARating: movie.MPAARating,
		PosterImg:  movie.PosterImg,
		Reviews:    ReviewsToResponse(reviews),
	}
}
