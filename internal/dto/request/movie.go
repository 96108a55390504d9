package request

type MovieRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=200"`
	Genre      string  `json:"genre" validate:"required,min=1,max=100"`
	MPAARating *string `json:"mpaa_rating,omitempty"`
	PosterImg  *string `json:"poster_img,omitempty"`
}

// MovieUpdateRequest uses pointers so an absent field is
// distinguishable from an empty one; only present fields are applied.
type MovieUpdateRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Genre      *string `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	MPAARating *string `json:"mpaa_rating,omitempty"`
	PosterImg  *string `json:"poster_img,omitempty"`
}

type BulkMovieRequest struct {
	Movies []MovieRequest `json:"movies" validate:"required,min=1,dive"`
}
