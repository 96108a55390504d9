package entity

import (
	"time"
)

type Review struct {
	ID         int64     `db:"id"`
	StarRating float64   `db:"star_rating"`
	ReviewText *string   `db:"review_text"` // max 300 chars, enforced by the column
	MovieID    int64     `db:"movie_id"`
	CreatedAt  time.Time `db:"created_at"`
}
