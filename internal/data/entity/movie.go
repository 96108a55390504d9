package entity

import (
	"time"
)

type Movie struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Genre      string    `db:"genre"`
	MPAARating *string   `db:"mpaa_rating"`
	PosterImg  *string   `db:"poster_img"`
	CreatedAt  time.Time `db:"created_at"`
}
