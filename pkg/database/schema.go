package database

import (
	"context"
	"fmt"
)

// initQueries is idempotent DDL executed in order on startup.
// Reviews are owned by their movie: the foreign key cascades on delete,
// so no orphan review can survive its movie.
var initQueries = []string{
	`
CREATE TABLE IF NOT EXISTS movies (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    genre       TEXT NOT NULL,
    mpaa_rating TEXT,
    poster_img  TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT movies_title_key UNIQUE (title),
    CONSTRAINT movies_poster_img_key UNIQUE (poster_img)
)`,

	`
CREATE TABLE IF NOT EXISTS reviews (
    id          BIGSERIAL PRIMARY KEY,
    star_rating DOUBLE PRECISION NOT NULL,
    review_text VARCHAR(300),
    movie_id    BIGINT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT reviews_movie_id_fkey FOREIGN KEY (movie_id)
        REFERENCES movies (id) ON DELETE CASCADE
)`,

	`CREATE INDEX IF NOT EXISTS reviews_movie_id_idx ON reviews (movie_id)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, query := range initQueries {
		if _, err := db.Exec(ctx, query); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
