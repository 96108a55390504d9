package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows browser clients from any origin, matching the open
// surface this API exposes.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	})
}
