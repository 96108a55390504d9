package middleware

import (
	"mime"
	"net/http"

	"movie-catalog/pkg/utils"
)

// RequireJSON rejects mutating requests whose body is not declared as
// JSON with 415 Unsupported Media Type.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			utils.ResponseUnsupportedMediaType(w, "Data must be sent as JSON")
			return
		}
		next.ServeHTTP(w, r)
	})
}
