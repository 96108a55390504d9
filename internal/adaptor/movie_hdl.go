package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /movie/add
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// GetMovies handles GET /movie/get
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /movie/get/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// UpdateMovie handles PUT /movie/edit/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /movie/delete/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.DeleteMovie(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Your movie has been deleted!", movie)
}

// BulkCreateMovies handles POST /movie/add/many
func (h *MovieHandler) BulkCreateMovies(w http.ResponseWriter, r *http.Request) {
	var req request.BulkMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movies, err := h.service.BulkCreateMovies(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "bulk create movies")
		return
	}

	utils.ResponseCreated(w, "Movies created successfully", movies)
}
