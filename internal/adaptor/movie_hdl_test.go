package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperrors"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type movieServiceMock struct {
	mock.Mock
}

func (m *movieServiceMock) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*response.MovieResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieServiceMock) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	args := m.Called(ctx)
	if resp, ok := args.Get(0).([]response.MovieResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieServiceMock) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	if resp, ok := args.Get(0).(*response.MovieResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieServiceMock) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID, req)
	if resp, ok := args.Get(0).(*response.MovieResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieServiceMock) DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	if resp, ok := args.Get(0).(*response.MovieResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieServiceMock) BulkCreateMovies(ctx context.Context, req *request.BulkMovieRequest) ([]response.MovieResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).([]response.MovieResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func newMovieRouter(service *movieServiceMock) *chi.Mux {
	handler := NewMovieHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/movie/get", handler.GetMovies)
	r.Get("/movie/get/{id}", handler.GetMovieByID)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireJSON)
		r.Post("/movie/add", handler.CreateMovie)
		r.Post("/movie/add/many", handler.BulkCreateMovies)
		r.Put("/movie/edit/{id}", handler.UpdateMovie)
	})
	r.Delete("/movie/delete/{id}", handler.DeleteMovie)

	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestMovieHandler_CreateMovie(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("CreateMovie", mock.Anything, mock.AnythingOfType("*request.MovieRequest")).
		Return(&response.MovieResponse{
			ID:      1,
			Title:   "Alien",
			Genre:   "Horror",
			Reviews: []response.ReviewResponse{},
		}, nil)

	body := `{"title":"Alien","genre":"Horror"}`
	req := httptest.NewRequest(http.MethodPost, "/movie/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Alien", data["title"])
	assert.Equal(t, []any{}, data["reviews"])
}

func TestMovieHandler_CreateMovie_WrongContentType(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/movie/add", strings.NewReader("title=Alien"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
	assert.Equal(t, "Data must be sent as JSON", resp.Message)
	service.AssertNotCalled(t, "CreateMovie", mock.Anything, mock.Anything)
}

func TestMovieHandler_CreateMovie_MissingGenre(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	body := `{"title":"Alien"}`
	req := httptest.NewRequest(http.MethodPost, "/movie/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "CreateMovie", mock.Anything, mock.Anything)
}

func TestMovieHandler_CreateMovie_Conflict(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("CreateMovie", mock.Anything, mock.Anything).
		Return(nil, apperrors.Conflict(`movie with title "Alien" already exists`))

	body := `{"title":"Alien","genre":"Horror"}`
	req := httptest.NewRequest(http.MethodPost, "/movie/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Message, "already exists")
}

func TestMovieHandler_GetMovies(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("GetMovies", mock.Anything).Return([]response.MovieResponse{
		{ID: 1, Title: "Alien", Genre: "Horror", Reviews: []response.ReviewResponse{}},
		{ID: 2, Title: "Heat", Genre: "Crime", Reviews: []response.ReviewResponse{}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/movie/get", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Status)

	data := resp.Data.([]any)
	assert.Len(t, data, 2)
}

func TestMovieHandler_GetMovieByID_NotFound(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("GetMovieByID", mock.Anything, "99").
		Return(nil, apperrors.NotFound("movie 99 not found"))

	req := httptest.NewRequest(http.MethodGet, "/movie/get/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
	assert.Equal(t, "movie 99 not found", resp.Message)
}

func TestMovieHandler_UpdateMovie(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("UpdateMovie", mock.Anything, "1", mock.AnythingOfType("*request.MovieUpdateRequest")).
		Return(&response.MovieResponse{
			ID:      1,
			Title:   "Alien",
			Genre:   "Horror",
			Reviews: []response.ReviewResponse{},
		}, nil)

	body := `{"genre":"Horror"}`
	req := httptest.NewRequest(http.MethodPut, "/movie/edit/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Horror", data["genre"])
}

func TestMovieHandler_DeleteMovie(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("DeleteMovie", mock.Anything, "1").
		Return(&response.MovieResponse{
			ID:    1,
			Title: "Alien",
			Genre: "Horror",
			Reviews: []response.ReviewResponse{
				{ID: 4, StarRating: 5.0, MovieID: 1},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/movie/delete/1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Your movie has been deleted!", resp.Message)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "Alien", data["title"])
	assert.Len(t, data["reviews"], 1)
}

func TestMovieHandler_BulkCreateMovies(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("BulkCreateMovies", mock.Anything, mock.AnythingOfType("*request.BulkMovieRequest")).
		Return([]response.MovieResponse{
			{ID: 1, Title: "A", Genre: "Horror", Reviews: []response.ReviewResponse{}},
			{ID: 2, Title: "B", Genre: "Crime", Reviews: []response.ReviewResponse{}},
		}, nil)

	body := `{"movies":[{"title":"A","genre":"Horror"},{"title":"A","genre":"Horror"},{"title":"B","genre":"Crime"}]}`
	req := httptest.NewRequest(http.MethodPost, "/movie/add/many", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)

	data := resp.Data.([]any)
	assert.Len(t, data, 2)
}

func TestMovieHandler_BulkCreateMovies_MissingList(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	body := `{}`
	req := httptest.NewRequest(http.MethodPost, "/movie/add/many", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "BulkCreateMovies", mock.Anything, mock.Anything)
}

func TestMovieHandler_InternalError(t *testing.T) {
	service := new(movieServiceMock)
	router := newMovieRouter(service)

	service.On("GetMovies", mock.Anything).
		Return(nil, apperrors.Internal("find movies", assert.AnError))

	req := httptest.NewRequest(http.MethodGet, "/movie/get", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)

	// Store internals never leak to the client.
	assert.Equal(t, "Internal server error", resp.Message)
	assert.NotContains(t, resp.Message, assert.AnError.Error())
}
