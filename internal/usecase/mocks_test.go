package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type movieRepoMock struct {
	mock.Mock
}

func (m *movieRepoMock) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *movieRepoMock) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if movie, ok := args.Get(0).(*entity.Movie); ok {
		return movie, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieRepoMock) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if movies, ok := args.Get(0).([]*entity.Movie); ok {
		return movies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *movieRepoMock) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *movieRepoMock) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *movieRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type reviewRepoMock struct {
	mock.Mock
}

func (m *reviewRepoMock) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *reviewRepoMock) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if review, ok := args.Get(0).(*entity.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *reviewRepoMock) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, movieID)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func newRepoMocks() (*repository.Repository, *movieRepoMock, *reviewRepoMock) {
	movieRepo := new(movieRepoMock)
	reviewRepo := new(reviewRepoMock)

	repo := &repository.Repository{
		Movie:  movieRepo,
		Review: reviewRepo,
	}

	return repo, movieRepo, reviewRepo
}

func strPtr(s string) *string {
	return &s
}
