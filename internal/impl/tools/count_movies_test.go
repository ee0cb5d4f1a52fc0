package tools

import (
	"context"
	"testing"

	"github.com/moviewizard/movie-mcp/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newCountTool(repo *mockMovieRepository) *CountMoviesTool {
	return NewCountMoviesTool("count_movies", countMoviesDescription, map[string]string{}, repo, zap.NewNop())
}

func TestCountMovies_NoArgumentsCountsEverything(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newCountTool(mockRepo)

	mockRepo.On("CountMovies", mock.Anything, bson.M{}).Return(int64(23539), nil)

	result, err := tool.Execute(context.Background(), `{}`)
	assert.NoError(t, err)
	assert.Equal(t, "23539", result)
	mockRepo.AssertExpectations(t)
}

func TestCountMovies_FilterComposition(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newCountTool(mockRepo)

	var captured bson.M
	mockRepo.On("CountMovies", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(bson.M)
		}).
		Return(int64(7), nil)

	result, err := tool.Execute(context.Background(), `{"genres": ["Comedy"], "year": 1985}`)
	assert.NoError(t, err)
	assert.Equal(t, "7", result)
	assert.Equal(t, bson.M{"$all": []string{"Comedy"}}, captured["genres"])
	assert.Equal(t, 1985, captured["year"])
}

func TestCountMovies_RepositoryFailureYieldsZero(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newCountTool(mockRepo)

	mockRepo.On("CountMovies", mock.Anything, mock.Anything).
		Return(int64(0), errors.InternalErrorf("server selection timeout"))

	result, err := tool.Execute(context.Background(), `{}`)
	assert.NoError(t, err)
	assert.Equal(t, "0", result)
}

func TestCountMovies_UnparseableArgumentsYieldZero(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newCountTool(mockRepo)

	result, err := tool.Execute(context.Background(), `[1,2]`)
	assert.NoError(t, err)
	assert.Equal(t, "0", result)
	mockRepo.AssertNotCalled(t, "CountMovies", mock.Anything, mock.Anything)
}
