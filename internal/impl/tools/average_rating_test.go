package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"
	"github.com/moviewizard/movie-mcp/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newAverageTool(repo *mockMovieRepository) *AverageRatingTool {
	return NewAverageRatingTool("get_average_rating", averageRatingDescription, map[string]string{}, repo, zap.NewNop())
}

func TestAverageRating_InvalidKeyReturnsNullBeforeStore(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newAverageTool(mockRepo)

	result, err := tool.Execute(context.Background(), `{"rating_field_key": "not_a_real_key"}`)
	assert.NoError(t, err)
	assert.Equal(t, "null", result)
	mockRepo.AssertNotCalled(t, "AverageRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestAverageRating_MissingKeyReturnsNull(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newAverageTool(mockRepo)

	result, err := tool.Execute(context.Background(), `{"actors": ["Bill Murray"]}`)
	assert.NoError(t, err)
	assert.Equal(t, "null", result)
}

func TestAverageRating_ResolvesKeyAndBuildsReducedFilter(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newAverageTool(mockRepo)

	average := 7.01
	var capturedFilter bson.M
	var capturedField string
	mockRepo.On("AverageRating", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedFilter = args.Get(1).(bson.M)
			capturedField = args.Get(2).(string)
		}).
		Return(&entities.RatingAverage{AverageRating: &average, MovieCount: 46}, nil)

	result, err := tool.Execute(context.Background(),
		`{"rating_field_key": "imdb", "actors": ["Bill Murray"], "min_imdb_rating": 9.0, "title": "Ghost"}`)
	assert.NoError(t, err)

	assert.Equal(t, "imdb.rating", capturedField)
	// Title and minimum-rating arguments have no place in the reduced set.
	_, hasTitle := capturedFilter["title"]
	assert.False(t, hasTitle)
	_, hasMinRating := capturedFilter["imdb.rating"]
	assert.False(t, hasMinRating)
	assert.Contains(t, capturedFilter["$and"].([]bson.M),
		bson.M{"cast": bson.M{"$regex": "Bill Murray", "$options": "i"}})

	var parsed map[string]any
	assert.NoError(t, json.Unmarshal([]byte(result), &parsed))
	assert.Equal(t, 7.01, parsed["average_rating"])
	assert.Equal(t, float64(46), parsed["movie_count"])
	_, hasError := parsed["error"]
	assert.False(t, hasError)
}

func TestAverageRating_ZeroMatchesIsNotAnError(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newAverageTool(mockRepo)

	mockRepo.On("AverageRating", mock.Anything, mock.Anything, mock.Anything).
		Return(&entities.RatingAverage{AverageRating: nil, MovieCount: 0}, nil)

	result, err := tool.Execute(context.Background(),
		`{"rating_field_key": "imdb", "actors": ["Nonexistent Actor"]}`)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"average_rating": null, "movie_count": 0}`, result)
}

func TestAverageRating_ExecutionFailureCarriesErrorField(t *testing.T) {
	mockRepo := new(mockMovieRepository)
	tool := newAverageTool(mockRepo)

	mockRepo.On("AverageRating", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.InternalErrorf("failed to aggregate ratings: network error"))

	result, err := tool.Execute(context.Background(), `{"rating_field_key": "metacritic"}`)
	assert.NoError(t, err)

	var parsed map[string]any
	assert.NoError(t, json.Unmarshal([]byte(result), &parsed))
	assert.Nil(t, parsed["average_rating"])
	assert.Equal(t, float64(0), parsed["movie_count"])
	assert.Contains(t, parsed["error"], "network error")
}
