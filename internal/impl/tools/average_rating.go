package tools

import (
	"context"
	"encoding/json"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"
	"github.com/moviewizard/movie-mcp/internal/domain/interfaces"

	"go.uber.org/zap"
)

const nullResult = "null"

// AverageRatingTool computes the mean of one rating field across movies
// matching a reduced predicate set. Unlike the other tools its rating key
// is validated up front: an unknown key returns null before the store is
// touched.
type AverageRatingTool struct {
	name          string
	description   string
	configuration map[string]string
	repo          interfaces.MovieRepository
	logger        *zap.Logger
}

func NewAverageRatingTool(name, description string, configuration map[string]string, repo interfaces.MovieRepository, logger *zap.Logger) *AverageRatingTool {
	return &AverageRatingTool{
		name:          name,
		description:   description,
		configuration: configuration,
		repo:          repo,
		logger:        logger,
	}
}

func (t *AverageRatingTool) Name() string {
	return t.name
}

func (t *AverageRatingTool) Description() string {
	return t.description
}

func (t *AverageRatingTool) Configuration() map[string]string {
	return t.configuration
}

func (t *AverageRatingTool) Parameters() []entities.Parameter {
	params := []entities.Parameter{
		{
			Name:        "rating_field_key",
			Type:        "string",
			Enum:        ratingKeys(),
			Description: `Rating source to average: "imdb", "metacritic", "tomatoes_viewer", or "tomatoes_critic" (vote-count keys also accepted)`,
			Required:    true,
		},
	}
	for _, p := range filterParameters() {
		switch p.Name {
		case "title", "rated_mpaa",
			"min_imdb_rating", "min_metacritic_rating",
			"min_tomatoes_viewer_rating", "min_tomatoes_critic_rating":
			// Not meaningful for a broad averaging query.
			continue
		}
		params = append(params, p)
	}
	return params
}

func ratingKeys() []string {
	keys := make([]string, 0, len(entities.RatingFieldPaths))
	for key := range entities.RatingFieldPaths {
		keys = append(keys, key)
	}
	return keys
}

func (t *AverageRatingTool) Execute(ctx context.Context, arguments string) (string, error) {
	t.logger.Debug("Executing get_average_rating", zap.String("arguments", arguments))

	args, err := decodeArguments(arguments)
	if err != nil {
		t.logger.Error("Failed to parse get_average_rating arguments", zap.Error(err))
		return nullResult, nil
	}

	key := stringArg(args, "rating_field_key")
	ratingField, ok := entities.RatingFieldPath(key)
	if !ok {
		t.logger.Warn("Invalid rating_field_key", zap.String("rating_field_key", key))
		return nullResult, nil
	}

	filter := averageFilterFromArgs(args, t.logger).Build()

	result, err := t.repo.AverageRating(ctx, filter, ratingField)
	if err != nil {
		t.logger.Error("get_average_rating aggregation failed", zap.Error(err))
		result = &entities.RatingAverage{MovieCount: 0, Error: err.Error()}
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.logger.Error("Failed to marshal get_average_rating result", zap.Error(err))
		return nullResult, nil
	}

	t.logger.Info("get_average_rating completed",
		zap.String("rating_field", ratingField),
		zap.Int64("movie_count", result.MovieCount))
	return string(data), nil
}

var _ entities.Tool = (*AverageRatingTool)(nil)
