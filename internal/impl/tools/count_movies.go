package tools

import (
	"context"
	"strconv"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"
	"github.com/moviewizard/movie-mcp/internal/domain/interfaces"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// CountMoviesTool counts catalog movies matching the same predicate set
// find_movies accepts.
type CountMoviesTool struct {
	name          string
	description   string
	configuration map[string]string
	repo          interfaces.MovieRepository
	logger        *zap.Logger
}

func NewCountMoviesTool(name, description string, configuration map[string]string, repo interfaces.MovieRepository, logger *zap.Logger) *CountMoviesTool {
	return &CountMoviesTool{
		name:          name,
		description:   description,
		configuration: configuration,
		repo:          repo,
		logger:        logger,
	}
}

func (t *CountMoviesTool) Name() string {
	return t.name
}

func (t *CountMoviesTool) Description() string {
	return t.description
}

func (t *CountMoviesTool) Configuration() map[string]string {
	return t.configuration
}

func (t *CountMoviesTool) Parameters() []entities.Parameter {
	return filterParameters()
}

func (t *CountMoviesTool) Execute(ctx context.Context, arguments string) (string, error) {
	t.logger.Debug("Executing count_movies", zap.String("arguments", arguments))

	args, err := decodeArguments(arguments)
	if err != nil {
		t.logger.Error("Failed to parse count_movies arguments", zap.Error(err))
		return "0", nil
	}

	filter := filterFromArgs(args, t.logger).Build()

	count, err := t.repo.CountMovies(ctx, filter)
	if err != nil {
		t.logger.Error("count_movies query failed", zap.Error(err))
		return "0", nil
	}

	t.logger.Info("count_movies completed", zap.String("movies", humanize.Comma(count)))
	return strconv.FormatInt(count, 10), nil
}

var _ entities.Tool = (*CountMoviesTool)(nil)
