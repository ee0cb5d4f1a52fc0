package tools

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"
	"github.com/moviewizard/movie-mcp/internal/domain/interfaces"
	"github.com/moviewizard/movie-mcp/internal/impl/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const emptyResultList = "[]"

// FindMoviesTool searches the movie catalog with optional filters,
// sorting, a result limit, and field projection.
type FindMoviesTool struct {
	name          string
	description   string
	configuration map[string]string
	repo          interfaces.MovieRepository
	logger        *zap.Logger
}

func NewFindMoviesTool(name, description string, configuration map[string]string, repo interfaces.MovieRepository, logger *zap.Logger) *FindMoviesTool {
	return &FindMoviesTool{
		name:          name,
		description:   description,
		configuration: configuration,
		repo:          repo,
		logger:        logger,
	}
}

func (t *FindMoviesTool) Name() string {
	return t.name
}

func (t *FindMoviesTool) Description() string {
	return t.description
}

func (t *FindMoviesTool) Configuration() map[string]string {
	return t.configuration
}

// filterParameters is the predicate set shared by find_movies and
// count_movies.
func filterParameters() []entities.Parameter {
	return []entities.Parameter{
		{
			Name:        "title",
			Type:        "string",
			Description: "Movie title (case-insensitive partial match)",
		},
		{
			Name:        "genres",
			Type:        "array",
			Items:       []entities.Item{{Type: "string"}},
			Description: "List of genres; a movie must match all of them",
		},
		{
			Name:        "actors",
			Type:        "array",
			Items:       []entities.Item{{Type: "string"}},
			Description: "List of actor names; a movie must feature all of them (case-insensitive partial match per name)",
		},
		{
			Name:        "directors",
			Type:        "array",
			Items:       []entities.Item{{Type: "string"}},
			Description: "List of director names; a movie must be directed by all of them (case-insensitive partial match per name)",
		},
		{
			Name:        "writers",
			Type:        "array",
			Items:       []entities.Item{{Type: "string"}},
			Description: "List of writer names; a movie must credit all of them (case-insensitive partial match per name)",
		},
		{
			Name:        "year",
			Type:        "number",
			Description: "Exact release year; takes precedence over start_year/end_year",
		},
		{
			Name:        "start_year",
			Type:        "number",
			Description: "Start of a release year range (inclusive)",
		},
		{
			Name:        "end_year",
			Type:        "number",
			Description: "End of a release year range (inclusive)",
		},
		{
			Name:        "min_imdb_rating",
			Type:        "number",
			Description: "Minimum IMDb rating, e.g. 7.5",
		},
		{
			Name:        "min_metacritic_rating",
			Type:        "number",
			Description: "Minimum Metacritic score, e.g. 70",
		},
		{
			Name:        "min_tomatoes_viewer_rating",
			Type:        "number",
			Description: "Minimum Rotten Tomatoes viewer rating, e.g. 3.5",
		},
		{
			Name:        "min_tomatoes_critic_rating",
			Type:        "number",
			Description: "Minimum Rotten Tomatoes critic rating, e.g. 7.0",
		},
		{
			Name:        "rated_mpaa",
			Type:        "string",
			Description: `MPAA rating such as "R" or "PG-13" (case-insensitive exact match)`,
		},
	}
}

func (t *FindMoviesTool) Parameters() []entities.Parameter {
	params := filterParameters()
	params = append(params,
		entities.Parameter{
			Name:        "sort_by",
			Type:        "string",
			Description: `Field to sort by: a field path like "year" or "title", or a short rating key such as "imdb", "metacritic", "tomatoes_viewer", "tomatoes_critic". Defaults to "imdb.rating"`,
		},
		entities.Parameter{
			Name:        "sort_order_asc",
			Type:        "boolean",
			Description: "Sort ascending when true; defaults to false (highest first)",
		},
		entities.Parameter{
			Name:        "limit",
			Type:        "number",
			Description: "Maximum number of results; defaults to 10, 0 for no limit",
		},
		entities.Parameter{
			Name:        "projection_fields",
			Type:        "array",
			Items:       []entities.Item{{Type: "string"}},
			Description: `Specific fields to return per movie, e.g. ["title", "year"]; defaults to title, year, plot, imdb.rating, genres`,
		},
	)
	return params
}

func (t *FindMoviesTool) Execute(ctx context.Context, arguments string) (string, error) {
	t.logger.Debug("Executing find_movies", zap.String("arguments", arguments))

	args, err := decodeArguments(arguments)
	if err != nil {
		t.logger.Error("Failed to parse find_movies arguments", zap.Error(err))
		return emptyResultList, nil
	}

	filter := filterFromArgs(args, t.logger).Build()

	projectionFields := query.StringList(args["projection_fields"], t.logger)
	projection := bson.M{}
	fields := projectionFields
	if len(fields) == 0 {
		fields = entities.DefaultProjectionFields
	}
	for _, field := range fields {
		projection[field] = 1
	}
	// The identifier stays out of results unless the caller asked for it.
	if !slices.Contains(projectionFields, "_id") {
		projection["_id"] = 0
	}

	opts := entities.SearchOptions{
		Projection: projection,
		SortField:  entities.ResolveSortField(stringArgDefault(args, "sort_by", "imdb.rating")),
		Ascending:  boolArgDefault(args, "sort_order_asc", false),
		Limit:      int64(intArgDefault(args, "limit", 10)),
	}

	movies, err := t.repo.FindMovies(ctx, filter, opts)
	if err != nil {
		t.logger.Error("find_movies query failed", zap.Error(err))
		return emptyResultList, nil
	}

	data, err := json.Marshal(movies)
	if err != nil {
		t.logger.Error("Failed to marshal find_movies results", zap.Error(err))
		return emptyResultList, nil
	}

	t.logger.Info("find_movies completed", zap.Int("results", len(movies)))
	return string(data), nil
}

var _ entities.Tool = (*FindMoviesTool)(nil)
