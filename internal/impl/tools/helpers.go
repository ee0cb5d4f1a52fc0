package tools

import (
	"encoding/json"

	"github.com/moviewizard/movie-mcp/internal/impl/query"

	"go.uber.org/zap"
)

// Argument extraction from a decoded JSON object. JSON numbers decode as
// float64; wrong-typed values degrade to "absent" so a sloppy caller
// loses one argument, never the whole call.

func decodeArguments(arguments string) (map[string]any, error) {
	if arguments == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func stringArg(args map[string]any, key string) string {
	v, ok := args[key].(string)
	if !ok {
		return ""
	}
	return v
}

func stringArgDefault(args map[string]any, key, defaultVal string) string {
	v, ok := args[key].(string)
	if !ok {
		return defaultVal
	}
	return v
}

func intArg(args map[string]any, key string) *int {
	v, ok := args[key].(float64)
	if !ok {
		return nil
	}
	i := int(v)
	return &i
}

func intArgDefault(args map[string]any, key string, defaultVal int) int {
	v, ok := args[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

func floatArg(args map[string]any, key string) *float64 {
	v, ok := args[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

func boolArgDefault(args map[string]any, key string, defaultVal bool) bool {
	v, ok := args[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// filterFromArgs builds the full find/count predicate set from raw
// arguments, normalizing every list-typed filter on the way in.
func filterFromArgs(args map[string]any, logger *zap.Logger) *query.Filter {
	return &query.Filter{
		Title:                   stringArg(args, "title"),
		Genres:                  query.StringList(args["genres"], logger),
		Actors:                  query.StringList(args["actors"], logger),
		Directors:               query.StringList(args["directors"], logger),
		Writers:                 query.StringList(args["writers"], logger),
		Year:                    intArg(args, "year"),
		StartYear:               intArg(args, "start_year"),
		EndYear:                 intArg(args, "end_year"),
		MinIMDBRating:           floatArg(args, "min_imdb_rating"),
		MinMetacriticRating:     intArg(args, "min_metacritic_rating"),
		MinTomatoesViewerRating: floatArg(args, "min_tomatoes_viewer_rating"),
		MinTomatoesCriticRating: floatArg(args, "min_tomatoes_critic_rating"),
		RatedMPAA:               stringArg(args, "rated_mpaa"),
	}
}

// averageFilterFromArgs builds the reduced predicate set for the average
// operation.
func averageFilterFromArgs(args map[string]any, logger *zap.Logger) *query.AverageFilter {
	return &query.AverageFilter{
		Genres:    query.StringList(args["genres"], logger),
		Actors:    query.StringList(args["actors"], logger),
		Directors: query.StringList(args["directors"], logger),
		Writers:   query.StringList(args["writers"], logger),
		Year:      intArg(args, "year"),
		StartYear: intArg(args, "start_year"),
		EndYear:   intArg(args, "end_year"),
	}
}
