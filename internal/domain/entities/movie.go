package entities

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Movie documents live in the external sample_mflix.movies collection.
// This component never decodes them into a struct; results are returned
// as raw documents shaped by the caller's projection. The names below are
// the only schema knowledge it carries.

// RatingFieldPaths maps the short rating keys exposed on the tool surface
// to the dotted field paths used by the movies collection. Keys are
// accepted for sort_by (with unmapped keys passed through verbatim as raw
// field paths) and required for get_average_rating.
var RatingFieldPaths = map[string]string{
	"imdb":                        "imdb.rating",
	"metacritic":                  "metacritic",
	"tomatoes_viewer":             "tomatoes.viewer.rating",
	"tomatoes_critic":             "tomatoes.critic.rating",
	"imdb_votes":                  "imdb.votes",
	"tomatoes_viewer_num_reviews": "tomatoes.viewer.numReviews",
	"tomatoes_critic_num_reviews": "tomatoes.critic.numReviews",
}

// DefaultProjectionFields is the field set returned by find_movies when
// the caller does not ask for specific fields.
var DefaultProjectionFields = []string{"title", "year", "plot", "imdb.rating", "genres"}

// ResolveSortField maps a short rating key to its field path, or returns
// the key unchanged so callers can sort by any raw field path.
func ResolveSortField(key string) string {
	if path, ok := RatingFieldPaths[key]; ok {
		return path
	}
	return key
}

// RatingFieldPath is the strict lookup used by the average operation:
// unknown keys are rejected rather than passed through.
func RatingFieldPath(key string) (string, bool) {
	path, ok := RatingFieldPaths[key]
	return path, ok
}

// SearchOptions carries the non-filter parts of a find: projection,
// sort, and limit. A Limit of zero or less means unlimited.
type SearchOptions struct {
	Projection bson.M
	SortField  string
	Ascending  bool
	Limit      int64
}

// RatingAverage is the result of the average-rating aggregation.
// AverageRating is nil when no documents contributed; Error is set only
// on execution failure, distinguishing it from an empty match.
type RatingAverage struct {
	AverageRating *float64 `json:"average_rating"`
	MovieCount    int64    `json:"movie_count"`
	Error         string   `json:"error,omitempty"`
}
