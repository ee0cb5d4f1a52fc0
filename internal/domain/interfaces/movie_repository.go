package interfaces

import (
	"context"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"

	"go.mongodb.org/mongo-driver/bson"
)

// MovieRepository executes read queries against the movies collection.
// Implementations return errors; converting failures into the neutral
// values the tool surface promises is the tool layer's job.
type MovieRepository interface {
	FindMovies(ctx context.Context, filter bson.M, opts entities.SearchOptions) ([]bson.M, error)
	CountMovies(ctx context.Context, filter bson.M) (int64, error)
	AverageRating(ctx context.Context, filter bson.M, ratingField string) (*entities.RatingAverage, error)
}
