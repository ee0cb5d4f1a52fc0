package repositories_mongo

import (
	"context"
	"math"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"
	"github.com/moviewizard/movie-mcp/internal/domain/errors"
	"github.com/moviewizard/movie-mcp/internal/domain/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMovieRepository struct {
	collection *mongo.Collection
}

func NewMongoMovieRepository(collection *mongo.Collection) *MongoMovieRepository {
	return &MongoMovieRepository{
		collection: collection,
	}
}

// FindMovies runs a filtered find with projection, sort, and limit
// applied. Documents are returned raw; the projection decides their
// shape. A limit of zero or less means unlimited.
func (r *MongoMovieRepository) FindMovies(ctx context.Context, filter bson.M, opts entities.SearchOptions) ([]bson.M, error) {
	findOpts := options.Find()
	if len(opts.Projection) > 0 {
		findOpts.SetProjection(opts.Projection)
	}
	if opts.SortField != "" {
		order := -1
		if opts.Ascending {
			order = 1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: order}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, errors.InternalErrorf("failed to find movies: %v", err)
	}
	defer cursor.Close(ctx)

	movies := []bson.M{}
	for cursor.Next(ctx) {
		var movie bson.M
		if err := cursor.Decode(&movie); err != nil {
			return nil, errors.InternalErrorf("failed to decode movie: %v", err)
		}
		movies = append(movies, movie)
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.InternalErrorf("failed to find movies: %v", err)
	}

	return movies, nil
}

// CountMovies counts documents matching the filter.
func (r *MongoMovieRepository) CountMovies(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.InternalErrorf("failed to count movies: %v", err)
	}
	return count, nil
}

// AverageRating computes the arithmetic mean of ratingField over the
// matching documents, in a single group. The match is tightened so the
// field must exist and be numeric: a movie without the rating is left
// out of both the average and the count rather than dragged in as zero.
func (r *MongoMovieRepository) AverageRating(ctx context.Context, filter bson.M, ratingField string) (*entities.RatingAverage, error) {
	match := bson.M{}
	for k, v := range filter {
		match[k] = v
	}
	match[ratingField] = bson.M{"$exists": true, "$type": "number"}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$" + ratingField},
			"movieCount":    bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.InternalErrorf("failed to aggregate ratings: %v", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		AverageRating *float64 `bson:"averageRating"`
		MovieCount    int64    `bson:"movieCount"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, errors.InternalErrorf("failed to decode rating aggregate: %v", err)
	}

	// An empty filter match produces no group at all.
	if len(groups) == 0 || groups[0].MovieCount == 0 {
		return &entities.RatingAverage{AverageRating: nil, MovieCount: 0}, nil
	}

	result := &entities.RatingAverage{MovieCount: groups[0].MovieCount}
	if groups[0].AverageRating != nil {
		rounded := math.Round(*groups[0].AverageRating*100) / 100
		result.AverageRating = &rounded
	}
	return result, nil
}

var _ interfaces.MovieRepository = (*MongoMovieRepository)(nil)
