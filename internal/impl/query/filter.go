package query

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Filter holds the optional predicates of a movie query. Zero-valued
// fields impose no constraint; a movie missing an attribute is only
// excluded when a predicate explicitly requires it.
type Filter struct {
	Title     string
	Genres    []string
	Actors    []string
	Directors []string
	Writers   []string

	Year      *int
	StartYear *int
	EndYear   *int

	MinIMDBRating           *float64
	MinMetacriticRating     *int
	MinTomatoesViewerRating *float64
	MinTomatoesCriticRating *float64

	RatedMPAA string
}

// AverageFilter is the reduced predicate set accepted by the average
// operation. Title, minimum-rating, and MPAA predicates are structurally
// absent here: they are not meaningful for a broad averaging query.
type AverageFilter struct {
	Genres    []string
	Actors    []string
	Directors []string
	Writers   []string

	Year      *int
	StartYear *int
	EndYear   *int
}

// Build composes the Mongo filter document. Every supplied predicate
// contributes one clause; clauses combine with implicit AND. With no
// predicates the result is an empty document, which matches everything.
func (f *Filter) Build() bson.M {
	filter := bson.M{}

	if f.Title != "" {
		filter["title"] = bson.M{"$regex": f.Title, "$options": "i"}
	}

	if len(f.Genres) > 0 {
		// All supplied genres must be present, not just one.
		filter["genres"] = bson.M{"$all": f.Genres}
	}

	// Each person name becomes its own case-insensitive substring clause
	// against the role's array field, so multiple names for the same role
	// conjoin rather than alternate.
	var people []bson.M
	for _, role := range []struct {
		field string
		names []string
	}{
		{"cast", f.Actors},
		{"directors", f.Directors},
		{"writers", f.Writers},
	} {
		for _, name := range role.names {
			people = append(people, bson.M{role.field: bson.M{"$regex": name, "$options": "i"}})
		}
	}
	if len(people) > 0 {
		filter["$and"] = people
	}

	// An exact year wins over any supplied range bounds.
	switch {
	case f.Year != nil:
		filter["year"] = *f.Year
	case f.StartYear != nil || f.EndYear != nil:
		bounds := bson.M{}
		if f.StartYear != nil {
			bounds["$gte"] = *f.StartYear
		}
		if f.EndYear != nil {
			bounds["$lte"] = *f.EndYear
		}
		filter["year"] = bounds
	}

	if f.MinIMDBRating != nil {
		filter["imdb.rating"] = bson.M{"$gte": *f.MinIMDBRating, "$exists": true}
	}
	if f.MinMetacriticRating != nil {
		filter["metacritic"] = bson.M{"$gte": *f.MinMetacriticRating, "$exists": true}
	}
	if f.MinTomatoesViewerRating != nil {
		filter["tomatoes.viewer.rating"] = bson.M{"$gte": *f.MinTomatoesViewerRating, "$exists": true}
	}
	if f.MinTomatoesCriticRating != nil {
		filter["tomatoes.critic.rating"] = bson.M{"$gte": *f.MinTomatoesCriticRating, "$exists": true}
	}

	if f.RatedMPAA != "" {
		// Anchored so "PG" does not match "PG-13".
		filter["rated"] = bson.M{"$regex": "^" + f.RatedMPAA + "$", "$options": "i"}
	}

	return filter
}

// Build composes the Mongo filter for the reduced average predicate set.
func (f *AverageFilter) Build() bson.M {
	full := Filter{
		Genres:    f.Genres,
		Actors:    f.Actors,
		Directors: f.Directors,
		Writers:   f.Writers,
		Year:      f.Year,
		StartYear: f.StartYear,
		EndYear:   f.EndYear,
	}
	return full.Build()
}
