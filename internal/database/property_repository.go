package database

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/models"
)

// PropertyFilter is the domain-level search filter the repository
// translates into a MongoDB query. Optional predicates are pointers;
// nil imposes no constraint. All provided predicates are ANDed.
type PropertyFilter struct {
	Name           string
	Address        string
	MinPrice       *float64
	MaxPrice       *float64
	Year           *int
	SortBy         string
	SortDescending bool
	PageNumber     int
	PageSize       int
}

// PropertyRepository runs property queries and aggregation pipelines.
type PropertyRepository struct {
	db *DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetFiltered returns one page of properties matching the filter, enriched
// with owner, images and sale traces, plus the total count of matches.
// The count is computed on the same match document independent of
// pagination, so it always reflects the full filtered result set.
func (r *PropertyRepository) GetFiltered(ctx context.Context, filter PropertyFilter) ([]models.Property, int64, error) {
	match := buildMatch(filter)

	total, err := r.db.Properties().CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	// Sort must run before skip/limit; the lookups run after limit since
	// they only touch fields of the returned page.
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": sortStage(filter)},
		{"$skip": skipCount(filter)},
		{"$limit": filter.PageSize},
	}
	pipeline = append(pipeline, lookupStages()...)

	cursor, err := r.db.Properties().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, fmt.Errorf("failed to decode properties: %w", err)
	}

	return properties, total, nil
}

// GetByID returns a single enriched property, or nil when no property
// matches. A malformed id short-circuits to nil instead of surfacing a
// driver error.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	pipeline := []bson.M{
		{"$match": bson.M{"_id": oid}},
	}
	pipeline = append(pipeline, lookupStages()...)

	cursor, err := r.db.Properties().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode property %s: %w", id, err)
	}
	if len(properties) == 0 {
		return nil, nil
	}
	return &properties[0], nil
}

// buildMatch composes the provided predicates into a single $match filter
// document. With no predicates it matches everything.
func buildMatch(filter PropertyFilter) bson.M {
	var conditions []bson.M

	if filter.Name != "" {
		conditions = append(conditions, bson.M{"name": bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"},
		}})
	}
	if filter.Address != "" {
		conditions = append(conditions, bson.M{"address": bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Address), Options: "i"},
		}})
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, bson.M{"price": bson.M{"$gte": *filter.MinPrice}})
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, bson.M{"price": bson.M{"$lte": *filter.MaxPrice}})
	}
	if filter.Year != nil {
		conditions = append(conditions, bson.M{"year": *filter.Year})
	}

	if len(conditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conditions}
}

// sortStage maps the filter's sort parameters onto a $sort document.
// The sort field is restricted to the allow-list; anything else falls
// back to name.
func sortStage(filter PropertyFilter) bson.D {
	direction := 1
	if filter.SortDescending {
		direction = -1
	}

	field := "name"
	switch filter.SortBy {
	case "name", "address", "price", "year":
		field = filter.SortBy
	}

	return bson.D{{Key: field, Value: direction}}
}

// skipCount returns the number of records to skip for the requested page.
func skipCount(filter PropertyFilter) int {
	return (filter.PageNumber - 1) * filter.PageSize
}

// lookupStages enriches each property with its owner (at most one,
// missing owners degrade to an absent field), all of its images, and its
// sale traces sorted newest-first.
func lookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from": models.Owner{}.CollectionName(),
			"let":  bson.M{"ownerId": "$idOwner"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$ownerId"}}}},
				{"$limit": 1},
			},
			"as": "Owner",
		}},
		{"$unwind": bson.M{
			"path":                       "$Owner",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$lookup": bson.M{
			"from": models.PropertyImage{}.CollectionName(),
			"let":  bson.M{"propertyId": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$idProperty", "$$propertyId"}}}},
			},
			"as": "Images",
		}},
		{"$lookup": bson.M{
			"from": models.PropertyTrace{}.CollectionName(),
			"let":  bson.M{"propertyId": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$idProperty", "$$propertyId"}}}},
				{"$sort": bson.M{"dateSale": -1}},
			},
			"as": "Traces",
		}},
	}
}
