package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"real-estate-listings/internal/config"
	"real-estate-listings/internal/models"
)

// DB wraps the MongoDB client and database handle. The client is long-lived
// and safe for concurrent use across requests.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to MongoDB and verifies the connection with a ping.
func NewDB(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Owners returns the owners collection.
func (d *DB) Owners() *mongo.Collection {
	return d.db.Collection(models.Owner{}.CollectionName())
}

// Properties returns the properties collection.
func (d *DB) Properties() *mongo.Collection {
	return d.db.Collection(models.Property{}.CollectionName())
}

// PropertyImages returns the property images collection.
func (d *DB) PropertyImages() *mongo.Collection {
	return d.db.Collection(models.PropertyImage{}.CollectionName())
}

// PropertyTraces returns the property sale traces collection.
func (d *DB) PropertyTraces() *mongo.Collection {
	return d.db.Collection(models.PropertyTrace{}.CollectionName())
}

// InitSchema creates the indexes backing filtering, sorting and the
// read-time joins. Creating an index that already exists is a no-op.
func (d *DB) InitSchema(ctx context.Context) error {
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		d.Owners(): {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		d.Properties(): {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "address", Value: 1}}},
			{Keys: bson.D{{Key: "price", Value: 1}}},
			{Keys: bson.D{{Key: "year", Value: 1}}},
			{Keys: bson.D{{Key: "idOwner", Value: 1}}},
			{Keys: bson.D{{Key: "codeInternal", Value: 1}}},
		},
		d.PropertyImages(): {
			{Keys: bson.D{{Key: "idProperty", Value: 1}}},
			{Keys: bson.D{{Key: "enabled", Value: 1}}},
			{Keys: bson.D{{Key: "idProperty", Value: 1}, {Key: "enabled", Value: 1}}},
		},
		d.PropertyTraces(): {
			{Keys: bson.D{{Key: "idProperty", Value: 1}}},
			{Keys: bson.D{{Key: "dateSale", Value: -1}}},
		},
	}

	for coll, idx := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
		}
	}
	return nil
}
