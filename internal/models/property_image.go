package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyImage represents an image associated with a property.
type PropertyImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID primitive.ObjectID `bson:"idProperty" json:"id_property"`
	File       string             `bson:"file" json:"file"`
	Enabled    bool               `bson:"enabled" json:"enabled"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}

// CollectionName is the MongoDB collection holding property images.
func (PropertyImage) CollectionName() string {
	return "PropertyImages"
}
