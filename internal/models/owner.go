package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner represents a property owner.
type Owner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Address  string             `bson:"address" json:"address"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Birthday time.Time          `bson:"birthday" json:"birthday"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// CollectionName is the MongoDB collection holding owners.
func (Owner) CollectionName() string {
	return "Owners"
}
