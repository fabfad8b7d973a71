package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property represents a real estate property listing.
type Property struct {
	// 基本情報
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Price        float64            `bson:"price" json:"price"`
	CodeInternal string             `bson:"codeInternal,omitempty" json:"code_internal,omitempty"`
	Year         int                `bson:"year" json:"year"`
	OwnerID      primitive.ObjectID `bson:"idOwner" json:"id_owner"`

	// Populated only by aggregation lookups at read time, never persisted
	// on the property document itself.
	Owner  *Owner          `bson:"Owner,omitempty" json:"owner,omitempty"`
	Images []PropertyImage `bson:"Images,omitempty" json:"images,omitempty"`
	Traces []PropertyTrace `bson:"Traces,omitempty" json:"traces,omitempty"`

	// タイムスタンプ
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// CollectionName is the MongoDB collection holding properties.
func (Property) CollectionName() string {
	return "Properties"
}

// RepresentativeImage returns the first enabled image, or nil when the
// property has no enabled images. More than one image may be flagged
// enabled; stored order decides which one wins.
func (p *Property) RepresentativeImage() *PropertyImage {
	for i := range p.Images {
		if p.Images[i].Enabled {
			return &p.Images[i]
		}
	}
	return nil
}
