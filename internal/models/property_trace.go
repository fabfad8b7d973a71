package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyTrace represents a historical sale record for a property.
type PropertyTrace struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID primitive.ObjectID `bson:"idProperty" json:"id_property"`
	DateSale   time.Time          `bson:"dateSale" json:"date_sale"`
	Name       string             `bson:"name" json:"name"`
	Value      float64            `bson:"value" json:"value"`
	Tax        float64            `bson:"tax" json:"tax"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}

// CollectionName is the MongoDB collection holding sale traces.
func (PropertyTrace) CollectionName() string {
	return "PropertyTraces"
}

// Total returns sale value plus tax.
func (t *PropertyTrace) Total() Money {
	value := NewMoney(t.Value, DefaultCurrency)
	tax := NewMoney(t.Tax, DefaultCurrency)
	// Same currency by construction, Add cannot fail here.
	total, _ := value.Add(tax)
	return total
}
