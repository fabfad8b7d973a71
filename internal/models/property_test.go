package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRepresentativeImage(t *testing.T) {
	t.Run("no images", func(t *testing.T) {
		p := Property{}
		assert.Nil(t, p.RepresentativeImage())
	})

	t.Run("only disabled images", func(t *testing.T) {
		p := Property{Images: []PropertyImage{
			{File: "a.jpg", Enabled: false},
			{File: "b.jpg", Enabled: false},
		}}
		assert.Nil(t, p.RepresentativeImage())
	})

	t.Run("first enabled wins regardless of disabled ordering", func(t *testing.T) {
		p := Property{Images: []PropertyImage{
			{File: "disabled.jpg", Enabled: false},
			{File: "first-enabled.jpg", Enabled: true},
			{File: "second-enabled.jpg", Enabled: true},
		}}
		img := p.RepresentativeImage()
		require.NotNil(t, img)
		assert.Equal(t, "first-enabled.jpg", img.File)
	})
}

func TestPropertyTraceTotal(t *testing.T) {
	tr := PropertyTrace{
		ID:       primitive.NewObjectID(),
		DateSale: time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
		Value:    250000,
		Tax:      25000,
	}
	total := tr.Total()
	assert.Equal(t, 275000.0, total.Amount)
	assert.Equal(t, DefaultCurrency, total.Currency)
}

func TestCollectionNames(t *testing.T) {
	assert.Equal(t, "Owners", Owner{}.CollectionName())
	assert.Equal(t, "Properties", Property{}.CollectionName())
	assert.Equal(t, "PropertyImages", PropertyImage{}.CollectionName())
	assert.Equal(t, "PropertyTraces", PropertyTrace{}.CollectionName())
}
