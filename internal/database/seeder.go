package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/models"
)

// Seeder loads sample listing data for development environments.
type Seeder struct {
	db  *DB
	log *slog.Logger
}

// NewSeeder creates a new database seeder.
func NewSeeder(db *DB, log *slog.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// SeedResult reports what a seeding run inserted.
type SeedResult struct {
	Owners     int  `json:"owners"`
	Properties int  `json:"properties"`
	Images     int  `json:"images"`
	Traces     int  `json:"traces"`
	Skipped    bool `json:"skipped"`
}

// taxRate is applied to the sale value to derive the recorded tax.
const taxRate = 0.10

// Seed inserts the sample dataset. A non-empty database is left untouched
// unless force is set, in which case all four collections are dropped
// first.
func (s *Seeder) Seed(ctx context.Context, force bool) (*SeedResult, error) {
	count, err := s.db.Properties().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing data: %w", err)
	}

	if count > 0 {
		if !force {
			s.log.Info("database already seeded, skipping", "properties", count)
			return &SeedResult{Skipped: true}, nil
		}
		for _, coll := range []string{
			models.Owner{}.CollectionName(),
			models.Property{}.CollectionName(),
			models.PropertyImage{}.CollectionName(),
			models.PropertyTrace{}.CollectionName(),
		} {
			if err := s.db.db.Collection(coll).Drop(ctx); err != nil {
				return nil, fmt.Errorf("failed to drop %s: %w", coll, err)
			}
		}
		s.log.Info("existing collections dropped")
	}

	now := time.Now().UTC()
	owners := sampleOwners(now)
	properties := sampleProperties(owners, now)
	images := sampleImages(properties, now)
	traces := sampleTraces(properties, now)

	if _, err := s.db.Owners().InsertMany(ctx, toAny(owners)); err != nil {
		return nil, fmt.Errorf("failed to insert owners: %w", err)
	}
	if _, err := s.db.Properties().InsertMany(ctx, toAny(properties)); err != nil {
		return nil, fmt.Errorf("failed to insert properties: %w", err)
	}
	if _, err := s.db.PropertyImages().InsertMany(ctx, toAny(images)); err != nil {
		return nil, fmt.Errorf("failed to insert images: %w", err)
	}
	if _, err := s.db.PropertyTraces().InsertMany(ctx, toAny(traces)); err != nil {
		return nil, fmt.Errorf("failed to insert traces: %w", err)
	}

	result := &SeedResult{
		Owners:     len(owners),
		Properties: len(properties),
		Images:     len(images),
		Traces:     len(traces),
	}
	s.log.Info("database seeded",
		"owners", result.Owners,
		"properties", result.Properties,
		"images", result.Images,
		"traces", result.Traces,
	)
	return result, nil
}

func sampleOwners(now time.Time) []models.Owner {
	data := []struct {
		name, address, photo string
		birthYear            int
	}{
		{"Carlos Ramirez", "742 Palm Grove Ave, Miami, FL", "https://images.example.com/owners/carlos.jpg", 1968},
		{"Elena Vasquez", "18 Harbor View Rd, San Diego, CA", "https://images.example.com/owners/elena.jpg", 1975},
		{"Marcus Boone", "501 Birchwood Ln, Austin, TX", "", 1982},
		{"Priya Natarajan", "92 Lakeside Ct, Seattle, WA", "https://images.example.com/owners/priya.jpg", 1979},
		{"Sofia Mendel", "330 Cypress St, Orlando, FL", "", 1990},
	}

	owners := make([]models.Owner, len(data))
	for i, d := range data {
		owners[i] = models.Owner{
			ID:        primitive.NewObjectID(),
			Name:      d.name,
			Address:   d.address,
			Photo:     d.photo,
			Birthday:  time.Date(d.birthYear, time.March, 12, 0, 0, 0, 0, time.UTC),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return owners
}

func sampleProperties(owners []models.Owner, now time.Time) []models.Property {
	names := []string{
		"Modern Downtown Loft", "Sunset Villa", "Harborfront Condo",
		"Cedar Ridge House", "Palm Court Apartment", "Lakeview Bungalow",
		"Oakwood Estate", "Riverside Cottage", "Skyline Penthouse",
		"Garden Terrace Home", "Whispering Pines Cabin", "Bayshore Duplex",
		"Maple Street Townhouse", "Coral Gables Residence", "Hilltop Retreat",
		"Aspen Meadow House", "Seabreeze Flat", "Willow Creek Ranch",
		"Union Square Studio", "Magnolia Manor", "Stonebridge Villa",
		"Clearwater Cottage", "Fox Hollow Farmhouse", "Parkside Apartment",
		"Golden Gate Loft",
	}
	streets := []string{
		"Ocean Drive", "Sunset Blvd", "Congress Ave", "Pine Street", "Orange Blossom Trail",
	}
	cities := []string{
		"Miami, FL", "San Diego, CA", "Austin, TX", "Seattle, WA", "Orlando, FL",
	}

	properties := make([]models.Property, len(names))
	for i, name := range names {
		properties[i] = models.Property{
			ID:           primitive.NewObjectID(),
			Name:         name,
			Address:      fmt.Sprintf("%d %s, %s", 100+i*37, streets[i%len(streets)], cities[i%len(cities)]),
			Price:        95000 + float64(i)*28750,
			CodeInternal: fmt.Sprintf("PROP-%04d", i+1),
			Year:         1985 + (i*3)%40,
			OwnerID:      owners[i%len(owners)].ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return properties
}

func sampleImages(properties []models.Property, now time.Time) []models.PropertyImage {
	var images []models.PropertyImage
	for i, p := range properties {
		// The first property deliberately gets only disabled images so the
		// list view exercises the null-thumbnail path; the second gets
		// several enabled ones (the store does not enforce a single
		// enabled image per property).
		imageCount := 1 + i%3
		for j := 0; j < imageCount; j++ {
			enabled := true
			if i == 0 {
				enabled = false
			} else if i != 1 {
				enabled = j == 0
			}
			images = append(images, models.PropertyImage{
				ID:         primitive.NewObjectID(),
				PropertyID: p.ID,
				File:       fmt.Sprintf("https://images.example.com/properties/%s-%d.jpg", p.CodeInternal, j+1),
				Enabled:    enabled,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}
	return images
}

func sampleTraces(properties []models.Property, now time.Time) []models.PropertyTrace {
	var traces []models.PropertyTrace
	for i, p := range properties {
		traceCount := 1 + i%3
		for j := 0; j < traceCount; j++ {
			value := models.NewMoney(p.Price*(0.70+0.10*float64(j)), models.DefaultCurrency)
			tax := value.Mul(taxRate)
			traces = append(traces, models.PropertyTrace{
				ID:         primitive.NewObjectID(),
				PropertyID: p.ID,
				DateSale:   now.AddDate(-(traceCount - j), -(i % 12), 0),
				Name:       fmt.Sprintf("Sale #%d of %s", j+1, p.Name),
				Value:      value.Amount,
				Tax:        tax.Amount,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}
	return traces
}

func toAny[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}
