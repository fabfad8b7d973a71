package dto

import "time"

// OwnerSummary is the owner snapshot embedded in list items.
type OwnerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

// OwnerDetail is the full owner view embedded in property detail.
type OwnerDetail struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo,omitempty"`
	Birthday time.Time `json:"birthday"`
}

// PropertyList is one item of the paginated listing. ImageURL is the file
// reference of the first enabled image, null when the property has none.
type PropertyList struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Price        float64       `json:"price"`
	CodeInternal string        `json:"codeInternal,omitempty"`
	Year         int           `json:"year"`
	ImageURL     *string       `json:"imageUrl"`
	Owner        *OwnerSummary `json:"owner"`
}

// PropertyImage is an image entry in the property detail view.
type PropertyImage struct {
	ID      string `json:"id"`
	File    string `json:"file"`
	Enabled bool   `json:"enabled"`
}

// PropertyTrace is a sale-history entry in the property detail view.
// Total is value plus tax.
type PropertyTrace struct {
	ID       string    `json:"id"`
	DateSale time.Time `json:"dateSale"`
	Name     string    `json:"name"`
	Value    float64   `json:"value"`
	Tax      float64   `json:"tax"`
	Total    float64   `json:"total"`
}

// PropertyDetail is the full single-property view with owner, images and
// sale traces attached.
type PropertyDetail struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        float64         `json:"price"`
	CodeInternal string          `json:"codeInternal,omitempty"`
	Year         int             `json:"year"`
	OwnerID      string          `json:"ownerId"`
	Owner        *OwnerDetail    `json:"owner"`
	Images       []PropertyImage `json:"images"`
	Traces       []PropertyTrace `json:"traces"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
