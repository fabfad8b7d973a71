package service

import (
	"context"
	"fmt"
	"log/slog"

	"real-estate-listings/internal/database"
	"real-estate-listings/internal/dto"
	"real-estate-listings/internal/models"
)

// PropertyReader is the repository capability the service consumes.
type PropertyReader interface {
	GetFiltered(ctx context.Context, filter database.PropertyFilter) ([]models.Property, int64, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
}

// PropertyService maps between transport DTOs and domain entities and
// computes pagination metadata.
type PropertyService struct {
	repo PropertyReader
	log  *slog.Logger
}

// NewPropertyService creates a new property service.
func NewPropertyService(repo PropertyReader, log *slog.Logger) *PropertyService {
	return &PropertyService{repo: repo, log: log}
}

// GetProperties returns one page of property list items matching the
// filter, wrapped in a paged-result envelope.
func (s *PropertyService) GetProperties(ctx context.Context, filter dto.PropertyFilter) (*dto.PagedResult[dto.PropertyList], error) {
	domainFilter := database.PropertyFilter{
		Name:           filter.Name,
		Address:        filter.Address,
		MinPrice:       filter.MinPrice,
		MaxPrice:       filter.MaxPrice,
		Year:           filter.Year,
		SortBy:         filter.SortField(),
		SortDescending: filter.SortDescending,
		PageNumber:     filter.PageNumber,
		PageSize:       filter.PageSize,
	}

	properties, total, err := s.repo.GetFiltered(ctx, domainFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}

	items := make([]dto.PropertyList, 0, len(properties))
	for i := range properties {
		items = append(items, toListItem(&properties[i]))
	}

	s.log.Debug("properties retrieved", "returned", len(items), "total", total)

	result := dto.NewPagedResult(items, filter.PageNumber, filter.PageSize, total)
	return &result, nil
}

// GetPropertyByID returns the enriched detail view for one property, or
// nil when no property matches.
func (s *PropertyService) GetPropertyByID(ctx context.Context, id string) (*dto.PropertyDetail, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property %s: %w", id, err)
	}
	if property == nil {
		return nil, nil
	}
	return toDetail(property), nil
}

func toListItem(p *models.Property) dto.PropertyList {
	item := dto.PropertyList{
		ID:           p.ID.Hex(),
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
	}
	if img := p.RepresentativeImage(); img != nil {
		file := img.File
		item.ImageURL = &file
	}
	if p.Owner != nil {
		item.Owner = &dto.OwnerSummary{
			ID:    p.Owner.ID.Hex(),
			Name:  p.Owner.Name,
			Photo: p.Owner.Photo,
		}
	}
	return item
}

func toDetail(p *models.Property) *dto.PropertyDetail {
	detail := &dto.PropertyDetail{
		ID:           p.ID.Hex(),
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID.Hex(),
		Images:       make([]dto.PropertyImage, 0, len(p.Images)),
		Traces:       make([]dto.PropertyTrace, 0, len(p.Traces)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	if p.Owner != nil {
		detail.Owner = &dto.OwnerDetail{
			ID:       p.Owner.ID.Hex(),
			Name:     p.Owner.Name,
			Address:  p.Owner.Address,
			Photo:    p.Owner.Photo,
			Birthday: p.Owner.Birthday,
		}
	}

	for i := range p.Images {
		img := &p.Images[i]
		detail.Images = append(detail.Images, dto.PropertyImage{
			ID:      img.ID.Hex(),
			File:    img.File,
			Enabled: img.Enabled,
		})
	}

	for i := range p.Traces {
		tr := &p.Traces[i]
		detail.Traces = append(detail.Traces, dto.PropertyTrace{
			ID:       tr.ID.Hex(),
			DateSale: tr.DateSale,
			Name:     tr.Name,
			Value:    tr.Value,
			Tax:      tr.Tax,
			Total:    tr.Total().Amount,
		})
	}

	return detail
}
