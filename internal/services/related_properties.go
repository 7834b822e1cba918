package services

import (
	"context"
	"strings"

	"terravista-listings/internal/models"
)

// GetRelatedProperties returns up to limit listings for a detail page's
// "similar properties" strip: the listing itself is excluded by id, and an
// optional type narrows the set to the same category.
func (s *ListingService) GetRelatedProperties(ctx context.Context, excludeID, propertyType string, limit int) []models.Property {
	if limit <= 0 {
		limit = 4
	}

	related := make([]models.Property, 0, limit)
	for _, property := range s.fetchAll(ctx) {
		if property.IDString() == excludeID {
			continue
		}
		if propertyType != "" && !strings.EqualFold(property.Type, propertyType) {
			continue
		}
		related = append(related, property)
		if len(related) == limit {
			break
		}
	}
	return related
}
