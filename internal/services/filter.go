package services

import (
	"strings"

	"terravista-listings/internal/models"
)

// FilterProperties applies the caller's criteria to an already normalized
// collection. A property is retained only when every active predicate passes;
// relative order is preserved. Inactive (zero-valued) criteria constrain
// nothing.
func FilterProperties(properties []models.Property, filters models.FilterOptions) []models.Property {
	result := make([]models.Property, 0, len(properties))
	for _, property := range properties {
		if matchesFilters(&property, &filters) {
			result = append(result, property)
		}
	}
	return result
}

func matchesFilters(p *models.Property, f *models.FilterOptions) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		if !containsFold(p.Title, search) &&
			!containsFold(p.Description, search) &&
			!containsFold(p.Location, search) &&
			!containsFold(p.Type, search) &&
			!containsFold(p.Developer, search) {
			return false
		}
	}

	if t := strings.TrimSpace(f.Type); t != "" {
		if !strings.EqualFold(p.Type, t) {
			return false
		}
	}

	// Bedrooms/bathrooms use at-least semantics; a property with an unknown
	// count never matches an active count filter.
	if f.Bedrooms > 0 {
		if p.Bedrooms == nil || *p.Bedrooms < f.Bedrooms {
			return false
		}
	}
	if f.Bathrooms > 0 {
		if p.Bathrooms == nil || *p.Bathrooms < f.Bathrooms {
			return false
		}
	}

	// Inclusive price bounds.
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}

	if listingType := strings.TrimSpace(f.ListingType); listingType != "" {
		if p.ListingType != listingType {
			return false
		}
	}

	if city := strings.ToLower(strings.TrimSpace(f.City)); city != "" {
		if !containsFold(p.Location, city) {
			return false
		}
	}

	return true
}

// containsFold reports whether haystack contains the already-lowercased
// needle, ignoring case.
func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
