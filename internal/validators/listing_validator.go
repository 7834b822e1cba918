package validators

import (
	"strings"

	"terravista-listings/internal/models"
)

type listingValidator struct{}

func NewListingValidator() ListingValidator {
	return &listingValidator{}
}

// ValidateQuery clamps paging values and drops meaningless criteria so the
// filter engine only ever sees usable predicates. All inputs are treated
// permissively; nothing here fails.
func (v *listingValidator) ValidateQuery(q *models.ListingQuery) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	f := &q.Filters
	f.Type = strings.TrimSpace(f.Type)
	f.City = strings.TrimSpace(f.City)
	f.Search = strings.TrimSpace(f.Search)

	if f.Bedrooms < 0 {
		f.Bedrooms = 0
	}
	if f.Bathrooms < 0 {
		f.Bathrooms = 0
	}
	if f.MinPrice < 0 {
		f.MinPrice = 0
	}
	if f.MaxPrice < 0 {
		f.MaxPrice = 0
	}

	listingType := strings.ToLower(strings.TrimSpace(f.ListingType))
	if listingType != "sale" && listingType != "rent" {
		listingType = ""
	}
	f.ListingType = listingType
}
