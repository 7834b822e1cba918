package validators

import (
	"terravista-listings/internal/models"
)

type ListingValidator interface {
	ValidateQuery(q *models.ListingQuery)
}
