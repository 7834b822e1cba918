package transformers

import (
	"terravista-listings/internal/models"
)

type PropertyTransformer interface {
	Normalize(raw models.RawRecord) *models.Property
}
