package repositories

import (
	"context"
	"time"

	"terravista-listings/internal/models"
)

// ListingCache holds normalized listings between upstream fetches. A cache
// miss and a cache failure both look like "not there" to callers; the cache
// is never load-bearing.
type ListingCache interface {
	GetPage(ctx context.Context, key string) ([]models.Property, error)
	SetPage(ctx context.Context, key string, properties []models.Property, expiration time.Duration) error
	GetProperty(ctx context.Context, key string) (*models.Property, error)
	SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error
}
