package repositories

import (
	"context"
	"time"

	"terravista-listings/internal/models"
	"terravista-listings/pkg/cache"
)

type listingCache struct{}

// NewListingCache returns the Redis-backed listing cache.
func NewListingCache() ListingCache {
	return &listingCache{}
}

func (c *listingCache) GetPage(ctx context.Context, key string) ([]models.Property, error) {
	var properties []models.Property
	found, err := cache.GetJSON(ctx, key, &properties)
	if err != nil || !found {
		return nil, err
	}
	return properties, nil
}

func (c *listingCache) SetPage(ctx context.Context, key string, properties []models.Property, expiration time.Duration) error {
	return cache.SetJSON(ctx, key, properties, expiration)
}

func (c *listingCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	var property models.Property
	found, err := cache.GetJSON(ctx, key, &property)
	if err != nil || !found {
		return nil, err
	}
	return &property, nil
}

func (c *listingCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	return cache.SetJSON(ctx, key, property, expiration)
}

type noopListingCache struct{}

// NewNoopListingCache returns a cache that stores nothing, used when Redis is
// disabled.
func NewNoopListingCache() ListingCache {
	return &noopListingCache{}
}

func (c *noopListingCache) GetPage(ctx context.Context, key string) ([]models.Property, error) {
	return nil, nil
}

func (c *noopListingCache) SetPage(ctx context.Context, key string, properties []models.Property, expiration time.Duration) error {
	return nil
}

func (c *noopListingCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	return nil, nil
}

func (c *noopListingCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	return nil
}
