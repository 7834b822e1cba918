package services

import (
	"context"

	"terravista-listings/internal/models"
	"terravista-listings/pkg/cache"
	"terravista-listings/pkg/logger"
	"terravista-listings/pkg/metrics"
)

// GetPropertyByID fetches and normalizes a single listing. Nil means not
// found; upstream failures also surface as not found rather than an error,
// so the presentation layer only ever renders a listing or a not-found state.
func (s *ListingService) GetPropertyByID(ctx context.Context, id string) *models.Property {
	propertyKey := cache.PropertyKey(id)
	if property, err := s.cache.GetProperty(ctx, propertyKey); err == nil && property != nil {
		metrics.CacheHitsTotal.Inc()
		return property
	}
	metrics.CacheMissesTotal.Inc()

	record, err := s.client.FetchProjectByID(ctx, id)
	if err != nil {
		logger.GlobalLogger.Errorf("Upstream fetch failed: id=%s, error=%v", id, err)
		return nil
	}
	if record == nil {
		return nil
	}

	property := s.trans.Normalize(record)
	_ = s.cache.SetProperty(ctx, propertyKey, property, propertyCacheTTL)
	return property
}
