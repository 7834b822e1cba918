package services

import (
	"context"
	"net/url"
	"time"

	"terravista-listings/internal/models"
	"terravista-listings/internal/repositories"
	"terravista-listings/internal/transformers"
	"terravista-listings/internal/utils"
	"terravista-listings/internal/validators"
	"terravista-listings/pkg/cache"
	"terravista-listings/pkg/listings"
	"terravista-listings/pkg/logger"
	"terravista-listings/pkg/metrics"
)

// DefaultFetchCap bounds the unfiltered bulk fetch. The upstream's own
// filter and pagination parameters are unreliable, so correctness comes from
// fetching one capped bulk page and re-deriving everything in-process.
// Catalogs larger than the cap are an open scalability question.
const DefaultFetchCap = 100

const (
	bulkCacheTTL     = 5 * time.Minute
	propertyCacheTTL = 15 * time.Minute
)

type ListingService struct {
	client    *listings.Client
	cache     repositories.ListingCache
	trans     transformers.PropertyTransformer
	validator validators.ListingValidator
	fetchCap  int
}

func NewListingService(
	client *listings.Client,
	listingCache repositories.ListingCache,
	trans transformers.PropertyTransformer,
	validator validators.ListingValidator,
	fetchCap int,
) *ListingService {
	if fetchCap <= 0 {
		fetchCap = DefaultFetchCap
	}
	return &ListingService{
		client:    client,
		cache:     listingCache,
		trans:     trans,
		validator: validator,
		fetchCap:  fetchCap,
	}
}

// fetchAll returns the normalized bulk set the client-side filters operate
// on. Upstream failures degrade to an empty set; downstream shaping never
// sees a transport error.
func (s *ListingService) fetchAll(ctx context.Context) []models.Property {
	cacheKey := cache.BulkPageKey(1, s.fetchCap)
	if cached, err := s.cache.GetPage(ctx, cacheKey); err == nil && cached != nil {
		metrics.CacheHitsTotal.Inc()
		return cached
	}
	metrics.CacheMissesTotal.Inc()

	records, err := s.client.FetchProjects(ctx, 1, s.fetchCap)
	if err != nil {
		logger.GlobalLogger.Errorf("Upstream fetch failed, serving empty result: %v", err)
		return nil
	}

	properties := make([]models.Property, 0, len(records))
	for _, record := range records {
		properties = append(properties, *s.trans.Normalize(record))
	}

	_ = s.cache.SetPage(ctx, cacheKey, properties, bulkCacheTTL)
	return properties
}

// GetPaginatedProperties runs the full page-view flow: bulk fetch, normalize,
// filter, paginate. It always produces a renderable response; failures show
// up as zero results.
func (s *ListingService) GetPaginatedProperties(ctx context.Context, q *models.ListingQuery, baseURL string, params url.Values) *models.PaginatedPropertiesResponse {
	s.validator.ValidateQuery(q)

	all := s.fetchAll(ctx)
	filtered := FilterProperties(all, q.Filters)
	pageSlice, meta := utils.Paginate(filtered, q.Page, q.Limit)

	if meta.Page < meta.TotalPages {
		next := utils.BuildPageURL(baseURL, meta.Page+1, meta.Limit, params)
		meta.Next = &next
	}
	if meta.Page > 1 {
		prev := utils.BuildPageURL(baseURL, meta.Page-1, meta.Limit, params)
		meta.Prev = &prev
	}

	return &models.PaginatedPropertiesResponse{
		Data:       pageSlice,
		Pagination: meta,
	}
}
