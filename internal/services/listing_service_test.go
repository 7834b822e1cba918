package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"terravista-listings/internal/models"
	"terravista-listings/internal/repositories"
	"terravista-listings/internal/transformers"
	"terravista-listings/internal/validators"
	"terravista-listings/pkg/listings"
	"terravista-listings/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func newTestService(t *testing.T, handler http.HandlerFunc) (*ListingService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service := NewListingService(
		listings.NewClient(server.URL),
		repositories.NewNoopListingCache(),
		transformers.NewPropertyTransformer(),
		validators.NewListingValidator(),
		DefaultFetchCap,
	)
	return service, server
}

func bulkUpstream(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": "1", "name": "Marina Tower", "property_type": "Apartment", "min_price": 1200000, "bedrooms": "two", "city": "Dubai", "listing_type": "sale"},
				{"id": "2", "name": "Palm Villa", "property_type": "Villa", "price": 5500000, "bedrooms": 4, "city": "Dubai", "listing_type": "sale"},
				{"id": "3", "name": "Downtown Studio", "property_type": "Apartment", "price": 60000, "city": "Abu Dhabi", "listing_type": "rent"},
				{"id": "4", "name": "Hillside Townhouse", "property_type": "Townhouse", "price": 2100000, "bedrooms": "three", "city": "Dubai"}
			]
		}`))
	}
}

func TestGetPaginatedProperties(t *testing.T) {
	service, _ := newTestService(t, bulkUpstream(t))

	q := &models.ListingQuery{Page: 1, Limit: 2}
	resp := service.GetPaginatedProperties(context.Background(), q, "/api/properties", url.Values{})

	if resp.Pagination.Total != 4 {
		t.Fatalf("expected total 4, got %d", resp.Pagination.Total)
	}
	if resp.Pagination.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", resp.Pagination.TotalPages)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 items on page, got %d", len(resp.Data))
	}
	if resp.Data[0].Title != "Marina Tower" {
		t.Errorf("upstream order not preserved, got %q first", resp.Data[0].Title)
	}
	if resp.Pagination.Next == nil {
		t.Fatal("expected next link on first page")
	}
	if resp.Pagination.Prev != nil {
		t.Error("expected no prev link on first page")
	}
}

func TestGetPaginatedProperties_Filtered(t *testing.T) {
	service, _ := newTestService(t, bulkUpstream(t))

	q := &models.ListingQuery{
		Page:    1,
		Limit:   20,
		Filters: models.FilterOptions{Bedrooms: 3, City: "Dubai"},
	}
	resp := service.GetPaginatedProperties(context.Background(), q, "/api/properties", url.Values{})

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(resp.Data))
	}
	if resp.Data[0].Title != "Palm Villa" || resp.Data[1].Title != "Hillside Townhouse" {
		t.Errorf("unexpected matches: %q, %q", resp.Data[0].Title, resp.Data[1].Title)
	}
	if resp.Pagination.Next != nil || resp.Pagination.Prev != nil {
		t.Error("single page must carry no page links")
	}
}

func TestGetPaginatedProperties_UpstreamDown(t *testing.T) {
	service, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	q := &models.ListingQuery{Page: 1, Limit: 20}
	resp := service.GetPaginatedProperties(context.Background(), q, "/api/properties", url.Values{})

	if resp == nil {
		t.Fatal("expected a response even with upstream down")
	}
	if resp.Data == nil {
		t.Fatal("data must be an empty list, not nil")
	}
	if len(resp.Data) != 0 || resp.Pagination.Total != 0 {
		t.Fatalf("expected empty result, got %+v", resp.Pagination)
	}
}

func TestGetPaginatedProperties_NormalizesRecords(t *testing.T) {
	service, _ := newTestService(t, bulkUpstream(t))

	q := &models.ListingQuery{Page: 1, Limit: 20}
	resp := service.GetPaginatedProperties(context.Background(), q, "/api/properties", url.Values{})

	first := resp.Data[0]
	if first.Price != 1200000 {
		t.Errorf("expected min_price fallback, got %v", first.Price)
	}
	if first.Bedrooms == nil || *first.Bedrooms != 2 {
		t.Errorf("expected word-number bedrooms 2, got %v", first.Bedrooms)
	}
	if first.Location != "Dubai" {
		t.Errorf("expected city promoted to location, got %q", first.Location)
	}

	last := resp.Data[3]
	if last.ListingType != "sale" {
		t.Errorf("expected default listing type sale, got %q", last.ListingType)
	}
}

func TestGetPropertyByID(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/projects/42" {
			w.Write([]byte(`{"success":true,"data":{"id":"42","name":"Palm Villa","price":5500000}}`))
			return
		}
		http.NotFound(w, r)
	})

	property := service.GetPropertyByID(context.Background(), "42")
	if property == nil {
		t.Fatal("expected a property")
	}
	if property.Title != "Palm Villa" || property.Price != 5500000 {
		t.Errorf("unexpected property: %+v", property)
	}

	if missing := service.GetPropertyByID(context.Background(), "404"); missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}
}

func TestGetRelatedProperties(t *testing.T) {
	service, _ := newTestService(t, bulkUpstream(t))

	related := service.GetRelatedProperties(context.Background(), "1", "Apartment", 4)
	if len(related) != 1 {
		t.Fatalf("expected 1 related apartment, got %d", len(related))
	}
	if related[0].IDString() != "3" {
		t.Errorf("expected property 3, got %s", related[0].IDString())
	}

	any := service.GetRelatedProperties(context.Background(), "1", "", 2)
	if len(any) != 2 {
		t.Fatalf("expected limit respected, got %d", len(any))
	}
	for _, p := range any {
		if p.IDString() == "1" {
			t.Error("excluded listing leaked into related set")
		}
	}
}
