// internal/models/property.go
package models

import (
	"fmt"
	"math"
	"strconv"
)

// RawRecord is one listing exactly as the upstream projects API returned it.
// Nothing about it is guaranteed: any field may be missing, null, wrongly
// typed, or present under one of several alternate names.
type RawRecord map[string]interface{}

// Property is the canonical listing shape the rest of the service depends on.
// Guaranteed fields (Title, Type, Location, MainImage, ListingType) are always
// populated, Price and Area are never negative, and Amenities/Gallery are
// never nil. Optional fields are either absent or hold a meaningful value.
type Property struct {
	ID          interface{} `json:"id,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Price       float64     `json:"price"`
	Bedrooms    *int        `json:"bedrooms,omitempty"`
	Bathrooms   *int        `json:"bathrooms,omitempty"`
	Area        float64     `json:"area"`
	Location    string      `json:"location"`
	Developer   string      `json:"developer,omitempty"`
	Amenities   []string    `json:"amenities"`
	MainImage   string      `json:"mainImage"`
	Gallery     []string    `json:"gallery"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
	ReadyDate   string      `json:"readyDate,omitempty"`
	ListingType string      `json:"listingType"`
	Floors      interface{} `json:"floors,omitempty"`
	Security    interface{} `json:"security,omitempty"`
	Furnished   string      `json:"furnished,omitempty"`
	PaymentPlan string      `json:"paymentPlan,omitempty"`
}

// IDString renders the listing id for comparison regardless of whether the
// upstream sent it as a string or a number.
func (p *Property) IDString() string {
	switch v := p.ID.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FilterOptions is a sparse criteria record. A zero value on any dimension
// means "no constraint on this dimension".
type FilterOptions struct {
	Type        string  `json:"type,omitempty" form:"type"`
	Bedrooms    int     `json:"bedrooms,omitempty" form:"bedrooms"`
	Bathrooms   int     `json:"bathrooms,omitempty" form:"bathrooms"`
	MinPrice    float64 `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice    float64 `json:"maxPrice,omitempty" form:"maxPrice"`
	ListingType string  `json:"listingType,omitempty" form:"listingType"`
	City        string  `json:"city,omitempty" form:"city"`
	Search      string  `json:"search,omitempty" form:"search"`
}

// ListingQuery is one page-view worth of listing criteria.
type ListingQuery struct {
	Page    int
	Limit   int
	Filters FilterOptions
}

type Pagination struct {
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
	Next       *string `json:"next,omitempty"`
	Prev       *string `json:"prev,omitempty"`
}

type PaginatedPropertiesResponse struct {
	Data       []Property `json:"data"`
	Pagination Pagination `json:"pagination"`
}
