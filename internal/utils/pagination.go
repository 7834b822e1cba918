package utils

import (
	"fmt"
	"net/url"

	"terravista-listings/internal/models"
)

// Paginate slices an already filtered collection into one page and reports
// totals. An out-of-range page yields an empty slice, not an error.
func Paginate(properties []models.Property, page, limit int) ([]models.Property, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total := len(properties)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	slice := properties[start:end]
	if slice == nil {
		slice = []models.Property{}
	}

	return slice, models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// BuildPageURL rebuilds a request URL pointing at another page, carrying the
// caller's filter parameters along.
func BuildPageURL(baseURL string, page, limit int, params url.Values) string {
	u, _ := url.Parse(baseURL)
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))
	for key, values := range params {
		if key != "page" && key != "limit" {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
