package cache

import (
	"fmt"
)

// cache key for the unfiltered bulk page fetched from the upstream API.
func BulkPageKey(page, limit int) string {
	return fmt.Sprintf("listings:bulk:page:%d:limit:%d", page, limit)
}

// cache key for a single normalized listing.
func PropertyKey(id string) string {
	return fmt.Sprintf("listing:%s", id)
}
