package transformers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"terravista-listings/internal/models"
	"terravista-listings/pkg/metrics"
)

// Placeholders substituted when no usable value resolves.
const (
	DefaultTitle     = "Untitled Property"
	DefaultType      = "Property"
	DefaultLocation  = "Location not specified"
	PlaceholderImage = "https://via.placeholder.com/800x600?text=No+Image"
)

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

// Normalize converts one raw upstream record into a canonical Property. It
// never fails: missing or malformed fields degrade to defaults and
// placeholders. Each target field is resolved by trying a priority-ordered
// list of alternate source names and taking the first usable value.
func (t *propertyTransformer) Normalize(raw models.RawRecord) *models.Property {
	start := time.Now()
	defer func() {
		metrics.NormalizeDuration.Observe(time.Since(start).Seconds())
	}()

	if raw == nil {
		raw = models.RawRecord{}
	}

	property := &models.Property{
		Title:       firstString(raw, "title", "name", "property_name"),
		Description: firstString(raw, "description", "details", "overview", "summary"),
		Type:        firstString(raw, "type", "property_type", "category"),
		CreatedAt:   firstString(raw, "created_at", "createdAt", "created"),
		UpdatedAt:   firstString(raw, "updated_at", "updatedAt", "updated"),
		ReadyDate:   firstString(raw, "ready_date", "handover_year", "handover_date", "completion_date"),
	}
	if property.Title == "" {
		property.Title = DefaultTitle
	}
	if property.Type == "" {
		property.Type = DefaultType
	}

	property.ID = resolveID(raw)

	// Price is nullish-coalescing: an explicit 0 on an earlier field wins.
	if price, ok := firstNumber(raw, "min_price", "max_price", "price", "price_range.min", "price_range.max"); ok && price > 0 {
		property.Price = price
	}

	if area, ok := firstNumber(raw, "sq_ft", "area", "property_size", "size", "sq_ft_range.min", "sq_ft_range.max"); ok && area > 0 {
		property.Area = area
	}

	// Absent means unknown for both counts; the word-number table applies to
	// both so "three" and 3 resolve identically.
	property.Bedrooms = resolveCount(raw, "bedrooms", "min_bedrooms")
	property.Bathrooms = resolveCount(raw, "bathrooms", "min_bathrooms")

	property.Location = resolveLocation(raw)
	property.Developer = resolveDeveloper(raw)
	property.MainImage, property.Gallery = resolveImages(raw)
	property.Amenities = resolveAmenities(raw)
	property.ListingType = resolveListingType(raw)
	property.Floors = resolveFloors(raw)
	property.Security = resolveSecurity(raw)
	property.Furnished = optionalFirst(raw, "furnished", "furnishing")
	property.PaymentPlan = optionalFirst(raw, "payment_plan", "payment_plan_name")

	return property
}

// resolveID keeps the upstream id as-is (string or number). A falsy id falls
// through to the Mongo-style _id field.
func resolveID(raw models.RawRecord) interface{} {
	for _, key := range []string{"id", "_id"} {
		if v, ok := lookup(raw, key); ok {
			if s := asString(v); s != "" && s != "0" {
				return v
			}
		}
	}
	return nil
}

// resolveCount applies the count coercion to the primary field, falling back
// to the secondary only when the primary is absent entirely.
func resolveCount(raw models.RawRecord, primary, fallback string) *int {
	v, ok := lookup(raw, primary)
	if !ok {
		if v, ok = lookup(raw, fallback); !ok {
			return nil
		}
	}
	if n, usable := count(v); usable {
		return &n
	}
	return nil
}

func resolveLocation(raw models.RawRecord) string {
	if v, ok := lookup(raw, "location"); ok {
		if s := asString(v); s != "" {
			return s
		}
	}
	var parts []string
	for _, key := range []string{"locality", "city", "address", "area_name"} {
		if v, ok := lookup(raw, key); ok {
			if s := asString(v); s != "" {
				parts = append(parts, s)
			}
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return DefaultLocation
}

func resolveDeveloper(raw models.RawRecord) string {
	if v, ok := lookup(raw, "developer"); ok {
		switch dev := v.(type) {
		case string:
			if s := optionalString(dev); s != "" {
				return s
			}
		case map[string]interface{}:
			if s := optionalString(dev["name"]); s != "" {
				return s
			}
		}
	}
	if v, ok := lookup(raw, "developer_name"); ok {
		return optionalString(v)
	}
	return ""
}

// resolveImages picks the main image (main_image, else first of images[],
// else first of image_urls[]) and collects the gallery, excluding whatever
// entry equals the chosen main image. A placeholder stands in when nothing
// resolves.
func resolveImages(raw models.RawRecord) (string, []string) {
	var mainImage string
	gallery := []string{}

	if v, ok := lookup(raw, "main_image"); ok {
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) != "" {
			mainImage = s
		}
	}

	if images := stringSlice(raw["images"]); len(images) > 0 {
		if mainImage == "" {
			mainImage = images[0]
		}
		for _, img := range images {
			if img != mainImage {
				gallery = append(gallery, img)
			}
		}
	}

	for _, img := range stringSlice(raw["gallery"]) {
		if img != mainImage {
			gallery = append(gallery, img)
		}
	}

	if mainImage == "" {
		if urls := stringSlice(raw["image_urls"]); len(urls) > 0 {
			mainImage = urls[0]
			gallery = append([]string{}, urls[1:]...)
		}
	}

	if strings.TrimSpace(mainImage) == "" {
		mainImage = PlaceholderImage
	}
	return mainImage, gallery
}

func resolveAmenities(raw models.RawRecord) []string {
	amenities := []string{}
	switch v := raw["amenities"].(type) {
	case []interface{}:
		for _, item := range v {
			switch a := item.(type) {
			case string:
				amenities = append(amenities, a)
			case map[string]interface{}:
				if name := asString(a["name"]); name != "" {
					amenities = append(amenities, name)
				} else if title := asString(a["title"]); title != "" {
					amenities = append(amenities, title)
				} else {
					amenities = append(amenities, fmt.Sprintf("%v", a))
				}
			}
		}
	case string:
		// Some records carry the amenity list JSON-encoded inside a string.
		var parsed []interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			for _, item := range parsed {
				if s := asString(item); s != "" {
					amenities = append(amenities, s)
				}
			}
		} else {
			amenities = append(amenities, v)
		}
	}
	return amenities
}

func resolveListingType(raw models.RawRecord) string {
	s := strings.ToLower(firstString(raw, "listing_type", "listingType"))
	if s == "sale" || s == "rent" {
		return s
	}
	if category := asString(raw["category"]); strings.EqualFold(category, "rent") {
		return "rent"
	}
	return "sale"
}

func resolveFloors(raw models.RawRecord) interface{} {
	for _, key := range []string{"floors", "num_floors", "floor_count"} {
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		switch f := v.(type) {
		case float64:
			if f == float64(int(f)) {
				return int(f)
			}
			return f
		case string:
			if n, parsed := parseLeadingInt(f); parsed {
				return n
			}
			if s := optionalString(f); s != "" {
				return s
			}
		}
	}
	return nil
}

func resolveSecurity(raw models.RawRecord) interface{} {
	for _, key := range []string{"security", "has_security", "security_available"} {
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		switch sec := v.(type) {
		case bool:
			return sec
		case string:
			switch strings.ToLower(strings.TrimSpace(sec)) {
			case "true", "yes", "1":
				return true
			case "false", "no", "0":
				return false
			}
			if s := optionalString(sec); s != "" {
				return s
			}
		}
	}
	return nil
}

func optionalFirst(raw models.RawRecord, paths ...string) string {
	for _, path := range paths {
		if v, ok := lookup(raw, path); ok {
			if s := optionalString(v); s != "" {
				return s
			}
		}
	}
	return ""
}
