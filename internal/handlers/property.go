// handlers/property.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"terravista-listings/internal/models"
	"terravista-listings/internal/services"
)

type PropertyHandler struct {
	listingService *services.ListingService
}

func NewPropertyHandler(listingService *services.ListingService) *PropertyHandler {
	return &PropertyHandler{listingService: listingService}
}

// GetProperties godoc
// @Summary List properties with filtering and pagination
// @Description Fetches the listing catalog, applies the given filters client-side and returns one page
// @Tags Properties
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param type query string false "Property type (exact, case-insensitive)"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query int false "Minimum bathrooms"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param listingType query string false "sale or rent"
// @Param city query string false "City substring match on location"
// @Param search query string false "Free-text search"
// @Success 200 {object} models.PaginatedPropertiesResponse
// @Failure 400 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var filters models.FilterOptions
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := &models.ListingQuery{Page: page, Limit: limit, Filters: filters}
	response := h.listingService.GetPaginatedProperties(c.Request.Context(), query, c.Request.URL.Path, c.Request.URL.Query())
	c.JSON(http.StatusOK, response)
}

// GetPropertyByID godoc
// @Summary Get property by ID
// @Description Get a single normalized property by its upstream id
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")
	property := h.listingService.GetPropertyByID(c.Request.Context(), id)
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// GetRelatedProperties godoc
// @Summary Related properties for a detail page
// @Description Other listings of the same type, excluding the given id
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID to exclude"
// @Param type query string false "Restrict to this property type"
// @Param limit query int false "Maximum results" default(4)
// @Success 200 {array} models.Property
// @Router /properties/{id}/related [get]
func (h *PropertyHandler) GetRelatedProperties(c *gin.Context) {
	id := c.Param("id")
	propertyType := c.Query("type")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	related := h.listingService.GetRelatedProperties(c.Request.Context(), id, propertyType, limit)
	c.JSON(http.StatusOK, related)
}
