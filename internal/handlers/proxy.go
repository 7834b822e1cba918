package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"terravista-listings/pkg/listings"
	"terravista-listings/pkg/logger"
)

type ProxyHandler struct {
	client *listings.Client
}

func NewProxyHandler(client *listings.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

// ForwardProjects godoc
// @Summary Proxy filter requests to the upstream listings API
// @Description Forwards the filter body and page/limit params verbatim and returns the upstream JSON unchanged
// @Tags Proxy
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /projects [post]
func (h *ProxyHandler) ForwardProjects(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "20")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to read request body", err.Error()))
		return
	}

	status, payload, err := h.client.Forward(c.Request.Context(), page, limit, body)
	if err != nil {
		logger.GlobalLogger.Errorf("Proxy request failed: page=%s, limit=%s, error=%v", page, limit, err)
		c.JSON(http.StatusInternalServerError, errorEnvelope("Failed to fetch properties", err.Error()))
		return
	}

	if status < 200 || status >= 300 {
		logger.GlobalLogger.Errorf("Upstream API error: status=%d, response=%s", status, string(payload))
		message := fmt.Sprintf("API error: %d %s", status, http.StatusText(status))
		c.JSON(status, errorEnvelope(message, string(payload)))
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// errorEnvelope matches the error shape the site's pages expect from this
// endpoint.
func errorEnvelope(message, detail string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
		"data":    []interface{}{},
		"error":   detail,
	}
}
