package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trolley/backend/internal/domain"
	"github.com/trolley/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService) *Handler {
	return &Handler{search: search}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "trolley-backend",
		"version": "1.0.0",
	})
}

// ListStores returns metadata for both supermarket backends
func (h *Handler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stores": h.search.Stores(),
	})
}

// SearchProducts handles GET /products/search?store=&q=&store_id=&limit=
func (h *Handler) SearchProducts(c *gin.Context) {
	store := c.Query("store")
	query := c.Query("q")

	limit := usecase.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	var (
		result *domain.SearchResult
		err    error
	)
	switch store {
	case domain.StoreWoolworths:
		result, err = h.search.SearchWoolworths(c.Request.Context(), query, limit)
	case domain.StoreColes:
		result, err = h.search.SearchColes(c.Request.Context(), query, c.Query("store_id"), limit)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "store must be 'woolworths' or 'coles'"})
		return
	}

	if err != nil {
		h.renderSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// renderSearchError maps domain errors onto HTTP statuses. Upstream
// failures keep the backend's raw response body for diagnostics.
func (h *Handler) renderSearchError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    upstream.Error(),
			"store":    upstream.Store,
			"response": upstream.Body,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
