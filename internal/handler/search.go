package handler

import (
	"net/http"
	"time"

	"summerhome/internal/model"
	"summerhome/internal/service"
	"summerhome/internal/store"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles recommendation and property lookup requests
type SearchHandler struct {
	recommender *service.Recommender
	properties  *store.PropertyStore
	defaultTopK int
	maxTopK     int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(recommender *service.Recommender, properties *store.PropertyStore, defaultTopK, maxTopK int) *SearchHandler {
	return &SearchHandler{
		recommender: recommender,
		properties:  properties,
		defaultTopK: defaultTopK,
		maxTopK:     maxTopK,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	criteria, err := model.NewSearchCriteria(
		req.GroupSize,
		req.Environment,
		req.MinBudget,
		req.MaxBudget,
		req.Location,
		req.Features,
		req.Preferences,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criteria: " + err.Error()})
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = h.defaultTopK
	}
	if topK > h.maxTopK {
		topK = h.maxTopK
	}

	startTime := time.Now()
	results := h.recommender.Recommend(criteria, topK)
	took := time.Since(startTime).Milliseconds()

	c.JSON(http.StatusOK, model.SearchResponse{
		Results: results,
		Total:   len(results),
		Took:    took,
	})
}

// GetProperty handles GET /api/v1/properties/:id
func (h *SearchHandler) GetProperty(c *gin.Context) {
	property, ok := h.properties.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}
