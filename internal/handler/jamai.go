package handler

import (
	"net/http"

	"rentassist/internal/model"
	"rentassist/internal/service"

	"github.com/gin-gonic/gin"
)

// JamAIHandler handles JamAI Base administration requests
type JamAIHandler struct {
	client           *service.JamAIClient
	syncService      *service.SyncService
	recommendTableID string
}

// NewJamAIHandler creates a new JamAI handler
func NewJamAIHandler(client *service.JamAIClient, syncService *service.SyncService, recommendTableID string) *JamAIHandler {
	return &JamAIHandler{
		client:           client,
		syncService:      syncService,
		recommendTableID: recommendTableID,
	}
}

// Setup handles POST /api/v1/jamai/setup. It verifies the credentials are
// configured; table creation itself is a manual step in the dashboard.
func (h *JamAIHandler) Setup(c *gin.Context) {
	if !h.client.IsEnabled() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "JamAI environment variables not configured. Please add JAMAI_API_KEY and JAMAI_PROJECT_ID.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "JamAI Base connection verified. Please create tables manually in the JamAI dashboard.",
		"instructions": gin.H{
			"step1": "Go to " + h.client.BaseURL(),
			"step2": "Navigate to Project >> Action Table",
			"step3": "Create a new Action Table named 'properties_knowledge'",
			"step4": "Add columns: Property_ID (str), Title (str), Location (str), Bedrooms (int), Bathrooms (int), Price (float), Furnished (str), Description (str)",
			"step5": "Create an Action Table named 'property_assistant' with an AI output column configured",
			"step6": "Then call the sync endpoint to populate data",
		},
	})
}

// SyncProperties handles POST /api/v1/jamai/sync-properties
func (h *JamAIHandler) SyncProperties(c *gin.Context) {
	if !h.client.IsEnabled() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "JamAI environment variables not configured. Please add JAMAI_API_KEY and JAMAI_PROJECT_ID.",
		})
		return
	}

	result, err := h.syncService.Sync(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Recommendations handles POST /api/v1/jamai/recommendations. The
// preferences row is forwarded to the recommendations action table and the
// raw response relayed.
func (h *JamAIHandler) Recommendations(c *gin.Context) {
	var req model.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !h.client.IsEnabled() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "JamAI environment variables not configured. Please add JAMAI_API_KEY and JAMAI_PROJECT_ID.",
		})
		return
	}

	row := map[string]any{}
	if req.Location != "" {
		row["location"] = req.Location
	}
	if req.MinPrice > 0 {
		row["minPrice"] = req.MinPrice
	}
	if req.MaxPrice > 0 {
		row["maxPrice"] = req.MaxPrice
	}
	if req.Bedrooms > 0 {
		row["bedrooms"] = req.Bedrooms
	}
	if req.Furnished != "" {
		row["furnished"] = req.Furnished
	}

	resp, err := h.client.AddRow(c.Request.Context(), "action", service.AddRowRequest{
		TableID: h.recommendTableID,
		Data:    []map[string]any{row},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
