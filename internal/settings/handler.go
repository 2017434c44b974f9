package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentinel-backend/internal/llm"
	"sentinel-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the settings service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches settings routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
	rg.POST("/settings/test", h.testConnection)
	rg.GET("/models", h.listModels)
}

// getSettings godoc
// @Summary  Read settings with the API key masked
// @Produce  json
// @Success  200 {object} settings.Masked
// @Router   /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	current, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load settings", nil)
		return
	}
	respond.OK(c, current.Mask())
}

// updateSettings godoc
// @Summary  Partially update settings
// @Accept   json
// @Produce  json
// @Param    update body settings.Update true "fields to change"
// @Success  200 {object} map[string]string
// @Router   /settings [put]
func (h *Handler) updateSettings(c *gin.Context) {
	var update Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid settings payload", nil)
		return
	}
	if _, err := h.Svc.Update(c.Request.Context(), update); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save settings", nil)
		return
	}
	respond.OK(c, gin.H{"status": "updated", "message": "Settings saved successfully"})
}

// testConnection godoc
// @Summary  Verify provider connectivity with the stored key
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  400 {object} respond.ErrorResponse
// @Failure  401 {object} respond.ErrorResponse
// @Router   /settings/test [post]
func (h *Handler) testConnection(c *gin.Context) {
	model, err := h.Svc.TestConnection(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusBadRequest, "not_configured", "API key not configured", nil)
		case errors.Is(err, llm.ErrAuthentication):
			respond.Error(c, http.StatusUnauthorized, "invalid_api_key", "Invalid API key", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "provider_error", "API error: "+err.Error(), nil)
		}
		return
	}
	respond.OK(c, gin.H{
		"status":  "success",
		"message": "API connection verified",
		"model":   model,
	})
}

// listModels godoc
// @Summary  List selectable provider models
// @Produce  json
// @Success  200 {object} map[string][]settings.ModelInfo
// @Router   /models [get]
func (h *Handler) listModels(c *gin.Context) {
	respond.OK(c, gin.H{"models": AvailableModels()})
}
