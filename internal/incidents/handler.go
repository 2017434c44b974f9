package incidents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentinel-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the incidents service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches incident routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/incidents", h.listIncidents)
	rg.GET("/incidents/:id", h.getIncident)
	rg.DELETE("/incidents/:id", h.deleteIncident)
	rg.DELETE("/incidents", h.clearIncidents)
	rg.GET("/stats", h.getStats)
}

// listIncidents godoc
// @Summary  List incidents with optional filtering
// @Produce  json
// @Param    limit      query int    false "page size" default(50)
// @Param    offset     query int    false "page offset"
// @Param    severity   query string false "sensitivity level filter"
// @Param    department query string false "affected department filter"
// @Success  200 {object} incidents.Page
// @Router   /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	filter := Filter{
		Severity:   c.Query("severity"),
		Department: c.Query("department"),
		Limit:      queryInt(c, "limit", defaultListLimit),
		Offset:     queryInt(c, "offset", 0),
	}

	pageOut, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list incidents", nil)
		return
	}
	respond.OK(c, pageOut)
}

// getIncident godoc
// @Summary  Read one incident
// @Produce  json
// @Param    id path string true "incident id"
// @Success  200 {object} incidents.Incident
// @Failure  404 {object} respond.ErrorResponse
// @Router   /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	incident, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Incident not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to fetch incident", nil)
		}
		return
	}
	respond.OK(c, incident)
}

// deleteIncident godoc
// @Summary  Delete one incident
// @Produce  json
// @Param    id path string true "incident id"
// @Success  200 {object} map[string]string
// @Router   /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	incidentID := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), incidentID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to delete incident", nil)
		return
	}
	respond.OK(c, gin.H{"status": "deleted", "id": incidentID})
}

// clearIncidents godoc
// @Summary  Delete all incidents
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /incidents [delete]
func (h *Handler) clearIncidents(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to clear incidents", nil)
		return
	}
	respond.OK(c, gin.H{"status": "cleared", "message": "All incidents deleted"})
}

// getStats godoc
// @Summary  Dashboard statistics over the incident log
// @Produce  json
// @Success  200 {object} incidents.Stats
// @Router   /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to compute stats", nil)
		return
	}
	respond.OK(c, stats)
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}
