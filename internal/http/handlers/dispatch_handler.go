// README: Direct dispatch endpoints for the surrounding request layer.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roadside/internal/modules/dispatch"
)

type DispatchHandler struct {
	dispatch *dispatch.Service
	registry *dispatch.Registry
}

func NewDispatchHandler(svc *dispatch.Service, registry *dispatch.Registry) *DispatchHandler {
	return &DispatchHandler{dispatch: svc, registry: registry}
}

type decideReq struct {
	Location     string `json:"location"`
	Issue        string `json:"issue"`
	CustomerName string `json:"customer_name"`
}

type decideResp struct {
	// Decision is null when no garage can be dispatched; callers treat
	// that as "hold for manual dispatch", not as a failure.
	Decision *dispatch.Decision `json:"decision"`
	Summary  string             `json:"summary,omitempty"`
}

// Decide handles POST /api/dispatch/decide.
func (h *DispatchHandler) Decide(c *gin.Context) {
	var req decideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.Issue) == "" {
		writeError(c, http.StatusBadRequest, "missing location or issue")
		return
	}

	d, ok := h.dispatch.Decide(c.Request.Context(), req.Location, req.Issue)
	if !ok {
		writeJSON(c, http.StatusOK, decideResp{})
		return
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		name = "Customer"
	}
	writeJSON(c, http.StatusOK, decideResp{
		Decision: &d,
		Summary:  dispatch.Summary(d, name),
	})
}

type garageResp struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Services         []string `json:"services"`
	EstimatedArrival string   `json:"estimated_arrival"`
}

// ListGarages handles GET /api/garages.
func (h *DispatchHandler) ListGarages(c *gin.Context) {
	garages := h.registry.Garages()
	out := make([]garageResp, len(garages))
	for i, g := range garages {
		out[i] = garageResp{
			Name:             g.Name,
			Address:          g.Address,
			Latitude:         g.Position.Lat,
			Longitude:        g.Position.Lng,
			Services:         g.Services,
			EstimatedArrival: g.EstimatedArrival,
		}
	}
	writeJSON(c, http.StatusOK, gin.H{"garages": out})
}
