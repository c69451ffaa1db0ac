// README: Case lookup handler.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadside/internal/modules/cases"
	"roadside/internal/modules/dispatch"
	"roadside/internal/types"
)

type CaseHandler struct {
	cases *cases.Service
}

func NewCaseHandler(svc *cases.Service) *CaseHandler {
	return &CaseHandler{cases: svc}
}

type caseResp struct {
	ID           string             `json:"id"`
	SessionID    string             `json:"session_id"`
	CustomerName string             `json:"customer_name"`
	Vehicle      string             `json:"vehicle"`
	Location     string             `json:"location"`
	Issue        string             `json:"issue"`
	PolicyLevel  string             `json:"policy_level"`
	IsCovered    bool               `json:"is_covered"`
	Status       string             `json:"status"`
	Decision     *dispatch.Decision `json:"decision,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	DispatchedAt *time.Time         `json:"dispatched_at,omitempty"`
	ClosedAt     *time.Time         `json:"closed_at,omitempty"`
}

// Get handles GET /api/cases/:id.
func (h *CaseHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing id")
		return
	}

	cs, err := h.cases.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeCaseError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, caseResp{
		ID:           string(cs.ID),
		SessionID:    string(cs.SessionID),
		CustomerName: cs.CustomerName,
		Vehicle:      cs.Vehicle,
		Location:     cs.Location,
		Issue:        cs.Issue,
		PolicyLevel:  cs.PolicyLevel,
		IsCovered:    cs.IsCovered,
		Status:       string(cs.Status),
		Decision:     cs.Decision,
		CreatedAt:    cs.CreatedAt,
		DispatchedAt: cs.DispatchedAt,
		ClosedAt:     cs.ClosedAt,
	})
}
