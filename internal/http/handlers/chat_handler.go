// README: Agent chat handler (quota-guarded conversation endpoint).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roadside/internal/assist"
	"roadside/internal/modules/quota"
	"roadside/internal/types"
)

type ChatHandler struct {
	assist *assist.Service
	quota  *quota.Service
}

func NewChatHandler(assistSvc *assist.Service, quotaSvc *quota.Service) *ChatHandler {
	return &ChatHandler{assist: assistSvc, quota: quotaSvc}
}

type chatReq struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// Chat handles POST /agent/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Text = strings.TrimSpace(req.Text)
	if req.SessionID == "" || req.Text == "" {
		writeError(c, http.StatusBadRequest, "missing session_id or text")
		return
	}
	if !isValidSessionID(req.SessionID) {
		writeError(c, http.StatusBadRequest, "invalid session_id")
		return
	}

	if err := h.quota.UseToken(c.Request.Context(), req.SessionID); err != nil {
		if errors.Is(err, quota.ErrExhausted) {
			writeError(c, http.StatusTooManyRequests, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Generous timeout: the turn includes one model round trip.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	resp, err := h.assist.ProcessMessage(ctx, types.ID(req.SessionID), req.Text)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, resp)
}
