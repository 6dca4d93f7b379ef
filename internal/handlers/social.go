package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InviteRequest is the payload of POST /api/v1/invites.
type InviteRequest struct {
	Email   string `json:"email" binding:"required" example:"friend@example.com"`
	Message string `json:"message,omitempty" example:"Join me for a focused work session!"`
}

// @Summary      List sent invitations
// @Tags         social
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, invites"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/invites [get]
// @Security     BearerAuth
func (h *Handler) listInvites(c *gin.Context) {
	invites, err := h.services.Invites.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load invites", "invites_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(invites),
		"invites": invites,
	})
}

// @Summary      Invite someone to a shared session
// @Description  The invitation is recorded only; no email is delivered.
// @Tags         social
// @Accept       json
// @Produce      json
// @Param        body  body   InviteRequest  true  "Invite payload"
// @Success      201   {object}  models.Invite
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/invites [post]
// @Security     BearerAuth
func (h *Handler) sendInvite(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	inv, err := h.services.Invites.Send(c.Request.Context(), req.Email, req.Message)
	if err != nil {
		h.respondServiceError(c, err, "failed to send invite", "invite_send_failed")
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// @Summary      Motivational quote
// @Tags         social
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/quote [get]
// @Security     BearerAuth
func (h *Handler) getQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": h.services.Quotes.Quote()})
}
