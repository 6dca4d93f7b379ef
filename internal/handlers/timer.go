package handlers

import (
	"errors"
	"net/http"

	"lentora/internal/service"
	"lentora/internal/timer"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK           = "ok"
	statusStarted      = "started"
	statusPaused       = "paused"
	statusToggled      = "toggled"
	statusReset        = "reset"
	statusSkipped      = "skipped"
	statusPhaseChanged = "phase_changed"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps domain errors to 4xx codes; anything else is
// logged and answered with a 500 carrying userMsg.
func (h *Handler) respondServiceError(c *gin.Context, err error, userMsg, logKey string) {
	switch {
	case errors.Is(err, timer.ErrConfirmationRequired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "confirmation_required": true})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, timer.ErrInvalidPhase),
		errors.Is(err, service.ErrInvalidSettings),
		errors.Is(err, service.ErrInvalidTask),
		errors.Is(err, service.ErrInvalidTaskFilter),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidSignUp):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err)
	}
}

// Respond with a status and the current timer state.
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string) {
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"state":  h.services.Timer.State(),
	})
}

// ChangePhaseRequest is the payload of POST /api/v1/timer/phase.
type ChangePhaseRequest struct {
	// Target phase. Allowed: focus, short_break, long_break
	Phase string `json:"phase" binding:"required" example:"short_break"`
	// Discard a running countdown
	Confirm bool `json:"confirm" example:"false"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get timer state
// @Tags         timer
// @Produce      json
// @Success      200  {object}  models.TimerState
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer [get]
// @Security     BearerAuth
func (h *Handler) getTimer(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Timer.State())
}

// @Summary      Start the countdown
// @Description  No-op when already running
// @Tags         timer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer/start [post]
// @Security     BearerAuth
func (h *Handler) startTimer(c *gin.Context) {
	h.services.Timer.Start()
	h.respondWithStatusAndState(c, statusStarted)
}

// @Summary      Pause the countdown
// @Tags         timer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer/pause [post]
// @Security     BearerAuth
func (h *Handler) pauseTimer(c *gin.Context) {
	h.services.Timer.Pause()
	h.respondWithStatusAndState(c, statusPaused)
}

// @Summary      Toggle start/pause
// @Tags         timer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleTimer(c *gin.Context) {
	h.services.Timer.Toggle()
	h.respondWithStatusAndState(c, statusToggled)
}

// @Summary      Reset the current phase
// @Description  Stops the countdown and restores the full duration; the phase is kept
// @Tags         timer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer/reset [post]
// @Security     BearerAuth
func (h *Handler) resetTimer(c *gin.Context) {
	h.services.Timer.Reset()
	h.respondWithStatusAndState(c, statusReset)
}

// @Summary      Skip to the next phase
// @Description  The skipped phase is not counted as completed
// @Tags         timer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer/skip [post]
// @Security     BearerAuth
func (h *Handler) skipTimer(c *gin.Context) {
	h.services.Timer.Skip()
	h.respondWithStatusAndState(c, statusSkipped)
}

// @Summary      Change phase
// @Description  Returns 409 while running unless confirm is true
// @Tags         timer
// @Accept       json
// @Produce      json
// @Param        body  body   ChangePhaseRequest  true  "Phase payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]interface{}
// @Router       /api/v1/timer/phase [post]
// @Security     BearerAuth
func (h *Handler) changePhase(c *gin.Context) {
	var req ChangePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Timer.ChangePhase(req.Phase, req.Confirm); err != nil {
		h.respondServiceError(c, err, "failed to change phase", "timer_change_phase_failed")
		return
	}
	h.respondWithStatusAndState(c, statusPhaseChanged)
}
