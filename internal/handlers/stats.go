package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Today's statistics
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.DailyStats
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/stats/today [get]
// @Security     BearerAuth
func (h *Handler) getStatsToday(c *gin.Context) {
	st, err := h.services.Stats.Today(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load statistics", "stats_today_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Daily statistics for a date range
// @Description  One row per day, days without activity are zero. Defaults to the last 7 days.
// @Tags         stats
// @Produce      json
// @Param        from  query   string  false  "First day (YYYY-MM-DD)"  example(2025-08-01)
// @Param        to    query   string  false  "Last day (YYYY-MM-DD)"   example(2025-08-31)
// @Success      200   {object}  map[string]interface{}  "count, days"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/stats [get]
// @Security     BearerAuth
func (h *Handler) getStatsRange(c *gin.Context) {
	days, err := h.services.Stats.Range(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.respondServiceError(c, err, "failed to load statistics", "stats_range_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(days),
		"days":  days,
	})
}
