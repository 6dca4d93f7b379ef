package handlers

import (
	"io"
	"net/http"

	"lentora/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	maxImportBytes     = 64 << 10
	settingsExportName = "lentora-settings.yaml"
	contentTypeYAML    = "application/yaml"
)

// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.Settings
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings [get]
// @Security     BearerAuth
func (h *Handler) getSettings(c *gin.Context) {
	st, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load settings", "settings_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Update settings
// @Description  Partial update; omitted fields keep their value. Applied to the timer immediately (remaining time is only reseeded while paused).
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body   models.SettingsPatch  true  "Settings payload"
// @Success      200   {object}  models.Settings
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/settings [put]
// @Security     BearerAuth
func (h *Handler) updateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	st, err := h.services.Settings.Update(c.Request.Context(), patch)
	if err != nil {
		h.respondServiceError(c, err, "failed to save settings", "settings_update_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Export settings
// @Tags         settings
// @Produce      application/yaml
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings/export [get]
// @Security     BearerAuth
func (h *Handler) exportSettings(c *gin.Context) {
	data, err := h.services.Settings.ExportYAML(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to export settings", "settings_export_failed", err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+settingsExportName)
	c.Data(http.StatusOK, contentTypeYAML, data)
}

// @Summary      Import settings
// @Description  YAML document with any subset of the settings keys
// @Tags         settings
// @Accept       application/yaml
// @Produce      json
// @Success      200  {object}  models.Settings
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings/import [post]
// @Security     BearerAuth
func (h *Handler) importSettings(c *gin.Context) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	st, err := h.services.Settings.ImportYAML(c.Request.Context(), data)
	if err != nil {
		h.respondServiceError(c, err, "failed to import settings", "settings_import_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}
