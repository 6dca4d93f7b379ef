package handlers

import (
	"lentora/internal/logger"
	"lentora/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Timer event stream (HTTP upgrade), same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
		auth.POST("/guest", h.guest)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerTimerRoutes(api)
		h.registerSettingsRoutes(api)
		h.registerStatsRoutes(api)
		h.registerTaskRoutes(api)
		h.registerLogRoutes(api)
		h.registerSocialRoutes(api)
	}
}

func (h *Handler) registerTimerRoutes(api *gin.RouterGroup) {
	tm := api.Group("/timer")
	{
		tm.GET("", h.getTimer)
		tm.POST("/start", h.startTimer)
		tm.POST("/pause", h.pauseTimer)
		tm.POST("/toggle", h.toggleTimer)
		tm.POST("/reset", h.resetTimer)
		tm.POST("/skip", h.skipTimer)
		// Body example: {"phase":"long_break","confirm":true}
		tm.POST("/phase", h.changePhase)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	st := api.Group("/settings")
	{
		st.GET("", h.getSettings)
		st.PUT("", h.updateSettings)
		st.GET("/export", h.exportSettings)
		st.POST("/import", h.importSettings)
	}
}

func (h *Handler) registerStatsRoutes(api *gin.RouterGroup) {
	stats := api.Group("/stats")
	{
		stats.GET("", h.getStatsRange)
		stats.GET("/today", h.getStatsToday)
	}
}

func (h *Handler) registerTaskRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.POST("/:id/complete", h.completeTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}

func (h *Handler) registerSocialRoutes(api *gin.RouterGroup) {
	api.GET("/invites", h.listInvites)
	api.POST("/invites", h.sendInvite)
	api.GET("/quote", h.getQuote)
}
