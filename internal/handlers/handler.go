package handlers

import (
	"errors"
	"net/http"

	"motorcycle_maintenance/internal/logger"
	"motorcycle_maintenance/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "motorcycle_maintenance/docs"
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
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Status endpoints
	router.GET("/", h.home)
	router.GET("/health", h.health)

	// Auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Protected endpoints
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/", h.userIdMiddleware)
	{
		api.GET("/profile", h.profile)
		api.GET("/whoami", h.whoami)

		api.GET("/motorcycles", h.listMotorcycles)
		api.POST("/motorcycles", h.createMotorcycle)

		api.GET("/maintenance/:motorcycleId", h.listMaintenance)
		api.POST("/maintenance/:motorcycleId", h.createMaintenance)

		api.GET("/reminders", h.reminders)
	}
}

// serviceError converts a domain error into the right HTTP response.
// Unknown errors become a 500 with a generic message; the detail goes to the
// log only.
func (h *Handler) serviceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmailTaken.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrUserNotFound.Error()})
	case errors.Is(err, service.ErrMotorcycleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrMotorcycleNotFound.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// @Summary      API status
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "motorcycle maintenance API is running",
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
