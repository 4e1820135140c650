package handlers

import (
	"net/http"
	"strconv"

	"motorcycle_maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for a maintenance record. Typed cost/mileage mean malformed
// numbers fail binding with a 400 instead of surfacing later as a 500.
type maintenanceRequest struct {
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Description string  `json:"description" binding:"required"`
	Cost        float64 `json:"cost"`
	Mileage     int     `json:"mileage"`
}

func motorcycleIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("motorcycleId"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid motorcycle id"})
		return 0, false
	}
	return id, true
}

// @Summary      Service history of a motorcycle
// @Tags         maintenance
// @Produce      json
// @Param        motorcycleId  path  int  true  "Motorcycle ID"
// @Success      200  {array}   models.Maintenance
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "absent or not owned"
// @Failure      500  {object}  map[string]string
// @Router       /maintenance/{motorcycleId} [get]
// @Security     BearerAuth
func (h *Handler) listMaintenance(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	motoID, ok := motorcycleIDParam(c)
	if !ok {
		return
	}

	records, err := h.services.Maintenance.List(c.Request.Context(), userID, motoID)
	if err != nil {
		h.serviceError(c, err, "maintenance_list_failed", "user_id", userID, "motorcycle_id", motoID)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Add a maintenance record
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        motorcycleId  path  int                 true  "Motorcycle ID"
// @Param        body          body  maintenanceRequest  true  "Record"
// @Success      201  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "absent or not owned"
// @Failure      500  {object}  map[string]string
// @Router       /maintenance/{motorcycleId} [post]
// @Security     BearerAuth
func (h *Handler) createMaintenance(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	motoID, ok := motorcycleIDParam(c)
	if !ok {
		return
	}

	var req maintenanceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Maintenance.Create(c.Request.Context(), userID, motoID, service.MaintenanceParams{
		Date:        req.Date,
		Description: req.Description,
		Cost:        req.Cost,
		Mileage:     req.Mileage,
	})
	if err != nil {
		h.serviceError(c, err, "maintenance_create_failed", "user_id", userID, "motorcycle_id", motoID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
