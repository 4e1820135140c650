package handlers

import (
	"net/http"

	"motorcycle_maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for adding a motorcycle. Year/mileage default to zero.
type motorcycleRequest struct {
	Make    string `json:"make" binding:"required"`
	Model   string `json:"model" binding:"required"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage"`
	VIN     string `json:"vin"`
}

// @Summary      List own motorcycles
// @Tags         motorcycles
// @Produce      json
// @Success      200  {array}   models.Motorcycle
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /motorcycles [get]
// @Security     BearerAuth
func (h *Handler) listMotorcycles(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	bikes, err := h.services.Garage.List(c.Request.Context(), userID)
	if err != nil {
		h.serviceError(c, err, "motorcycles_list_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, bikes)
}

// @Summary      Add a motorcycle
// @Tags         motorcycles
// @Accept       json
// @Produce      json
// @Param        body  body      motorcycleRequest  true  "Motorcycle"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /motorcycles [post]
// @Security     BearerAuth
func (h *Handler) createMotorcycle(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req motorcycleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Garage.Create(c.Request.Context(), userID, service.MotorcycleParams{
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Mileage: req.Mileage,
		VIN:     req.VIN,
	})
	if err != nil {
		h.serviceError(c, err, "motorcycle_create_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
