package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Service reminders for all own motorcycles
// @Description  One entry per motorcycle, derived from the latest maintenance record.
// @Tags         reminders
// @Produce      json
// @Success      200  {array}   models.Reminder
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /reminders [get]
// @Security     BearerAuth
func (h *Handler) reminders(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	reminders, err := h.services.Reminders.List(c.Request.Context(), userID)
	if err != nil {
		h.serviceError(c, err, "reminders_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, reminders)
}
