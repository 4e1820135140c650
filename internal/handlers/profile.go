package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile [get]
// @Security     BearerAuth
func (h *Handler) profile(c *gin.Context) {
	h.respondWithUser(c)
}

// @Summary      Identity behind the presented token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "user deleted after token issuance"
// @Router       /whoami [get]
// @Security     BearerAuth
func (h *Handler) whoami(c *gin.Context) {
	h.respondWithUser(c)
}

// respondWithUser loads the authenticated account and returns its public
// fields. Both /profile and /whoami serve the same shape.
func (h *Handler) respondWithUser(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	u, err := h.services.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.serviceError(c, err, "get_user_failed", "user_id", userID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	})
}
