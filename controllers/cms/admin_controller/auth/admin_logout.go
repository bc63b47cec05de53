package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// Logout godoc
// @Summary Logout admin
// @Description Clears the admin_token cookie. Bearer tokens simply expire.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
