package admin_auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// Login godoc
// @Summary Login as admin
// @Description Authenticate with email and password. Returns the token and the admin, and sets the admin_token cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Validation failed"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if !common.BindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		h.log.Info("[auth.login] rejected", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	case errors.Is(err, services.ErrAdminSuspended):
		h.log.Info("[auth.login] suspended account", zap.String("email", req.Email))
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	case err != nil:
		h.log.Error("[auth.login] failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, resp.Token, h.cookieMaxAge, "/", "", h.secureCookie, true)

	h.log.Info("[auth.login] success", zap.String("admin", resp.User.ID), zap.String("email", resp.User.Email))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", resp))
}
