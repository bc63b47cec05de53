package system_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

type HealthStatus struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Uptime   string    `json:"uptime"`
	Time     time.Time `json:"time"`
}

// Health godoc
// @Summary Health probe
// @Description 200 when the database answers a ping, 503 otherwise
// @Tags System
// @Produce json
// @Success 200 {object} models.ApiResponse{data=HealthStatus}
// @Failure 503 {object} models.ApiResponse{data=HealthStatus}
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		Time:     time.Now().UTC(),
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.log.Warn("[health] database ping failed", zap.Error(err))
		status.Status = "degraded"
		status.Database = "unreachable"
		resp := models.ErrorResponse(c, "Database unreachable")
		resp.Data = status
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "OK", status))
}
