package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// BindJSON binds the body into req. On failure it writes a 400, with one
// message per field for validation errors, and returns false.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields, ok := models.FieldErrors(err); ok {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, fields))
			return false
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// StoreError answers a failed store call: 404 with notFound for a missing
// record, 500 otherwise. The error is logged under op and attached to the
// context for the activity log.
func StoreError(c *gin.Context, log *zap.Logger, op string, err error, notFound string) {
	_ = c.Error(err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, notFound))
		return
	}
	log.Error("["+op+"] store error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
}

// Conflict answers a guard violation with 409.
func Conflict(c *gin.Context, message string) {
	_ = c.Error(errors.New(message))
	c.JSON(http.StatusConflict, models.ErrorResponse(c, message))
}
