package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// pathToResourceType maps URL path segments to resource types
var pathToResourceType = map[string]string{
	"categories": models.ResourceTypeCategory,
	"products":   models.ResourceTypeProduct,
	"brands":     models.ResourceTypeBrand,
	"orders":     models.ResourceTypeOrder,
	"admins":     models.ResourceTypeAdmin,
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   models.ActionCreated,
	http.MethodPatch:  models.ActionUpdated,
	http.MethodPut:    models.ActionUpdated,
	http.MethodDelete: models.ActionDeleted,
}

// ContextCreatedID lets create handlers report the new resource's ID so the
// "after" snapshot can be taken.
const ContextCreatedID = "activityCreatedID"

// ActivityLoggingMiddleware records every non-GET request on a catalogue or
// order resource with a before/after snapshot. Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware(svc *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, ok := methodToActionVerb[c.Request.Method]
		if !ok {
			c.Next()
			return
		}
		resourceType := extractResourceType(c.FullPath())
		adminID := c.GetString(ContextAdminID)
		if resourceType == "" || adminID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		resourceID := c.Param("id")
		before := svc.Snapshot(ctx, resourceType, resourceID)

		c.Next()

		req := services.LogActivityRequest{
			AdminID:      adminID,
			AdminEmail:   c.GetString(ContextAdminEmail),
			Action:       verb + "_" + resourceType,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			ResourceName: services.ResourceName(before),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			req.Status = models.StatusFailed
			req.ErrorMessage = "Request failed with status " + http.StatusText(status)
			if len(c.Errors) > 0 {
				req.ErrorMessage = c.Errors.Last().Error()
			}
			svc.LogActivity(ctx, req)
			return
		}

		if req.ResourceID == "" {
			req.ResourceID = c.GetString(ContextCreatedID)
		}
		after := svc.Snapshot(ctx, resourceType, req.ResourceID)
		if name := services.ResourceName(after); name != "" {
			req.ResourceName = name
		}
		req.Status = models.StatusSuccess
		req.Changes = services.CreateChanges(before, after)
		svc.LogActivity(ctx, req)
	}
}

// extractResourceType finds the resource segment of a route pattern,
// e.g. "/api/admin/categories/:id/status" -> "category".
func extractResourceType(fullPath string) string {
	parts := strings.Split(fullPath, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if rt, ok := pathToResourceType[parts[i]]; ok {
			return rt
		}
	}
	return ""
}
