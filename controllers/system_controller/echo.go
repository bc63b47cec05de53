package system_controller

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// maxEchoBody caps how much of a request body Echo reads back.
const maxEchoBody = 1 << 20

// EchoRequest is what the catch-all sends back.
type EchoRequest struct {
	Method string              `json:"method"`
	Path   string              `json:"path"`
	Query  map[string][]string `json:"query"`
	Body   any                 `json:"body,omitempty"`
}

// Echo answers any unrouted /api/* request by echoing it with success:true,
// so panel screens without a backend yet still get a well-formed envelope.
// Anything outside /api is a plain 404.
func (h *Handler) Echo(c *gin.Context) {
	path := c.Request.URL.Path
	if path != "/api" && !strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Not found"))
		return
	}

	echo := EchoRequest{
		Method: c.Request.Method,
		Path:   path,
		Query:  c.Request.URL.Query(),
	}
	if c.Request.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEchoBody))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read request body"))
			return
		}
		echo.Body = decodeBody(raw)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, c.Request.Method+" "+path, echo))
}

// decodeBody returns JSON bodies decoded and anything else as a string.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return string(raw)
}
