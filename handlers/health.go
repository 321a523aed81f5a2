package handlers

import (
	"net/http"

	"cardoctor/utils"

	"github.com/gin-gonic/gin"
)

const livenessText = "Car doctors is coming..."

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, livenessText)
}

// Health handles GET /health from the latest snapshot, checking once if none
// has been taken yet.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status()
	if status.CheckedAt.IsZero() {
		status = h.Monitor.Check(c.Request.Context())
	}

	code, label := http.StatusOK, "ok"
	if !status.Mongo {
		code, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(code, gin.H{
		"status":    label,
		"mongo":     status.Mongo,
		"checkedAt": status.CheckedAt,
	})
}
