package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz handles GET /api/healthz. Degraded when the database is
// unreachable.
func (s *Server) Healthz(c *gin.Context) {
	checks := make(map[string]string)
	healthy := true

	if err := s.pool.Ping(c.Request.Context()); err != nil {
		checks["database"] = "error"
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{"status": status, "checks": checks})
}
