package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/internal/rest/response"
)

// Pinger checks one backend.
type Pinger func(ctx context.Context) error

type healthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *healthHandler {
	return &healthHandler{checks: checks}
}

// Health reports 200 when every backend answers, 503 otherwise.
func (h *healthHandler) Health(c *gin.Context) {
	status := make(map[string]string, len(h.checks))
	code := http.StatusOK
	for name, ping := range h.checks {
		if err := ping(c.Request.Context()); err != nil {
			logrus.WithField("backend", name).Errorf("health check failed: %v", err)
			status[name] = err.Error()
			code = http.StatusServiceUnavailable
			continue
		}
		status[name] = "ok"
	}
	c.JSON(code, response.Success{Success: code == http.StatusOK, Result: status})
}
