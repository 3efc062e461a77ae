package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "catalog-manager/pkg/errors"
	"catalog-manager/pkg/response"
)

const (
	ServiceName    = "catalog-manager"
	ServiceVersion = "1.0.0"
)

// Reported states.
const (
	statusHealthy     = "healthy"
	statusReady       = "ready"
	statusAlive       = "alive"
	statusUnavailable = "unavailable"
)

type statusResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
	Items       *int   `json:"items,omitempty"`
}

func (srv HTTPServer) status(state string) statusResp {
	return statusResp{
		Status:      state,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Description Reports that the process is serving requests.
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status(statusHealthy))
}

// readyCheck godoc
// @Summary Readiness Check
// @Description Ready once the catalog store answers; reports the current item count.
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Failure 503 {object} response.Resp "Catalog unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := srv.catalogUC.Size(ctx)
	if err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable").
			WithDetail("status", statusUnavailable), nil)
		return
	}

	resp := srv.status(statusReady)
	resp.Items = &n
	response.OK(c, resp)
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status(statusAlive))
}
