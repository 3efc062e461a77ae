package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "catalog-manager/pkg/errors"
)

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processViewQuery binds optional view parameters from the query string.
func (h *handler) processViewQuery(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processViewBody binds view parameters from the request body.
func (h *handler) processViewBody(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processAdjustReq binds the adjust request body + URI param.
func (h *handler) processAdjustReq(c *gin.Context) (adjustReq, error) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	req.ID = c.Param("id")
	return req, nil
}

// badRequest wraps a binding failure so it is served as a 400 with the
// binder's message as detail.
func badRequest(err error) error {
	return pkgErrors.ErrBadRequest.WithDetail("reason", err.Error())
}
