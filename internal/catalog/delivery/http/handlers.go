package http

import (
	"github.com/gin-gonic/gin"

	"catalog-manager/internal/catalog"
	"catalog-manager/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Adds an item with a zero order count. name, description and image_ref must be non-blank.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200  {object} itemEnvelope
// @Failure     400  {object} response.Resp "Bad Request - missing field"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx, sid := h.sessionID(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	view := h.sessions.Get(sid)
	response.OK(c, itemEnvelope{Item: newItemResp(output.Item, view.ColorCoding)})
}

// List godoc
// @Summary     List items
// @Description Returns the filtered, sorted view of the catalog. Query parameters override and update the caller's held view.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       search       query string false "Case-insensitive text matched against name and description"
// @Param       quality      query string false "all | verified | unverified"
// @Param       integrity    query string false "all | compromised | standard"
// @Param       sort         query string false "name | orders"
// @Param       color_coding query bool   false "Derive item tones from quality flags"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx, sid := h.sessionID(c)

	req, err := h.processViewQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	params, err := req.apply(h.sessions.Get(sid))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !req.empty() {
		h.sessions.Put(sid, params)
	}

	output, err := h.uc.Project(ctx, params)
	if err != nil {
		h.l.Errorf(ctx, "uc.Project: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output, params))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx, sid := h.sessionID(c)

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Debugf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	view := h.sessions.Get(sid)
	response.OK(c, itemEnvelope{Item: newItemResp(output.Item, view.ColorCoding)})
}

// Delete godoc
// @Summary     Remove an item
// @Description Permanently removes an item. Removing an unknown ID succeeds and changes nothing.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx, _ := h.sessionID(c)

	if err := h.uc.Remove(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// AdjustOrderCount godoc
// @Summary     Adjust an item's order count
// @Description Adds delta to the order count, flooring at zero. An unknown ID is reported with found=false.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body adjustReq true "Signed delta"
// @Success     200 {object} adjustResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id}/order [POST]
func (h *handler) AdjustOrderCount(c *gin.Context) {
	ctx, sid := h.sessionID(c)

	req, err := h.processAdjustReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AdjustOrderCount(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AdjustOrderCount: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	view := h.sessions.Get(sid)
	response.OK(c, h.newAdjustResp(output, view.ColorCoding))
}

// GetView godoc
// @Summary     Get held view parameters
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/catalog/view [GET]
func (h *handler) GetView(c *gin.Context) {
	_, sid := h.sessionID(c)
	response.OK(c, newViewResp(h.sessions.Get(sid)))
}

// PutView godoc
// @Summary     Replace held view parameters
// @Description Omitted fields fall back to the default view.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body viewReq true "View parameters"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/catalog/view [PUT]
func (h *handler) PutView(c *gin.Context) {
	ctx, sid := h.sessionID(c)

	req, err := h.processViewBody(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	params, err := req.apply(catalog.DefaultViewParams())
	if err != nil {
		h.l.Debugf(ctx, "PutView apply: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.sessions.Put(sid, params)

	response.OK(c, newViewResp(params))
}

// ResetView godoc
// @Summary     Reset held view parameters
// @Description Forgets the caller's view; the next request starts from the default view.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/catalog/view [DELETE]
func (h *handler) ResetView(c *gin.Context) {
	_, sid := h.sessionID(c)
	h.sessions.Delete(sid)
	response.OK(c, newViewResp(h.sessions.Get(sid)))
}

// Images godoc
// @Summary     List preset images
// @Description Image references offered by the item form's picker.
// @Tags        Catalog
// @Produce     json
// @Success     200 {object} imagesResp
// @Router      /api/v1/catalog/images [GET]
func (h *handler) Images(c *gin.Context) {
	response.OK(c, h.newImagesResp(h.uc.PresetImages(c.Request.Context())))
}
