package http

import (
	"github.com/gin-gonic/gin"

	"library-management-system/pkg/response"
)

// Create godoc
// @Summary     Add a new book
// @Description Adds a book to the catalog; every copy starts available.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Book data"
// @Success     201  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Router      /api/v1/books [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List books
// @Description Returns a paginated catalog listing with optional search.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       search          query string false "Match against title, author or ISBN"
// @Param       include_retired query bool   false "Include retired books"
// @Param       limit           query int    false "Page size (default: 20)"
// @Param       offset          query int    false "Page offset (default: 0)"
// @Success     200 {object} response.Resp
// @Router      /api/v1/books [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get book detail
// @Description Returns a single book by its ID.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       id path int true "Book ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/books/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a book
// @Description Updates catalog fields. All fields are optional (partial update).
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Book ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/books/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Retire godoc
// @Summary     Retire a book
// @Description Soft-deletes a book: history is kept, new borrows are refused.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       id path int true "Book ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/books/{id} [DELETE]
func (h *handler) Retire(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Retire(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Retire: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
