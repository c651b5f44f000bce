package http

import (
	"github.com/gin-gonic/gin"

	"library-management-system/pkg/response"
)

// Borrow godoc
// @Summary     Borrow a book
// @Description Lends one copy of a book to a member and opens a loan record.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       body body borrowReq true "Borrow request"
// @Success     201  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Book or member not found"
// @Failure     409  {object} response.Resp "No copies available"
// @Router      /api/v1/loans/borrow [POST]
func (h *handler) Borrow(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBorrowReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Borrow(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Borrow: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newBorrowResp(output))
}

// Return godoc
// @Summary     Return a book
// @Description Closes a loan and puts the copy back on the shelf.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       body body returnReq true "Return request"
// @Success     200  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Loan not found"
// @Failure     409  {object} response.Resp "Already returned"
// @Router      /api/v1/loans/return [POST]
func (h *handler) Return(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReturnReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Return(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Return: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReturnResp(output))
}

// List godoc
// @Summary     List loans
// @Description Returns loan history with book titles, member names and the derived overdue flag.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       status    query string false "Filter by status (borrowed/returned)"
// @Param       book_id   query int    false "Filter by book"
// @Param       member_id query int    false "Filter by member"
// @Param       overdue   query bool   false "Only overdue loans"
// @Param       limit     query int    false "Page size (default: 20)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} response.Resp
// @Router      /api/v1/loans [GET]
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

// Stats godoc
// @Summary     Loan statistics
// @Description Returns aggregate loan counts for the dashboard.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/loans/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}
