package http

import (
	"github.com/gin-gonic/gin"
)

// processBorrowReq binds and validates the borrow request body.
func (h *handler) processBorrowReq(c *gin.Context) (borrowReq, error) {
	var req borrowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processReturnReq binds and validates the return request body.
func (h *handler) processReturnReq(c *gin.Context) (returnReq, error) {
	var req returnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list loans query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
