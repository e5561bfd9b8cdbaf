package handlers

import (
	"net/http"

	request "lpu_quotation/internal/adapter/http/dto/request"
	response "lpu_quotation/internal/adapter/http/dto/response"
	"lpu_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Create(c.Request.Context(), payload.SocialReason, payload.TaxID, payload.Email)
	if err != nil {
		writeError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplier(s))
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(items))
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(s))
}
