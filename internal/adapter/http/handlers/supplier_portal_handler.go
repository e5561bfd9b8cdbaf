package handlers

import (
	"context"
	"net/http"

	request "lpu_quotation/internal/adapter/http/dto/request"
	response "lpu_quotation/internal/adapter/http/dto/response"
	"lpu_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SupplierPortalHandler is the public, token-gated supplier surface. Every request carries the
// token and tax id and is re-authenticated.
type SupplierPortalHandler struct {
	usecase usecase.ISupplierPortalUseCase
}

func NewSupplierPortalHandler(uc usecase.ISupplierPortalUseCase) *SupplierPortalHandler {
	return &SupplierPortalHandler{usecase: uc}
}

// Login godoc
// @Summary  Supplier login with quote token and tax id
// @Tags     supplier-portal
// @Accept   json
// @Produce  json
// @Param    payload body request.SupplierLoginRequest true "credentials"
// @Success  200 {object} response.QuotationViewResponse
// @Failure  401 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Failure  429 {object} pkg.HTTPError
// @Router   /public/supplier/login [post]
func (h *SupplierPortalHandler) Login(c *gin.Context) {
	var payload request.SupplierLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	view, err := h.usecase.Authenticate(c.Request.Context(), payload.Credentials())
	if err != nil {
		writeError(c, mapPortalError(err, true))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationView(view))
}

func (h *SupplierPortalHandler) SetPrice(c *gin.Context) {
	h.setValue(c, h.usecase.SetPrice)
}

func (h *SupplierPortalHandler) SetQuantity(c *gin.Context) {
	h.setValue(c, h.usecase.SetQuantity)
}

func (h *SupplierPortalHandler) setValue(
	c *gin.Context,
	write func(ctx context.Context, creds usecase.SupplierCredentials, lpuID, itemID, raw string) (usecase.ItemValue, error),
) {
	var payload request.SupplierValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := write(c.Request.Context(), payload.Credentials(), c.Param("id"), c.Param("item_id"), payload.Value.String())
	if err != nil {
		writeError(c, mapPortalError(err, false))
		return
	}
	c.JSON(http.StatusOK, response.FromItemValue(v))
}

// Submit godoc
// @Summary  Apply the final values and submit the quotation
// @Tags     supplier-portal
// @Accept   json
// @Produce  json
// @Param    id      path string                        true "LPU id"
// @Param    payload body request.SupplierSubmitRequest true "submission"
// @Success  200 {object} response.SubmissionReceiptResponse
// @Failure  401 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Router   /public/supplier/lpus/{id}/submit [post]
func (h *SupplierPortalHandler) Submit(c *gin.Context) {
	var payload request.SupplierSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	receipt, err := h.usecase.Submit(c.Request.Context(), payload.Credentials(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPortalError(err, false))
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissionReceipt(receipt))
}
