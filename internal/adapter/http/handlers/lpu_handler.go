package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	request "lpu_quotation/internal/adapter/http/dto/request"
	response "lpu_quotation/internal/adapter/http/dto/response"
	"lpu_quotation/internal/adapter/http/middleware"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// LPUHandler serves the internal (editor) side of the quotation lifecycle.
type LPUHandler struct {
	usecase usecase.ILPUUseCase
}

func NewLPUHandler(uc usecase.ILPUUseCase) *LPUHandler {
	return &LPUHandler{usecase: uc}
}

func (h *LPUHandler) respond(c *gin.Context, status int, l entities.LPU) {
	c.JSON(status, response.FromLPU(l, h.usecase.Totals(l)))
}

// CreateLPU godoc
// @Summary  Create a draft LPU
// @Tags     lpus
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateLPURequest true "LPU"
// @Success  201 {object} response.LPUResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /lpus [post]
func (h *LPUHandler) CreateLPU(c *gin.Context) {
	var payload request.CreateLPURequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(c.GetString(middleware.ContextUserID))
	if err != nil {
		writeError(c, errInvalidPayload.WithField("limit_date"))
		return
	}

	l, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusCreated, l)
}

// ListLPUs godoc
// @Summary  List LPUs, optionally filtered by work and status
// @Tags     lpus
// @Produce  json
// @Param    work_id query string false "work id"
// @Param    status  query string false "draft, waiting, submitted or approved"
// @Success  200 {array} response.LPUResponse
// @Security Bearer
// @Router   /lpus [get]
func (h *LPUHandler) ListLPUs(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("work_id"), c.Query("status"))
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPUList(items, h.usecase.Totals))
}

func (h *LPUHandler) GetLPU(c *gin.Context) {
	l, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) UpdateLPU(c *gin.Context) {
	var payload request.UpdateLPURequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidPayload.WithField("limit_date"))
		return
	}

	l, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) DeleteLPU(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetItemValues edits price and/or quantity of one line while the LPU is a draft.
func (h *LPUHandler) SetItemValues(c *gin.Context) {
	var payload request.ItemValuesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if payload.Price == nil && payload.Quantity == nil {
		writeError(c, errInvalidPayload)
		return
	}

	l, err := h.usecase.SetItemValues(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.Price.Ptr(), payload.Quantity.Ptr())
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) ReplaceSelection(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	l, err := h.usecase.ReplaceSelection(c.Request.Context(), c.Param("id"), payload.Items)
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) ToggleGroupSelection(c *gin.Context) {
	l, err := h.usecase.ToggleGroupSelection(c.Request.Context(), c.Param("id"), c.Param("group_id"))
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) ToggleItemSelection(c *gin.Context) {
	l, err := h.usecase.ToggleItemSelection(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

// OpenRound godoc
// @Summary  Open a quoting round and issue the supplier access token
// @Tags     lpus
// @Accept   json
// @Produce  json
// @Param    id      path string                   true "LPU id"
// @Param    payload body request.OpenRoundRequest true "round"
// @Success  200 {object} response.LPUResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /lpus/{id}/round [post]
func (h *LPUHandler) OpenRound(c *gin.Context) {
	var payload request.OpenRoundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	l, err := h.usecase.OpenRound(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) CancelRound(c *gin.Context) {
	l, err := h.usecase.CancelRound(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

// RequestRevision godoc
// @Summary  Archive the submitted values and reopen the round with a comment
// @Tags     lpus
// @Accept   json
// @Produce  json
// @Param    id      path string                  true "LPU id"
// @Param    payload body request.RevisionRequest true "revision"
// @Success  200 {object} response.LPUResponse
// @Security Bearer
// @Router   /lpus/{id}/revision [post]
func (h *LPUHandler) RequestRevision(c *gin.Context) {
	var payload request.RevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	l, err := h.usecase.RequestRevision(c.Request.Context(), c.Param("id"), payload.Comment, payload.ResolvePermissions())
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

// Approve accepts the current submission, or restores the revision named in the optional body.
func (h *LPUHandler) Approve(c *gin.Context) {
	var payload request.ApproveRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		// chunked requests report ContentLength -1, so the body itself decides
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			writeError(c, errInvalidPayload)
			return
		}
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := binding.JSON.BindBody(raw, &payload); err != nil {
				writeError(c, errInvalidPayload)
				return
			}
		}
	}
	l, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.RevisionNumber)
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	h.respond(c, http.StatusOK, l)
}

func (h *LPUHandler) ListRevisions(c *gin.Context) {
	revs, err := h.usecase.ListRevisions(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRevisions(revs))
}

// CompareRevisions returns one item's price in each requested revision (?item_id=1.1.2&revisions=1,3).
// Without revisions every archived revision is compared.
func (h *LPUHandler) CompareRevisions(c *gin.Context) {
	itemID := strings.TrimSpace(c.Query("item_id"))
	numbers, ok := parseRevisionNumbers(c.Query("revisions"))
	if !ok {
		writeError(c, errInvalidRequest.WithField("revisions"))
		return
	}

	prices, err := h.usecase.CompareRevisionPrices(c.Request.Context(), c.Param("id"), itemID, numbers)
	if err != nil {
		writeError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.RevisionComparisonResponse{ItemID: itemID, Prices: prices})
}

func parseRevisionNumbers(raw string) ([]int, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
