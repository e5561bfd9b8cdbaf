package handlers

import (
	"errors"
	"log"
	"net/http"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase"
	"lpu_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidRequest   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errConcurrency      = pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "The document was modified by someone else, reload and retry", http.StatusConflict)
	errInvalidCreds     = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid token or tax id", http.StatusUnauthorized)
	errQuoteExpired     = pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "The quotation deadline has passed", http.StatusGone)
	errPermissionDenied = pkg.NewDomainErrorSimple("PERMISSION_DENIED", "This change is not allowed in the current round", http.StatusForbidden)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] internal error path=%s request_id=%s err=%v", c.FullPath(), c.GetString("request_id"), appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func validationError(err error) (*pkg.AppError, bool) {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", ve.Error(), http.StatusBadRequest).WithField(ve.Field), true
	}
	return nil, false
}

func mapLPUError(err error) *pkg.AppError {
	if appErr, ok := validationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidLPUID), errors.Is(err, catalog.ErrGroupNotFound):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrLPUNotFound):
		return pkg.NewDomainErrorSimple("LPU_NOT_FOUND", "LPU not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrRevisionNotFound):
		return pkg.NewDomainErrorSimple("REVISION_NOT_FOUND", "Revision not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLPUApproved):
		return pkg.NewDomainErrorSimple("LPU_APPROVED", "LPU already approved", http.StatusConflict)
	case errors.Is(err, entities.ErrNotDraft):
		return pkg.NewDomainErrorSimple("LPU_NOT_DRAFT", "LPU can only be edited while in draft", http.StatusConflict)
	case errors.Is(err, entities.ErrDeleteNotAllowed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_ALLOWED", "LPU cannot be deleted in its current status", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return errConcurrency
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapPortalError maps supplier portal errors. An already submitted quotation is 403 on login and
// 409 on writes.
func mapPortalError(err error, login bool) *pkg.AppError {
	if appErr, ok := validationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return errInvalidCreds
	case errors.Is(err, usecase.ErrQuoteExpired):
		return errQuoteExpired
	case errors.Is(err, usecase.ErrQuoteAlreadySubmitted):
		if login {
			return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SUBMITTED", "Quotation already submitted", http.StatusForbidden)
		}
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SUBMITTED", "Quotation already submitted", http.StatusConflict)
	case errors.Is(err, entities.ErrQuantityChangeNotAllowed),
		errors.Is(err, entities.ErrAddItemNotAllowed),
		errors.Is(err, entities.ErrRemoveItemNotAllowed):
		return errPermissionDenied
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return errConcurrency
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplierID),
		errors.Is(err, usecase.ErrInvalidSocialReason),
		errors.Is(err, usecase.ErrInvalidTaxID):
		if appErr, ok := validationError(err); ok {
			return appErr
		}
		return errInvalidRequest
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierAlreadyExists):
		return pkg.NewDomainErrorSimple("SUPPLIER_ALREADY_EXISTS", "Supplier already exists for this tax id", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
