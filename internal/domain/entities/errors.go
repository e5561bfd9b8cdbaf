package entities

import "errors"

var (
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrLPUApproved              = errors.New("lpu already approved")
	ErrNotDraft                 = errors.New("lpu can only be edited while in draft")
	ErrDeleteNotAllowed         = errors.New("lpu cannot be deleted while a quoting round is open")
	ErrAlreadySubmitted         = errors.New("quotation already submitted")
	ErrRevisionNotFound         = errors.New("revision not found")
	ErrNoInvitedSuppliers       = errors.New("at least one invited supplier is required")
	ErrLimitDateInPast          = errors.New("limit date is in the past")
	ErrEmptyRevisionComment     = errors.New("revision comment is required")
	ErrEmptySignerName          = errors.New("signer name is required")
	ErrEmptySelection           = errors.New("definitive selection requires at least one item")
	ErrQuantityChangeNotAllowed = errors.New("quantity change not allowed")
	ErrAddItemNotAllowed        = errors.New("adding items not allowed")
	ErrRemoveItemNotAllowed     = errors.New("removing items not allowed")
)

// ValidationError carries the offending field and unwraps to the sentinel reason.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
