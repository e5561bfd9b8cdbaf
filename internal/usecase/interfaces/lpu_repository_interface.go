package interfaces

//go:generate mockgen -source=lpu_repository_interface.go -destination=mocks/lpu_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"lpu_quotation/internal/domain/entities"
)

// ErrVersionConflict is returned by conditional writes when the stored document changed since it was read.
var ErrVersionConflict = errors.New("lpu version conflict")

// LPUFilter narrows List. Empty fields match everything.
type LPUFilter struct {
	WorkID string
	Status entities.LPUStatus
}

// FieldUpdate is a field-level write (last write wins per item) guarded only by status.
type FieldUpdate struct {
	Prices        map[string]float64
	Quantities    map[string]int
	RequireStatus entities.LPUStatus
}

// ILPURepository abstracts the document store for LPUs.
//
// The engine must be able to:
//   - read a document by id, or by its quote token (supplier gate)
//   - write a whole document conditionally on the version that was read (lifecycle transitions)
//   - write single price/quantity fields without a version check (data entry)
//
// Not-found reads return a zero LPU (ID == "") and a nil error.
type ILPURepository interface {
	Create(ctx context.Context, l entities.LPU) (entities.LPU, error)
	GetByID(ctx context.Context, id string) (entities.LPU, error)
	GetByQuoteToken(ctx context.Context, token string) (entities.LPU, error)
	List(ctx context.Context, filter LPUFilter) ([]entities.LPU, error)
	// Save replaces the document if its stored version still equals l.Version and returns it with the
	// version bumped. ErrVersionConflict otherwise.
	Save(ctx context.Context, l entities.LPU) (entities.LPU, error)
	// UpdateFields applies upd and returns the stored document. ErrVersionConflict when RequireStatus
	// does not hold.
	UpdateFields(ctx context.Context, id string, upd FieldUpdate) (entities.LPU, error)
	Delete(ctx context.Context, id string, expectedVersion int) error
}
