package interfaces

//go:generate mockgen -source=supplier_directory_interface.go -destination=mocks/supplier_directory_interface_mock.go -package=mock_interfaces

import (
	"context"

	"lpu_quotation/internal/domain/entities"
)

// ISupplierDirectory abstracts persistence for registered suppliers.
// Not-found reads return a zero Supplier (ID == "").
type ISupplierDirectory interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	// GetByTaxID expects a normalized (digits only) tax id.
	GetByTaxID(ctx context.Context, taxID string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
}
