package usecase

//go:generate mockgen -source=supplier_usecase.go -destination=../adapter/http/handlers/mocks/supplier_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"

	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSupplierID     = errors.New("invalid supplier id")
	ErrInvalidSocialReason   = errors.New("invalid social_reason")
	ErrInvalidTaxID          = errors.New("invalid tax_id")
	ErrSupplierAlreadyExists = errors.New("supplier already exists")
)

// ISupplierUseCase is the thin directory CRUD used to register suppliers before inviting them.
type ISupplierUseCase interface {
	Create(ctx context.Context, socialReason, taxID, email string) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
}

type SupplierUseCase struct {
	repo  interfaces.ISupplierDirectory
	clock interfaces.IClock
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierDirectory, clock interfaces.IClock) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, clock: clock}
}

func (u *SupplierUseCase) Create(ctx context.Context, socialReason, taxID, email string) (entities.Supplier, error) {
	socialReason = strings.TrimSpace(socialReason)
	if socialReason == "" {
		return entities.Supplier{}, entities.NewValidationError("social_reason", ErrInvalidSocialReason)
	}
	taxID = entities.NormalizeTaxID(taxID)
	// CPF (11) or CNPJ (14)
	if len(taxID) != 11 && len(taxID) != 14 {
		return entities.Supplier{}, entities.NewValidationError("tax_id", ErrInvalidTaxID)
	}

	if existing, err := u.repo.GetByTaxID(ctx, taxID); err != nil {
		return entities.Supplier{}, err
	} else if existing.ID != "" {
		return entities.Supplier{}, ErrSupplierAlreadyExists
	}

	s := entities.Supplier{
		ID:           uuid.NewString(),
		SocialReason: socialReason,
		TaxID:        taxID,
		Email:        strings.TrimSpace(email),
		CreatedAt:    u.clock.Now().UTC(),
	}
	log.Printf("[supplier][usecase] create supplier_id=%s", s.ID)
	return u.repo.Create(ctx, s)
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}
