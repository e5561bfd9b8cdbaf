package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lpu_quotation/internal/domain/entities"
	mock_interfaces "lpu_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSupplierUseCase_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("invalid social reason", func(t *testing.T) {
		uc := NewSupplierUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "   ", "12345678000190", "")
		if !errors.Is(err, ErrInvalidSocialReason) || !entities.IsValidation(err) {
			t.Fatalf("expected ErrInvalidSocialReason, got %v", err)
		}
	})

	t.Run("invalid tax id", func(t *testing.T) {
		uc := NewSupplierUseCase(nil, nil)
		for _, taxID := range []string{"", "123", "12.345.678/0001-9"} {
			if _, err := uc.Create(context.Background(), "Alfa", taxID, ""); !errors.Is(err, ErrInvalidTaxID) {
				t.Fatalf("tax id %q: expected ErrInvalidTaxID, got %v", taxID, err)
			}
		}
	})

	t.Run("repo get by tax id error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierDirectory(ctrl)
		uc := NewSupplierUseCase(repo, nil)

		repo.EXPECT().GetByTaxID(gomock.Any(), "12345678000190").Return(entities.Supplier{}, errors.New("db"))

		_, err := uc.Create(context.Background(), "Alfa", "12.345.678/0001-90", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierDirectory(ctrl)
		uc := NewSupplierUseCase(repo, nil)

		repo.EXPECT().GetByTaxID(gomock.Any(), "12345678000190").Return(entities.Supplier{ID: "s1"}, nil)

		_, err := uc.Create(context.Background(), "Alfa", "12345678000190", "")
		if !errors.Is(err, ErrSupplierAlreadyExists) {
			t.Fatalf("expected ErrSupplierAlreadyExists, got %v", err)
		}
	})

	t.Run("success normalizes tax id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierDirectory(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		uc := NewSupplierUseCase(repo, clock)

		clock.EXPECT().Now().Return(now)
		repo.EXPECT().GetByTaxID(gomock.Any(), "12345678000190").Return(entities.Supplier{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
			return s, nil
		})

		s, err := uc.Create(context.Background(), " Construtora Alfa ", "12.345.678/0001-90", " compras@alfa.com.br ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.SocialReason != "Construtora Alfa" || s.TaxID != "12345678000190" || s.Email != "compras@alfa.com.br" || !s.CreatedAt.Equal(now) {
			t.Fatalf("unexpected supplier: %+v", s)
		}
	})
}

func TestSupplierUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSupplierUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidSupplierID) {
			t.Fatalf("expected ErrInvalidSupplierID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierDirectory(ctrl)
		uc := NewSupplierUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s9").Return(entities.Supplier{}, nil)

		if _, err := uc.GetByID(context.Background(), "s9"); !errors.Is(err, ErrSupplierNotFound) {
			t.Fatalf("expected ErrSupplierNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierDirectory(ctrl)
		uc := NewSupplierUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Supplier{ID: "s1"}, nil)

		s, err := uc.GetByID(context.Background(), "s1")
		if err != nil || s.ID != "s1" {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}
