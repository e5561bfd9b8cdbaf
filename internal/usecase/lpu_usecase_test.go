package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"
	mock_interfaces "lpu_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]entities.CatalogEntry{
		{ID: "1", Description: "Serviços preliminares", IsGroup: true},
		{ID: "1.1", Description: "Documentação", IsSubGroup: true},
		{ID: "1.1.2", Description: "Projeto executivo", Unit: "vb"},
		{ID: "1.1.3", Description: "ART", Unit: "und"},
		{ID: "2", Description: "Canteiro", IsGroup: true},
		{ID: "2.1", Description: "Tapume", Unit: "m²"},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type lpuMocks struct {
	repo      *mock_interfaces.MockILPURepository
	suppliers *mock_interfaces.MockISupplierDirectory
	tokens    *mock_interfaces.MockITokenGenerator
}

func newLPUUseCaseWithMocks(t *testing.T) (*LPUUseCase, lpuMocks) {
	ctrl := gomock.NewController(t)
	m := lpuMocks{
		repo:      mock_interfaces.NewMockILPURepository(ctrl),
		suppliers: mock_interfaces.NewMockISupplierDirectory(ctrl),
		tokens:    mock_interfaces.NewMockITokenGenerator(ctrl),
	}
	return NewLPUUseCase(m.repo, m.suppliers, testCatalog(t), fixedClock{testNow}, m.tokens), m
}

func draftLPU() entities.LPU {
	return entities.LPU{
		ID:         "lpu-1",
		WorkID:     "work-1",
		LimitDate:  testNow.AddDate(0, 0, 5),
		Status:     entities.LPUStatusDraft,
		Prices:     map[string]float64{},
		Quantities: map[string]int{},
		Version:    4,
	}
}

func saveEcho(_ context.Context, l entities.LPU) (entities.LPU, error) {
	l.Version++
	return l, nil
}

func TestLPUUseCase_Create(t *testing.T) {
	t.Run("invalid work id", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), CreateLPUInput{WorkID: "  ", LimitDate: testNow})
		if !errors.Is(err, ErrInvalidWorkID) || !entities.IsValidation(err) {
			t.Fatalf("expected ErrInvalidWorkID validation, got %v", err)
		}
	})

	t.Run("missing limit date", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), CreateLPUInput{WorkID: "w"})
		if !errors.Is(err, ErrInvalidLimitDate) {
			t.Fatalf("expected ErrInvalidLimitDate, got %v", err)
		}
	})

	t.Run("selection outside catalog", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), CreateLPUInput{WorkID: "w", LimitDate: testNow, SelectedItems: []string{"1.1"}})
		if !errors.Is(err, ErrItemNotInCatalog) {
			t.Fatalf("expected ErrItemNotInCatalog, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LPU{})).DoAndReturn(
			func(_ context.Context, l entities.LPU) (entities.LPU, error) {
				if l.ID == "" || l.WorkID != "w-9" || l.Status != entities.LPUStatusDraft || l.Version != 1 {
					t.Fatalf("unexpected lpu: %+v", l)
				}
				if l.Prices == nil || l.Quantities == nil {
					t.Fatalf("expected empty maps")
				}
				if !l.LimitDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("expected date-only limit, got %v", l.LimitDate)
				}
				return l, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateLPUInput{
			WorkID:    " w-9 ",
			LimitDate: time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
			CreatedBy: "ana@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.CreatedBy != "ana@example.com" {
			t.Fatalf("unexpected created_by %q", res.CreatedBy)
		}
	})
}

func TestLPUUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidLPUID) {
			t.Fatalf("expected ErrInvalidLPUID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.LPU{}, nil)
		_, err := uc.GetByID(context.Background(), "x")
		if !errors.Is(err, ErrLPUNotFound) {
			t.Fatalf("expected ErrLPUNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.LPU{}, errors.New("db"))
		_, err := uc.GetByID(context.Background(), "x")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLPUUseCase_List(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		_, err := uc.List(context.Background(), "", "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("filter passed through", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().List(gomock.Any(), interfaces.LPUFilter{WorkID: "w", Status: entities.LPUStatusWaiting}).Return([]entities.LPU{{ID: "a"}}, nil)
		got, err := uc.List(context.Background(), " w ", "WAITING")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected: %v %v", got, err)
		}
	})
}

func TestLPUUseCase_Update(t *testing.T) {
	t.Run("not draft", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		l := draftLPU()
		l.Status = entities.LPUStatusWaiting
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)

		work := "w-2"
		_, err := uc.Update(context.Background(), "lpu-1", UpdateLPUInput{WorkID: &work})
		if !errors.Is(err, entities.ErrNotDraft) {
			t.Fatalf("expected ErrNotDraft, got %v", err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)

		v := 3
		_, err := uc.Update(context.Background(), "lpu-1", UpdateLPUInput{Version: &v})
		if !errors.Is(err, ErrConcurrencyConflict) {
			t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		_, err := uc.Update(context.Background(), "lpu-1", UpdateLPUInput{Prices: map[string]float64{"1.1.2": -1}})
		if !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("success replaces maps", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, l entities.LPU) (entities.LPU, error) {
			if l.Version != 4 {
				t.Fatalf("save must carry the version that was read, got %d", l.Version)
			}
			return saveEcho(ctx, l)
		})

		res, err := uc.Update(context.Background(), "lpu-1", UpdateLPUInput{
			Prices:     map[string]float64{"1.1.2": 10},
			Quantities: map[string]int{"1.1.2": 3},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Prices["1.1.2"] != 10 || res.Quantities["1.1.2"] != 3 || res.Version != 5 {
			t.Fatalf("unexpected: %+v", res)
		}
		if !res.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected updated_at stamp")
		}
	})

	t.Run("version conflict on save", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.LPU{}, interfaces.ErrVersionConflict)

		_, err := uc.Update(context.Background(), "lpu-1", UpdateLPUInput{})
		if !errors.Is(err, ErrConcurrencyConflict) {
			t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
		}
	})
}

func TestLPUUseCase_Delete(t *testing.T) {
	t.Run("waiting is rejected", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		l := draftLPU()
		l.Status = entities.LPUStatusWaiting
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)

		if err := uc.Delete(context.Background(), "lpu-1"); !errors.Is(err, entities.ErrDeleteNotAllowed) {
			t.Fatalf("expected ErrDeleteNotAllowed, got %v", err)
		}
	})

	t.Run("approved is rejected", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		l := draftLPU()
		l.Status = entities.LPUStatusApproved
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)

		if err := uc.Delete(context.Background(), "lpu-1"); !errors.Is(err, entities.ErrLPUApproved) {
			t.Fatalf("expected ErrLPUApproved, got %v", err)
		}
	})

	t.Run("conditional delete", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), "lpu-1", 4).Return(nil)

		if err := uc.Delete(context.Background(), "lpu-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestLPUUseCase_SetItemValues(t *testing.T) {
	t.Run("unknown item", func(t *testing.T) {
		uc, _ := newLPUUseCaseWithMocks(t)
		raw := "1"
		_, err := uc.SetItemValues(context.Background(), "lpu-1", "9.9", &raw, nil)
		if !errors.Is(err, ErrItemNotInCatalog) {
			t.Fatalf("expected ErrItemNotInCatalog, got %v", err)
		}
	})

	t.Run("parses leniently", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		price, qty := "R$ 1.200,50", "abc"
		m.repo.EXPECT().UpdateFields(gomock.Any(), "lpu-1", interfaces.FieldUpdate{
			Prices:        map[string]float64{"1.1.2": 1200.5},
			Quantities:    map[string]int{"1.1.2": 0},
			RequireStatus: entities.LPUStatusDraft,
		}).Return(draftLPU(), nil)

		if _, err := uc.SetItemValues(context.Background(), "lpu-1", "1.1.2", &price, &qty); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("not draft anymore", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		price := "1"
		l := draftLPU()
		l.Status = entities.LPUStatusSubmitted
		m.repo.EXPECT().UpdateFields(gomock.Any(), "lpu-1", gomock.Any()).Return(entities.LPU{}, interfaces.ErrVersionConflict)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)

		_, err := uc.SetItemValues(context.Background(), "lpu-1", "1.1.2", &price, nil)
		if !errors.Is(err, entities.ErrNotDraft) {
			t.Fatalf("expected ErrNotDraft, got %v", err)
		}
	})
}

func TestLPUUseCase_ToggleGroupSelection(t *testing.T) {
	uc, m := newLPUUseCaseWithMocks(t)
	l := draftLPU()
	l.SelectedItems = []string{"1.1.2"}
	m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)

	res, err := uc.ToggleGroupSelection(context.Background(), "lpu-1", "1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.SelectedItems) != 2 || res.SelectedItems[0] != "1.1.2" || res.SelectedItems[1] != "1.1.3" {
		t.Fatalf("unexpected selection: %v", res.SelectedItems)
	}
}

func TestLPUUseCase_ToggleItemSelection(t *testing.T) {
	t.Run("adds then removes a leaf", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		l := draftLPU()
		l.SelectedItems = []string{"1.1.2"}
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)

		res, err := uc.ToggleItemSelection(context.Background(), "lpu-1", " 2.1 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.SelectedItems) != 2 || res.SelectedItems[1] != "2.1" {
			t.Fatalf("unexpected selection: %v", res.SelectedItems)
		}

		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(res, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)
		res, err = uc.ToggleItemSelection(context.Background(), "lpu-1", "1.1.2")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.SelectedItems) != 1 || res.SelectedItems[0] != "2.1" {
			t.Fatalf("unexpected selection: %v", res.SelectedItems)
		}
	})

	t.Run("headers cannot be toggled as items", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)

		_, err := uc.ToggleItemSelection(context.Background(), "lpu-1", "1.1")
		if !errors.Is(err, catalog.ErrNotALeaf) || !entities.IsValidation(err) {
			t.Fatalf("expected item validation error, got %v", err)
		}
	})

	t.Run("not draft", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		l := draftLPU()
		l.Status = entities.LPUStatusWaiting
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)

		_, err := uc.ToggleItemSelection(context.Background(), "lpu-1", "2.1")
		if !errors.Is(err, entities.ErrNotDraft) {
			t.Fatalf("expected ErrNotDraft, got %v", err)
		}
	})
}

func TestLPUUseCase_OpenRound(t *testing.T) {
	t.Run("unknown supplier", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.suppliers.EXPECT().GetByID(gomock.Any(), "s-x").Return(entities.Supplier{}, nil)

		_, err := uc.OpenRound(context.Background(), "lpu-1", OpenRoundInput{SupplierIDs: []string{"s-x"}})
		if !errors.Is(err, ErrSupplierNotFound) || !entities.IsValidation(err) {
			t.Fatalf("expected ErrSupplierNotFound validation, got %v", err)
		}
	})

	t.Run("no suppliers", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)

		_, err := uc.OpenRound(context.Background(), "lpu-1", OpenRoundInput{})
		if !errors.Is(err, entities.ErrNoInvitedSuppliers) {
			t.Fatalf("expected ErrNoInvitedSuppliers, got %v", err)
		}
	})

	t.Run("success uses draft selection when definitive", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		l := draftLPU()
		l.SelectedItems = []string{"2.1"}
		m.suppliers.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Supplier{ID: "s1", SocialReason: "Alpha Ltda"}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil)
		m.tokens.EXPECT().Generate().Return("K7P2QX9A", nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)

		res, err := uc.OpenRound(context.Background(), "lpu-1", OpenRoundInput{
			SupplierIDs: []string{"s1"},
			Permissions: &entities.PermissionSet{AllowQuantityChange: true},
			Definitive:  true,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != entities.LPUStatusWaiting || res.QuoteToken != "K7P2QX9A" {
			t.Fatalf("unexpected: %+v", res)
		}
		if len(res.InvitedSuppliers) != 1 || res.InvitedSuppliers[0].DisplayName != "Alpha Ltda" {
			t.Fatalf("unexpected suppliers: %+v", res.InvitedSuppliers)
		}
		if len(res.SelectedItems) != 1 || res.SelectedItems[0] != "2.1" {
			t.Fatalf("unexpected selection: %v", res.SelectedItems)
		}
	})
}

func TestLPUUseCase_RequestRevisionAndApprove(t *testing.T) {
	submitted := func() entities.LPU {
		l := draftLPU()
		l.Status = entities.LPUStatusSubmitted
		l.QuoteToken = "K7P2QX9A"
		l.Prices = map[string]float64{"1.1.2": 10}
		l.Quantities = map[string]int{"1.1.2": 3}
		l.SubmissionMetadata = &entities.SubmissionMetadata{SignerName: "Jane Doe"}
		return l
	}

	t.Run("revision requires comment", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(submitted(), nil)

		_, err := uc.RequestRevision(context.Background(), "lpu-1", "", nil)
		if !errors.Is(err, entities.ErrEmptyRevisionComment) {
			t.Fatalf("expected ErrEmptyRevisionComment, got %v", err)
		}
	})

	t.Run("revision pushes history", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(submitted(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)

		res, err := uc.RequestRevision(context.Background(), "lpu-1", "fix qty", nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.History) != 1 || res.History[0].RevisionNumber != 1 || res.History[0].Prices["1.1.2"] != 10 {
			t.Fatalf("unexpected history: %+v", res.History)
		}
		if res.QuoteToken != "K7P2QX9A" || res.Status != entities.LPUStatusWaiting {
			t.Fatalf("unexpected: %+v", res)
		}
	})

	t.Run("approve revision not found", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(submitted(), nil)

		n := 2
		_, err := uc.Approve(context.Background(), "lpu-1", &n)
		if !errors.Is(err, entities.ErrRevisionNotFound) {
			t.Fatalf("expected ErrRevisionNotFound, got %v", err)
		}
	})

	t.Run("approve from draft", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(draftLPU(), nil)

		_, err := uc.Approve(context.Background(), "lpu-1", nil)
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("approve", func(t *testing.T) {
		uc, m := newLPUUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(submitted(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)

		res, err := uc.Approve(context.Background(), "lpu-1", nil)
		if err != nil || res.Status != entities.LPUStatusApproved {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})
}

func TestLPUUseCase_CompareRevisionPrices(t *testing.T) {
	uc, m := newLPUUseCaseWithMocks(t)
	l := draftLPU()
	l.History = []entities.Revision{
		{RevisionNumber: 1, Prices: map[string]float64{"1.1.2": 10}},
		{RevisionNumber: 2, Prices: map[string]float64{"1.1.2": 12}},
	}
	m.repo.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(l, nil).Times(2)

	got, err := uc.CompareRevisionPrices(context.Background(), "lpu-1", "1.1.2", []int{2, 5})
	if err != nil || len(got) != 1 || got[2] != 12 {
		t.Fatalf("unexpected: %v %v", got, err)
	}
	got, _ = uc.CompareRevisionPrices(context.Background(), "lpu-1", "1.1.2", nil)
	if len(got) != 2 || got[1] != 10 {
		t.Fatalf("expected every revision, got %v", got)
	}
}

func TestMaskToken(t *testing.T) {
	if got := MaskToken("K7P2QX9A"); got != "******9A" {
		t.Fatalf("unexpected mask %q", got)
	}
	if got := MaskToken("A"); got != "**" {
		t.Fatalf("unexpected mask %q", got)
	}
}
