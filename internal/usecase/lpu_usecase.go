package usecase

//go:generate mockgen -source=lpu_usecase.go -destination=../adapter/http/handlers/mocks/lpu_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLPUNotFound         = errors.New("lpu not found")
	ErrInvalidLPUID        = errors.New("invalid lpu id")
	ErrInvalidWorkID       = errors.New("invalid work_id")
	ErrInvalidLimitDate    = errors.New("invalid limit_date")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrInvalidValue        = errors.New("price and quantity must be non-negative")
	ErrItemNotInCatalog    = errors.New("item not in catalog")
	ErrItemNotSelected     = errors.New("item not part of the definitive selection")
	ErrConcurrencyConflict = errors.New("lpu was modified concurrently")
	ErrSupplierNotFound    = errors.New("supplier not found")
)

// ILPUUseCase exposes the internal (editor) side of the quotation lifecycle.
//
//   - draft editing: Create, Update, SetItemValues, ReplaceSelection, ToggleGroupSelection,
//     ToggleItemSelection, Delete
//   - quoting rounds: OpenRound, CancelRound
//   - reconciliation: RequestRevision, Approve, ListRevisions, CompareRevisionPrices
type ILPUUseCase interface {
	Create(ctx context.Context, in CreateLPUInput) (entities.LPU, error)
	GetByID(ctx context.Context, id string) (entities.LPU, error)
	List(ctx context.Context, workID string, status string) ([]entities.LPU, error)
	Update(ctx context.Context, id string, in UpdateLPUInput) (entities.LPU, error)
	Delete(ctx context.Context, id string) error
	SetItemValues(ctx context.Context, id, itemID string, rawPrice, rawQuantity *string) (entities.LPU, error)
	ReplaceSelection(ctx context.Context, id string, items []string) (entities.LPU, error)
	ToggleGroupSelection(ctx context.Context, id, groupID string) (entities.LPU, error)
	ToggleItemSelection(ctx context.Context, id, itemID string) (entities.LPU, error)
	OpenRound(ctx context.Context, id string, in OpenRoundInput) (entities.LPU, error)
	CancelRound(ctx context.Context, id string) (entities.LPU, error)
	RequestRevision(ctx context.Context, id, comment string, perms *entities.PermissionSet) (entities.LPU, error)
	Approve(ctx context.Context, id string, revisionNumber *int) (entities.LPU, error)
	ListRevisions(ctx context.Context, id string) ([]entities.Revision, error)
	CompareRevisionPrices(ctx context.Context, id, itemID string, revisionNumbers []int) (map[int]float64, error)
	Totals(l entities.LPU) catalog.Totals
}

type CreateLPUInput struct {
	WorkID             string
	LimitDate          time.Time
	DefaultPermissions entities.PermissionSet
	SelectedItems      []string
	CreatedBy          string
}

// UpdateLPUInput replaces only the non-nil fields. Version, when set, must match the stored version.
type UpdateLPUInput struct {
	WorkID             *string
	LimitDate          *time.Time
	DefaultPermissions *entities.PermissionSet
	Prices             map[string]float64
	Quantities         map[string]int
	Version            *int
}

type OpenRoundInput struct {
	SupplierIDs []string
	// Permissions falls back to the draft default permissions when nil.
	Permissions *entities.PermissionSet
	Definitive  bool
	// SelectedItems falls back to the draft selection when empty.
	SelectedItems []string
}

type LPUUseCase struct {
	repo      interfaces.ILPURepository
	suppliers interfaces.ISupplierDirectory
	catalog   *catalog.Catalog
	clock     interfaces.IClock
	tokens    interfaces.ITokenGenerator
}

var _ ILPUUseCase = (*LPUUseCase)(nil)

func NewLPUUseCase(repo interfaces.ILPURepository, suppliers interfaces.ISupplierDirectory, cat *catalog.Catalog, clock interfaces.IClock, tokens interfaces.ITokenGenerator) *LPUUseCase {
	return &LPUUseCase{repo: repo, suppliers: suppliers, catalog: cat, clock: clock, tokens: tokens}
}

func (u *LPUUseCase) Create(ctx context.Context, in CreateLPUInput) (entities.LPU, error) {
	workID := strings.TrimSpace(in.WorkID)
	if workID == "" {
		return entities.LPU{}, entities.NewValidationError("work_id", ErrInvalidWorkID)
	}
	if in.LimitDate.IsZero() {
		return entities.LPU{}, entities.NewValidationError("limit_date", ErrInvalidLimitDate)
	}
	selection := entities.NormalizeSelection(in.SelectedItems)
	if err := u.validateItems(selection); err != nil {
		return entities.LPU{}, err
	}

	now := u.clock.Now().UTC()
	l := entities.LPU{
		ID:                 uuid.NewString(),
		WorkID:             workID,
		LimitDate:          entities.DateOnly(in.LimitDate),
		Status:             entities.LPUStatusDraft,
		Prices:             map[string]float64{},
		Quantities:         map[string]int{},
		SelectedItems:      selection,
		DefaultPermissions: in.DefaultPermissions,
		Version:            1,
		CreatedBy:          strings.TrimSpace(in.CreatedBy),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	log.Printf("[lpu][usecase] create work_id=%s lpu_id=%s created_by=%s", workID, l.ID, l.CreatedBy)
	return u.repo.Create(ctx, l)
}

func (u *LPUUseCase) GetByID(ctx context.Context, id string) (entities.LPU, error) {
	return u.load(ctx, id)
}

func (u *LPUUseCase) List(ctx context.Context, workID string, status string) ([]entities.LPU, error) {
	filter := interfaces.LPUFilter{WorkID: strings.TrimSpace(workID)}
	if status = strings.TrimSpace(status); status != "" {
		s := entities.LPUStatus(strings.ToLower(status))
		if !s.Valid() {
			return nil, entities.NewValidationError("status", ErrInvalidStatus)
		}
		filter.Status = s
	}
	return u.repo.List(ctx, filter)
}

func (u *LPUUseCase) Update(ctx context.Context, id string, in UpdateLPUInput) (entities.LPU, error) {
	if in.WorkID != nil && strings.TrimSpace(*in.WorkID) == "" {
		return entities.LPU{}, entities.NewValidationError("work_id", ErrInvalidWorkID)
	}
	if in.LimitDate != nil && in.LimitDate.IsZero() {
		return entities.LPU{}, entities.NewValidationError("limit_date", ErrInvalidLimitDate)
	}
	if err := u.validateValues(in.Prices, in.Quantities); err != nil {
		return entities.LPU{}, err
	}

	return u.mutate(ctx, id, func(l *entities.LPU) error {
		if in.Version != nil && *in.Version != l.Version {
			return ErrConcurrencyConflict
		}
		if err := l.EnsureEditable(); err != nil {
			return err
		}
		if in.WorkID != nil {
			l.WorkID = strings.TrimSpace(*in.WorkID)
		}
		if in.LimitDate != nil {
			l.LimitDate = entities.DateOnly(*in.LimitDate)
		}
		if in.DefaultPermissions != nil {
			l.DefaultPermissions = *in.DefaultPermissions
		}
		if in.Prices != nil {
			l.Prices = copyPrices(in.Prices)
		}
		if in.Quantities != nil {
			l.Quantities = copyQuantities(in.Quantities)
		}
		return nil
	})
}

func (u *LPUUseCase) Delete(ctx context.Context, id string) error {
	l, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := l.EnsureDeletable(); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, l.ID, l.Version); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return ErrConcurrencyConflict
		}
		return err
	}
	log.Printf("[lpu][usecase] deleted lpu_id=%s status=%s history=%d", l.ID, l.Status, len(l.History))
	return nil
}

// SetItemValues is the draft-time field write. It is last-write-wins per item and only guarded by status.
func (u *LPUUseCase) SetItemValues(ctx context.Context, id, itemID string, rawPrice, rawQuantity *string) (entities.LPU, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.LPU{}, entities.NewValidationError("item_id", ErrInvalidItemID)
	}
	if err := u.validateItems([]string{itemID}); err != nil {
		return entities.LPU{}, err
	}
	if rawPrice == nil && rawQuantity == nil {
		return u.load(ctx, id)
	}

	upd := interfaces.FieldUpdate{RequireStatus: entities.LPUStatusDraft}
	if rawPrice != nil {
		upd.Prices = map[string]float64{itemID: catalog.ParsePrice(*rawPrice)}
	}
	if rawQuantity != nil {
		upd.Quantities = map[string]int{itemID: catalog.ParseQuantity(*rawQuantity)}
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LPU{}, ErrInvalidLPUID
	}
	updated, err := u.repo.UpdateFields(ctx, id, upd)
	if err == nil {
		if updated.ID == "" {
			return entities.LPU{}, ErrLPUNotFound
		}
		return updated, nil
	}
	if !errors.Is(err, interfaces.ErrVersionConflict) {
		return entities.LPU{}, err
	}

	current, lerr := u.load(ctx, id)
	if lerr != nil {
		return entities.LPU{}, lerr
	}
	if eerr := current.EnsureEditable(); eerr != nil {
		return entities.LPU{}, eerr
	}
	return entities.LPU{}, ErrConcurrencyConflict
}

func (u *LPUUseCase) ReplaceSelection(ctx context.Context, id string, items []string) (entities.LPU, error) {
	selection := entities.NormalizeSelection(items)
	if err := u.validateItems(selection); err != nil {
		return entities.LPU{}, err
	}
	return u.mutate(ctx, id, func(l *entities.LPU) error {
		if err := l.EnsureEditable(); err != nil {
			return err
		}
		l.SelectedItems = selection
		return nil
	})
}

func (u *LPUUseCase) ToggleGroupSelection(ctx context.Context, id, groupID string) (entities.LPU, error) {
	groupID = strings.TrimSpace(groupID)
	return u.mutate(ctx, id, func(l *entities.LPU) error {
		if err := l.EnsureEditable(); err != nil {
			return err
		}
		next, err := u.catalog.ToggleGroup(l.SelectedItems, groupID)
		if err != nil {
			return entities.NewValidationError("group_id", err)
		}
		l.SelectedItems = next
		return nil
	})
}

func (u *LPUUseCase) ToggleItemSelection(ctx context.Context, id, itemID string) (entities.LPU, error) {
	itemID = strings.TrimSpace(itemID)
	return u.mutate(ctx, id, func(l *entities.LPU) error {
		if err := l.EnsureEditable(); err != nil {
			return err
		}
		next, err := u.catalog.ToggleItem(l.SelectedItems, itemID)
		if err != nil {
			return entities.NewValidationError("item_id", err)
		}
		l.SelectedItems = next
		return nil
	})
}

func (u *LPUUseCase) OpenRound(ctx context.Context, id string, in OpenRoundInput) (entities.LPU, error) {
	log.Printf("[lpu][usecase] open-round start lpu_id=%s suppliers=%d definitive=%t", id, len(in.SupplierIDs), in.Definitive)

	invited := make([]entities.InvitedSupplier, 0, len(in.SupplierIDs))
	for _, sid := range in.SupplierIDs {
		sid = strings.TrimSpace(sid)
		if sid == "" {
			continue
		}
		s, err := u.suppliers.GetByID(ctx, sid)
		if err != nil {
			return entities.LPU{}, err
		}
		if s.ID == "" {
			return entities.LPU{}, entities.NewValidationError("supplier_ids", fmt.Errorf("%w: %s", ErrSupplierNotFound, sid))
		}
		invited = append(invited, entities.InvitedSupplier{SupplierID: s.ID, DisplayName: s.SocialReason})
	}

	selection := entities.NormalizeSelection(in.SelectedItems)
	if err := u.validateItems(selection); err != nil {
		return entities.LPU{}, err
	}

	updated, err := u.mutate(ctx, id, func(l *entities.LPU) error {
		sel := selection
		if in.Definitive && len(sel) == 0 {
			sel = l.SelectedItems
		}
		return l.OpenRound(entities.RoundConfig{
			Suppliers:   invited,
			Permissions: in.Permissions,
			Definitive:  in.Definitive,
			Selection:   sel,
		}, u.clock.Now(), u.tokens.Generate)
	})
	if err != nil {
		log.Printf("[lpu][usecase] open-round failed lpu_id=%s err=%v", id, err)
		return entities.LPU{}, err
	}
	log.Printf("[lpu][usecase] open-round ok lpu_id=%s token=%s suppliers=%d", updated.ID, MaskToken(updated.QuoteToken), len(updated.InvitedSuppliers))
	return updated, nil
}

func (u *LPUUseCase) CancelRound(ctx context.Context, id string) (entities.LPU, error) {
	updated, err := u.mutate(ctx, id, func(l *entities.LPU) error {
		return l.CancelRound()
	})
	if err == nil {
		log.Printf("[lpu][usecase] round cancelled lpu_id=%s", updated.ID)
	}
	return updated, err
}

func (u *LPUUseCase) RequestRevision(ctx context.Context, id, comment string, perms *entities.PermissionSet) (entities.LPU, error) {
	updated, err := u.mutate(ctx, id, func(l *entities.LPU) error {
		_, err := l.RequestRevision(comment, perms, u.clock.Now())
		return err
	})
	if err != nil {
		return entities.LPU{}, err
	}
	log.Printf("[lpu][usecase] revision requested lpu_id=%s revision=%d", updated.ID, len(updated.History))
	return updated, nil
}

// Approve approves the live submission, or restores and approves revisionNumber when given.
func (u *LPUUseCase) Approve(ctx context.Context, id string, revisionNumber *int) (entities.LPU, error) {
	updated, err := u.mutate(ctx, id, func(l *entities.LPU) error {
		if revisionNumber != nil {
			return l.ApproveRevision(*revisionNumber)
		}
		return l.Approve()
	})
	if err != nil {
		return entities.LPU{}, err
	}
	if revisionNumber != nil {
		log.Printf("[lpu][usecase] approved lpu_id=%s from_revision=%d", updated.ID, *revisionNumber)
	} else {
		log.Printf("[lpu][usecase] approved lpu_id=%s", updated.ID)
	}
	return updated, nil
}

func (u *LPUUseCase) ListRevisions(ctx context.Context, id string) ([]entities.Revision, error) {
	l, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.History == nil {
		return []entities.Revision{}, nil
	}
	return l.History, nil
}

func (u *LPUUseCase) CompareRevisionPrices(ctx context.Context, id, itemID string, revisionNumbers []int) (map[int]float64, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, entities.NewValidationError("item_id", ErrInvalidItemID)
	}
	l, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(revisionNumbers) == 0 {
		for _, r := range l.History {
			revisionNumbers = append(revisionNumbers, r.RevisionNumber)
		}
	}
	return l.DiffPrices(itemID, revisionNumbers), nil
}

func (u *LPUUseCase) Totals(l entities.LPU) catalog.Totals {
	return u.catalog.Totals(l.Prices, l.Quantities, l.SelectedItems)
}

func (u *LPUUseCase) load(ctx context.Context, id string) (entities.LPU, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LPU{}, ErrInvalidLPUID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.ID == "" {
		return entities.LPU{}, ErrLPUNotFound
	}
	return l, nil
}

// mutate is the read-compute-conditional-write cycle used by every whole-document change.
// fn works on a copy; a failed fn or a lost race leaves the stored document untouched.
func (u *LPUUseCase) mutate(ctx context.Context, id string, fn func(l *entities.LPU) error) (entities.LPU, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.LPU{}, err
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return entities.LPU{}, err
	}
	next.UpdatedAt = u.clock.Now().UTC()

	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[lpu][usecase] version conflict lpu_id=%s version=%d", current.ID, current.Version)
			return entities.LPU{}, ErrConcurrencyConflict
		}
		return entities.LPU{}, err
	}
	return saved, nil
}

func (u *LPUUseCase) validateItems(ids []string) error {
	for _, id := range ids {
		if err := u.catalog.ValidateLeaf(id); err != nil {
			return entities.NewValidationError("item_id", fmt.Errorf("%w: %s", ErrItemNotInCatalog, id))
		}
	}
	return nil
}

func (u *LPUUseCase) validateValues(prices map[string]float64, quantities map[string]int) error {
	for id, p := range prices {
		if err := u.validateItems([]string{id}); err != nil {
			return err
		}
		if p < 0 {
			return entities.NewValidationError("prices", ErrInvalidValue)
		}
	}
	for id, q := range quantities {
		if err := u.validateItems([]string{id}); err != nil {
			return err
		}
		if q < 0 {
			return entities.NewValidationError("quantities", ErrInvalidValue)
		}
	}
	return nil
}

func copyPrices(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyQuantities(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// MaskToken keeps only the last two characters of a quote token for logs.
func MaskToken(token string) string {
	if len(token) <= 2 {
		return "**"
	}
	return strings.Repeat("*", len(token)-2) + token[len(token)-2:]
}
