package usecase

//go:generate mockgen -source=supplier_portal_usecase.go -destination=../adapter/http/handlers/mocks/supplier_portal_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCredentials covers every token/tax id mismatch without saying which one failed.
	ErrInvalidCredentials    = errors.New("invalid token or tax id")
	ErrQuoteExpired          = errors.New("quotation deadline has passed")
	ErrQuoteAlreadySubmitted = errors.New("quotation already submitted")
)

// SupplierCredentials is what a supplier types to reach a quotation: the quote token and its tax id.
type SupplierCredentials struct {
	Token string
	TaxID string
}

// QuotationView is the supplier-facing projection of an LPU. Only items of the definitive
// selection (or every item when there is none) are present.
type QuotationView struct {
	LPUID       string
	WorkID      string
	LimitDate   time.Time
	Status      entities.LPUStatus
	Supplier    entities.Supplier
	Permissions entities.PermissionSet
	Entries     []entities.CatalogEntry
	Prices      map[string]float64
	Quantities  map[string]int
	Comment     string
	Totals      catalog.Totals
}

type ItemValue struct {
	ItemID    string
	Price     float64
	Quantity  int
	LineTotal decimal.Decimal
}

// SubmitInput carries the raw values typed by the supplier; they are parsed leniently.
type SubmitInput struct {
	SignerName string
	Prices     map[string]string
	Quantities map[string]string
}

type SubmissionReceipt struct {
	LPUID          string
	SignerName     string
	SupplierName   string
	SubmissionDate time.Time
	Total          decimal.Decimal
}

// ISupplierPortalUseCase is the token-gated supplier surface. Every call re-authenticates.
type ISupplierPortalUseCase interface {
	Authenticate(ctx context.Context, creds SupplierCredentials) (QuotationView, error)
	SetPrice(ctx context.Context, creds SupplierCredentials, lpuID, itemID, raw string) (ItemValue, error)
	SetQuantity(ctx context.Context, creds SupplierCredentials, lpuID, itemID, raw string) (ItemValue, error)
	Submit(ctx context.Context, creds SupplierCredentials, lpuID string, in SubmitInput) (SubmissionReceipt, error)
}

type SupplierPortalUseCase struct {
	repo      interfaces.ILPURepository
	suppliers interfaces.ISupplierDirectory
	catalog   *catalog.Catalog
	clock     interfaces.IClock
}

var _ ISupplierPortalUseCase = (*SupplierPortalUseCase)(nil)

func NewSupplierPortalUseCase(repo interfaces.ILPURepository, suppliers interfaces.ISupplierDirectory, cat *catalog.Catalog, clock interfaces.IClock) *SupplierPortalUseCase {
	return &SupplierPortalUseCase{repo: repo, suppliers: suppliers, catalog: cat, clock: clock}
}

type supplierSession struct {
	lpu      entities.LPU
	supplier entities.Supplier
}

func (u *SupplierPortalUseCase) Authenticate(ctx context.Context, creds SupplierCredentials) (QuotationView, error) {
	sess, err := u.authenticate(ctx, creds, "", true)
	if err != nil {
		return QuotationView{}, err
	}
	log.Printf("[portal][usecase] login ok lpu_id=%s supplier_id=%s", sess.lpu.ID, sess.supplier.ID)
	return u.view(sess), nil
}

func (u *SupplierPortalUseCase) SetPrice(ctx context.Context, creds SupplierCredentials, lpuID, itemID, raw string) (ItemValue, error) {
	sess, err := u.authenticate(ctx, creds, lpuID, false)
	if err != nil {
		return ItemValue{}, err
	}
	itemID = strings.TrimSpace(itemID)
	if err := u.checkItem(sess.lpu, itemID); err != nil {
		return ItemValue{}, err
	}

	price := catalog.ParsePrice(raw)
	return u.writeField(ctx, sess, itemID, interfaces.FieldUpdate{
		Prices:        map[string]float64{itemID: price},
		RequireStatus: entities.LPUStatusWaiting,
	})
}

func (u *SupplierPortalUseCase) SetQuantity(ctx context.Context, creds SupplierCredentials, lpuID, itemID, raw string) (ItemValue, error) {
	sess, err := u.authenticate(ctx, creds, lpuID, false)
	if err != nil {
		return ItemValue{}, err
	}
	itemID = strings.TrimSpace(itemID)
	if err := u.checkItem(sess.lpu, itemID); err != nil {
		return ItemValue{}, err
	}

	qty := catalog.ParseQuantity(raw)
	if err := u.permissions(sess.lpu).CheckQuantityChange(sess.lpu.Quantity(itemID), qty); err != nil {
		log.Printf("[portal][usecase] quantity rejected lpu_id=%s item_id=%s err=%v", sess.lpu.ID, itemID, err)
		return ItemValue{}, err
	}
	return u.writeField(ctx, sess, itemID, interfaces.FieldUpdate{
		Quantities:    map[string]int{itemID: qty},
		RequireStatus: entities.LPUStatusWaiting,
	})
}

// Submit applies the final values and freezes the round. The write is conditional on the version
// read during authentication, so of two concurrent submissions only one succeeds.
func (u *SupplierPortalUseCase) Submit(ctx context.Context, creds SupplierCredentials, lpuID string, in SubmitInput) (SubmissionReceipt, error) {
	sess, err := u.authenticate(ctx, creds, lpuID, false)
	if err != nil {
		return SubmissionReceipt{}, err
	}

	next := sess.lpu.Clone()
	perms := u.permissions(sess.lpu)
	for itemID, raw := range in.Prices {
		if err := u.checkItem(sess.lpu, itemID); err != nil {
			return SubmissionReceipt{}, err
		}
		next.Prices[itemID] = catalog.ParsePrice(raw)
	}
	for itemID, raw := range in.Quantities {
		if err := u.checkItem(sess.lpu, itemID); err != nil {
			return SubmissionReceipt{}, err
		}
		qty := catalog.ParseQuantity(raw)
		if err := perms.CheckQuantityChange(sess.lpu.Quantity(itemID), qty); err != nil {
			return SubmissionReceipt{}, err
		}
		next.Quantities[itemID] = qty
	}

	now := u.clock.Now().UTC()
	if err := next.Submit(entities.SubmissionMetadata{
		SignerName:     in.SignerName,
		SubmissionDate: now,
		SupplierName:   sess.supplier.SocialReason,
		SupplierTaxID:  sess.supplier.TaxID,
	}); err != nil {
		if errors.Is(err, entities.ErrAlreadySubmitted) {
			return SubmissionReceipt{}, ErrQuoteAlreadySubmitted
		}
		return SubmissionReceipt{}, err
	}
	next.UpdatedAt = now

	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return SubmissionReceipt{}, u.resolveConflict(ctx, sess.lpu.ID)
		}
		return SubmissionReceipt{}, err
	}

	log.Printf("[portal][usecase] submitted lpu_id=%s supplier_id=%s revision_round=%d", saved.ID, sess.supplier.ID, len(saved.History)+1)
	return SubmissionReceipt{
		LPUID:          saved.ID,
		SignerName:     saved.SubmissionMetadata.SignerName,
		SupplierName:   saved.SubmissionMetadata.SupplierName,
		SubmissionDate: saved.SubmissionMetadata.SubmissionDate,
		Total:          u.catalog.Totals(saved.Prices, saved.Quantities, saved.SelectedItems).Total,
	}, nil
}

// authenticate runs the gate: credential checks first (all failing the same way), then the
// deadline and the submitted state. lpuID, when given, must be the document the token resolves to.
// The deadline is only enforced at login; a session opened on the limit day may keep writing.
func (u *SupplierPortalUseCase) authenticate(ctx context.Context, creds SupplierCredentials, lpuID string, checkDeadline bool) (supplierSession, error) {
	token := strings.TrimSpace(creds.Token)
	taxID := entities.NormalizeTaxID(creds.TaxID)
	if token == "" || taxID == "" {
		return supplierSession{}, ErrInvalidCredentials
	}

	l, err := u.repo.GetByQuoteToken(ctx, token)
	if err != nil {
		return supplierSession{}, err
	}
	if l.ID == "" || (lpuID != "" && l.ID != strings.TrimSpace(lpuID)) {
		log.Printf("[portal][usecase] login rejected token=%s reason=credentials", MaskToken(token))
		return supplierSession{}, ErrInvalidCredentials
	}

	s, err := u.suppliers.GetByTaxID(ctx, taxID)
	if err != nil {
		return supplierSession{}, err
	}
	if s.ID == "" || !l.IsInvited(s.ID) {
		log.Printf("[portal][usecase] login rejected token=%s reason=credentials", MaskToken(token))
		return supplierSession{}, ErrInvalidCredentials
	}

	if checkDeadline && l.IsExpired(u.clock.Now()) {
		log.Printf("[portal][usecase] login rejected lpu_id=%s reason=expired", l.ID)
		return supplierSession{}, ErrQuoteExpired
	}
	switch l.Status {
	case entities.LPUStatusSubmitted, entities.LPUStatusApproved:
		return supplierSession{}, ErrQuoteAlreadySubmitted
	case entities.LPUStatusWaiting:
	default:
		return supplierSession{}, ErrInvalidCredentials
	}
	return supplierSession{lpu: l, supplier: s}, nil
}

func (u *SupplierPortalUseCase) checkItem(l entities.LPU, itemID string) error {
	if err := u.catalog.ValidateLeaf(itemID); err != nil {
		return entities.NewValidationError("item_id", ErrItemNotInCatalog)
	}
	if !l.IsVisible(itemID) {
		return entities.NewValidationError("item_id", ErrItemNotSelected)
	}
	return nil
}

func (u *SupplierPortalUseCase) permissions(l entities.LPU) entities.PermissionSet {
	if l.QuotePermissions != nil {
		return *l.QuotePermissions
	}
	return l.DefaultPermissions
}

func (u *SupplierPortalUseCase) writeField(ctx context.Context, sess supplierSession, itemID string, upd interfaces.FieldUpdate) (ItemValue, error) {
	updated, err := u.repo.UpdateFields(ctx, sess.lpu.ID, upd)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return ItemValue{}, u.resolveConflict(ctx, sess.lpu.ID)
		}
		return ItemValue{}, err
	}
	if updated.ID == "" {
		return ItemValue{}, ErrInvalidCredentials
	}
	return ItemValue{
		ItemID:    itemID,
		Price:     updated.Price(itemID),
		Quantity:  updated.Quantity(itemID),
		LineTotal: catalog.LineTotal(updated.Price(itemID), updated.Quantity(itemID)),
	}, nil
}

// resolveConflict re-reads the document after a lost conditional write to tell the supplier why.
func (u *SupplierPortalUseCase) resolveConflict(ctx context.Context, id string) error {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch current.Status {
	case entities.LPUStatusSubmitted, entities.LPUStatusApproved:
		log.Printf("[portal][usecase] lost race lpu_id=%s status=%s", id, current.Status)
		return ErrQuoteAlreadySubmitted
	case entities.LPUStatusWaiting:
		return ErrConcurrencyConflict
	}
	// round cancelled or document deleted: the link no longer resolves
	return ErrInvalidCredentials
}

func (u *SupplierPortalUseCase) view(sess supplierSession) QuotationView {
	l := sess.lpu
	prices := make(map[string]float64)
	quantities := make(map[string]int)
	for _, e := range u.catalog.Visible(l.SelectedItems) {
		if p, ok := l.Prices[e.ID]; ok {
			prices[e.ID] = p
		}
		if q, ok := l.Quantities[e.ID]; ok {
			quantities[e.ID] = q
		}
	}
	return QuotationView{
		LPUID:       l.ID,
		WorkID:      l.WorkID,
		LimitDate:   l.LimitDate,
		Status:      l.Status,
		Supplier:    sess.supplier,
		Permissions: u.permissions(l),
		Entries:     u.catalog.VisibleTree(l.SelectedItems),
		Prices:      prices,
		Quantities:  quantities,
		Comment:     l.RevisionComment,
		Totals:      u.catalog.Totals(l.Prices, l.Quantities, l.SelectedItems),
	}
}
