package entities

import (
	"sort"
	"time"
)

// LPUStatus represents the lifecycle of an LPU (lista de preços unitários).
//
// Allowed edges:
//   - draft -> waiting (open quoting round)
//   - waiting -> draft (cancel round)
//   - waiting -> submitted (supplier submission)
//   - submitted -> waiting (new revision)
//   - submitted -> approved, or any non-approved -> approved when restoring a revision
//
// approved is terminal.
type LPUStatus string

const (
	LPUStatusDraft     LPUStatus = "draft"
	LPUStatusWaiting   LPUStatus = "waiting"
	LPUStatusSubmitted LPUStatus = "submitted"
	LPUStatusApproved  LPUStatus = "approved"
)

func (s LPUStatus) Valid() bool {
	switch s {
	case LPUStatusDraft, LPUStatusWaiting, LPUStatusSubmitted, LPUStatusApproved:
		return true
	}
	return false
}

// PermissionSet is what a supplier may alter during one quoting round.
type PermissionSet struct {
	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`
}

// CheckQuantityChange validates a supplier quantity write against the round permissions.
// Adding a line (0 -> n) additionally needs AllowAddItems and removing one (n -> 0) needs AllowRemoveItems.
func (p PermissionSet) CheckQuantityChange(current, next int) error {
	if current == next {
		return nil
	}
	if !p.AllowQuantityChange {
		return ErrQuantityChangeNotAllowed
	}
	if current == 0 && next > 0 && !p.AllowAddItems {
		return ErrAddItemNotAllowed
	}
	if current > 0 && next == 0 && !p.AllowRemoveItems {
		return ErrRemoveItemNotAllowed
	}
	return nil
}

type InvitedSupplier struct {
	SupplierID  string `json:"supplier_id"`
	DisplayName string `json:"display_name"`
}

// SubmissionMetadata is stamped once per quoting round, when the supplier submits.
type SubmissionMetadata struct {
	SignerName     string    `json:"signer_name"`
	SubmissionDate time.Time `json:"submission_date"`
	SupplierName   string    `json:"supplier_name"`
	SupplierTaxID  string    `json:"supplier_tax_id"`
}

// Revision is a frozen snapshot pushed to history when a submitted LPU is reopened.
type Revision struct {
	RevisionNumber     int                 `json:"revision_number"`
	CreatedAt          time.Time           `json:"created_at"`
	Comment            string              `json:"comment,omitempty"`
	Prices             map[string]float64  `json:"prices"`
	Quantities         map[string]int      `json:"quantities"`
	SubmissionMetadata *SubmissionMetadata `json:"submission_metadata,omitempty"`
}

// LPU is the quotation document (aggregate root).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_token-index): quote_token
//
// Concurrency:
//   - Version is bumped on every write; writes are conditional on the version that was read.
//
// Prices and quantities are sparse; an absent key means zero.
type LPU struct {
	ID        string    `json:"id"`
	WorkID    string    `json:"work_id"`
	LimitDate time.Time `json:"limit_date"`
	Status    LPUStatus `json:"status"`

	Prices        map[string]float64 `json:"prices"`
	Quantities    map[string]int     `json:"quantities"`
	SelectedItems []string           `json:"selected_items"`

	DefaultPermissions PermissionSet       `json:"default_permissions"`
	QuoteToken         string              `json:"quote_token,omitempty"`
	InvitedSuppliers   []InvitedSupplier   `json:"invited_suppliers"`
	QuotePermissions   *PermissionSet      `json:"quote_permissions,omitempty"`
	SubmissionMetadata *SubmissionMetadata `json:"submission_metadata,omitempty"`
	History            []Revision          `json:"history"`
	RevisionComment    string              `json:"revision_comment,omitempty"`

	Version   int       `json:"version"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l LPU) Price(itemID string) float64 {
	return l.Prices[itemID]
}

func (l LPU) Quantity(itemID string) int {
	return l.Quantities[itemID]
}

// HasDefinitiveSelection reports whether the view is restricted to SelectedItems.
func (l LPU) HasDefinitiveSelection() bool {
	return len(l.SelectedItems) > 0
}

// IsVisible reports whether itemID is part of the current view.
func (l LPU) IsVisible(itemID string) bool {
	if !l.HasDefinitiveSelection() {
		return true
	}
	for _, id := range l.SelectedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// SelectionSet returns SelectedItems as a set.
func (l LPU) SelectionSet() map[string]struct{} {
	out := make(map[string]struct{}, len(l.SelectedItems))
	for _, id := range l.SelectedItems {
		out[id] = struct{}{}
	}
	return out
}

// IsExpired compares at day granularity in UTC; LimitDate itself is still open.
func (l LPU) IsExpired(now time.Time) bool {
	return DateOnly(now).After(DateOnly(l.LimitDate))
}

// IsInvited reports whether the supplier was invited to the current round.
func (l LPU) IsInvited(supplierID string) bool {
	for _, s := range l.InvitedSuppliers {
		if s.SupplierID == supplierID {
			return true
		}
	}
	return false
}

// Revision looks a revision up by its number.
func (l LPU) Revision(number int) (Revision, bool) {
	for _, r := range l.History {
		if r.RevisionNumber == number {
			return r, true
		}
	}
	return Revision{}, false
}

// DiffPrices returns the price of itemID in each requested revision.
// Unknown revision numbers contribute no column.
func (l LPU) DiffPrices(itemID string, revisionNumbers []int) map[int]float64 {
	out := make(map[int]float64, len(revisionNumbers))
	for _, n := range revisionNumbers {
		if r, ok := l.Revision(n); ok {
			out[n] = r.Prices[itemID]
		}
	}
	return out
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeSelection deduplicates and sorts item ids.
func NormalizeSelection(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Clone returns a deep copy so callers can compute a next state without touching the one they read.
func (l LPU) Clone() LPU {
	out := l
	out.Prices = clonePrices(l.Prices)
	out.Quantities = cloneQuantities(l.Quantities)
	out.SelectedItems = append([]string(nil), l.SelectedItems...)
	out.InvitedSuppliers = append([]InvitedSupplier(nil), l.InvitedSuppliers...)
	if l.QuotePermissions != nil {
		p := *l.QuotePermissions
		out.QuotePermissions = &p
	}
	out.SubmissionMetadata = cloneMetadata(l.SubmissionMetadata)
	if l.History != nil {
		out.History = make([]Revision, len(l.History))
		for i, r := range l.History {
			out.History[i] = r.clone()
		}
	}
	return out
}

func (r Revision) clone() Revision {
	out := r
	out.Prices = clonePrices(r.Prices)
	out.Quantities = cloneQuantities(r.Quantities)
	out.SubmissionMetadata = cloneMetadata(r.SubmissionMetadata)
	return out
}

func clonePrices(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneQuantities(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneMetadata(m *SubmissionMetadata) *SubmissionMetadata {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
