package repository

import (
	"time"

	"lpu_quotation/internal/domain/entities"
)

type permissionsItem struct {
	AllowQuantityChange bool `dynamodbav:"allow_quantity_change"`
	AllowAddItems       bool `dynamodbav:"allow_add_items"`
	AllowRemoveItems    bool `dynamodbav:"allow_remove_items"`
	AllowLPUEdit        bool `dynamodbav:"allow_lpu_edit"`
}

type invitedSupplierItem struct {
	SupplierID  string `dynamodbav:"supplier_id"`
	DisplayName string `dynamodbav:"display_name"`
}

type submissionItem struct {
	SignerName     string `dynamodbav:"signer_name"`
	SubmissionDate string `dynamodbav:"submission_date"`
	SupplierName   string `dynamodbav:"supplier_name"`
	SupplierTaxID  string `dynamodbav:"supplier_tax_id"`
}

type revisionItem struct {
	RevisionNumber     int                `dynamodbav:"revision_number"`
	CreatedAt          string             `dynamodbav:"created_at"`
	Comment            string             `dynamodbav:"comment,omitempty"`
	Prices             map[string]float64 `dynamodbav:"prices"`
	Quantities         map[string]int     `dynamodbav:"quantities"`
	SubmissionMetadata *submissionItem    `dynamodbav:"submission_metadata,omitempty"`
}

// lpuItem is the stored shape of an LPU.
//
// Older documents carry the permission flags flat on the item (allow_*) instead of
// default_permissions/quote_permissions. They are read once into the nested sets and never written back.
type lpuItem struct {
	ID                 string                `dynamodbav:"id"`
	WorkID             string                `dynamodbav:"work_id"`
	LimitDate          string                `dynamodbav:"limit_date"`
	Status             string                `dynamodbav:"status"`
	Prices             map[string]float64    `dynamodbav:"prices"`
	Quantities         map[string]int        `dynamodbav:"quantities"`
	SelectedItems      []string              `dynamodbav:"selected_items"`
	DefaultPermissions *permissionsItem      `dynamodbav:"default_permissions,omitempty"`
	QuoteToken         string                `dynamodbav:"quote_token,omitempty"`
	InvitedSuppliers   []invitedSupplierItem `dynamodbav:"invited_suppliers"`
	QuotePermissions   *permissionsItem      `dynamodbav:"quote_permissions,omitempty"`
	SubmissionMetadata *submissionItem       `dynamodbav:"submission_metadata,omitempty"`
	History            []revisionItem        `dynamodbav:"history"`
	RevisionComment    string                `dynamodbav:"revision_comment,omitempty"`
	Version            int                   `dynamodbav:"version"`
	CreatedBy          string                `dynamodbav:"created_by,omitempty"`
	CreatedAt          string                `dynamodbav:"created_at"`
	UpdatedAt          string                `dynamodbav:"updated_at"`

	LegacyAllowQuantityChange *bool `dynamodbav:"allow_quantity_change,omitempty"`
	LegacyAllowAddItems       *bool `dynamodbav:"allow_add_items,omitempty"`
	LegacyAllowRemoveItems    *bool `dynamodbav:"allow_remove_items,omitempty"`
	LegacyAllowLPUEdit        *bool `dynamodbav:"allow_lpu_edit,omitempty"`
}

func toLPUItem(l entities.LPU) lpuItem {
	it := lpuItem{
		ID:                 l.ID,
		WorkID:             l.WorkID,
		LimitDate:          formatDate(l.LimitDate),
		Status:             string(l.Status),
		Prices:             make(map[string]float64, len(l.Prices)),
		Quantities:         make(map[string]int, len(l.Quantities)),
		SelectedItems:      append([]string{}, l.SelectedItems...),
		DefaultPermissions: toPermissionsItem(&l.DefaultPermissions),
		QuoteToken:         l.QuoteToken,
		InvitedSuppliers:   make([]invitedSupplierItem, 0, len(l.InvitedSuppliers)),
		QuotePermissions:   toPermissionsItem(l.QuotePermissions),
		SubmissionMetadata: toSubmissionItem(l.SubmissionMetadata),
		History:            make([]revisionItem, 0, len(l.History)),
		RevisionComment:    l.RevisionComment,
		Version:            l.Version,
		CreatedBy:          l.CreatedBy,
		CreatedAt:          formatTime(l.CreatedAt),
		UpdatedAt:          formatTime(l.UpdatedAt),
	}
	for k, v := range l.Prices {
		it.Prices[k] = v
	}
	for k, v := range l.Quantities {
		it.Quantities[k] = v
	}
	for _, s := range l.InvitedSuppliers {
		it.InvitedSuppliers = append(it.InvitedSuppliers, invitedSupplierItem{SupplierID: s.SupplierID, DisplayName: s.DisplayName})
	}
	for _, r := range l.History {
		it.History = append(it.History, revisionItem{
			RevisionNumber:     r.RevisionNumber,
			CreatedAt:          formatTime(r.CreatedAt),
			Comment:            r.Comment,
			Prices:             nonNilPrices(r.Prices),
			Quantities:         nonNilQuantities(r.Quantities),
			SubmissionMetadata: toSubmissionItem(r.SubmissionMetadata),
		})
	}
	return it
}

func fromLPUItem(it lpuItem) entities.LPU {
	l := entities.LPU{
		ID:                 it.ID,
		WorkID:             it.WorkID,
		LimitDate:          parseDate(it.LimitDate),
		Status:             entities.LPUStatus(it.Status),
		Prices:             nonNilPrices(it.Prices),
		Quantities:         nonNilQuantities(it.Quantities),
		SelectedItems:      entities.NormalizeSelection(it.SelectedItems),
		QuoteToken:         it.QuoteToken,
		SubmissionMetadata: fromSubmissionItem(it.SubmissionMetadata),
		RevisionComment:    it.RevisionComment,
		Version:            it.Version,
		CreatedBy:          it.CreatedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if l.Status == "" {
		l.Status = entities.LPUStatusDraft
	}
	for _, s := range it.InvitedSuppliers {
		l.InvitedSuppliers = append(l.InvitedSuppliers, entities.InvitedSupplier{SupplierID: s.SupplierID, DisplayName: s.DisplayName})
	}
	for _, r := range it.History {
		l.History = append(l.History, entities.Revision{
			RevisionNumber:     r.RevisionNumber,
			CreatedAt:          parseTime(r.CreatedAt),
			Comment:            r.Comment,
			Prices:             nonNilPrices(r.Prices),
			Quantities:         nonNilQuantities(r.Quantities),
			SubmissionMetadata: fromSubmissionItem(r.SubmissionMetadata),
		})
	}

	legacy, hasLegacy := it.legacyPermissions()
	switch {
	case it.DefaultPermissions != nil:
		l.DefaultPermissions = fromPermissionsItem(*it.DefaultPermissions)
	case hasLegacy:
		l.DefaultPermissions = legacy
	}
	switch {
	case it.QuotePermissions != nil:
		p := fromPermissionsItem(*it.QuotePermissions)
		l.QuotePermissions = &p
	case hasLegacy && l.Status != entities.LPUStatusDraft:
		l.QuotePermissions = &legacy
	}
	return l
}

func (it lpuItem) legacyPermissions() (entities.PermissionSet, bool) {
	flags := []*bool{it.LegacyAllowQuantityChange, it.LegacyAllowAddItems, it.LegacyAllowRemoveItems, it.LegacyAllowLPUEdit}
	found := false
	for _, f := range flags {
		if f != nil {
			found = true
		}
	}
	return entities.PermissionSet{
		AllowQuantityChange: deref(it.LegacyAllowQuantityChange),
		AllowAddItems:       deref(it.LegacyAllowAddItems),
		AllowRemoveItems:    deref(it.LegacyAllowRemoveItems),
		AllowLPUEdit:        deref(it.LegacyAllowLPUEdit),
	}, found
}

func toPermissionsItem(p *entities.PermissionSet) *permissionsItem {
	if p == nil {
		return nil
	}
	return &permissionsItem{
		AllowQuantityChange: p.AllowQuantityChange,
		AllowAddItems:       p.AllowAddItems,
		AllowRemoveItems:    p.AllowRemoveItems,
		AllowLPUEdit:        p.AllowLPUEdit,
	}
}

func fromPermissionsItem(p permissionsItem) entities.PermissionSet {
	return entities.PermissionSet{
		AllowQuantityChange: p.AllowQuantityChange,
		AllowAddItems:       p.AllowAddItems,
		AllowRemoveItems:    p.AllowRemoveItems,
		AllowLPUEdit:        p.AllowLPUEdit,
	}
}

func toSubmissionItem(m *entities.SubmissionMetadata) *submissionItem {
	if m == nil {
		return nil
	}
	return &submissionItem{
		SignerName:     m.SignerName,
		SubmissionDate: formatTime(m.SubmissionDate),
		SupplierName:   m.SupplierName,
		SupplierTaxID:  m.SupplierTaxID,
	}
}

func fromSubmissionItem(m *submissionItem) *entities.SubmissionMetadata {
	if m == nil {
		return nil
	}
	return &entities.SubmissionMetadata{
		SignerName:     m.SignerName,
		SubmissionDate: parseTime(m.SubmissionDate),
		SupplierName:   m.SupplierName,
		SupplierTaxID:  m.SupplierTaxID,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return entities.DateOnly(t).Format(dateLayout)
}

// parseDate accepts the stored YYYY-MM-DD form and full timestamps written by older clients.
func parseDate(s string) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(timeLayout, s); err == nil {
		return entities.DateOnly(t)
	}
	return time.Time{}
}

func nonNilPrices(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func nonNilQuantities(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func deref(b *bool) bool {
	return b != nil && *b
}
