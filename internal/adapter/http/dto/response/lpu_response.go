package response

import (
	"time"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type GroupTotalResponse struct {
	GroupID     string `json:"group_id"`
	Description string `json:"description"`
	Total       string `json:"total"`
}

// TotalsResponse carries money as fixed two-decimal strings.
type TotalsResponse struct {
	Total  string               `json:"total"`
	Groups []GroupTotalResponse `json:"groups"`
}

func FromTotals(t catalog.Totals) TotalsResponse {
	out := TotalsResponse{Total: t.Total.StringFixed(2), Groups: make([]GroupTotalResponse, 0, len(t.Groups))}
	for _, g := range t.Groups {
		out.Groups = append(out.Groups, GroupTotalResponse{GroupID: g.GroupID, Description: g.Description, Total: g.Total.StringFixed(2)})
	}
	return out
}

type SubmissionMetadataResponse struct {
	SignerName     string    `json:"signer_name"`
	SubmissionDate time.Time `json:"submission_date"`
	SupplierName   string    `json:"supplier_name"`
	SupplierTaxID  string    `json:"supplier_tax_id"`
}

func fromMetadata(m *entities.SubmissionMetadata) *SubmissionMetadataResponse {
	if m == nil {
		return nil
	}
	return &SubmissionMetadataResponse{
		SignerName:     m.SignerName,
		SubmissionDate: m.SubmissionDate,
		SupplierName:   m.SupplierName,
		SupplierTaxID:  m.SupplierTaxID,
	}
}

type LPUResponse struct {
	ID                 string                      `json:"id"`
	WorkID             string                      `json:"work_id"`
	LimitDate          string                      `json:"limit_date"`
	Status             string                      `json:"status"`
	Prices             map[string]float64          `json:"prices"`
	Quantities         map[string]int              `json:"quantities"`
	SelectedItems      []string                    `json:"selected_items"`
	DefaultPermissions entities.PermissionSet      `json:"default_permissions"`
	QuoteToken         string                      `json:"quote_token,omitempty"`
	InvitedSuppliers   []entities.InvitedSupplier  `json:"invited_suppliers"`
	QuotePermissions   *entities.PermissionSet     `json:"quote_permissions,omitempty"`
	SubmissionMetadata *SubmissionMetadataResponse `json:"submission_metadata,omitempty"`
	RevisionComment    string                      `json:"revision_comment,omitempty"`
	RevisionCount      int                         `json:"revision_count"`
	Totals             TotalsResponse              `json:"totals"`
	Version            int                         `json:"version"`
	CreatedBy          string                      `json:"created_by,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func FromLPU(l entities.LPU, totals catalog.Totals) LPUResponse {
	out := LPUResponse{
		ID:                 l.ID,
		WorkID:             l.WorkID,
		LimitDate:          l.LimitDate.UTC().Format(dateLayout),
		Status:             string(l.Status),
		Prices:             l.Prices,
		Quantities:         l.Quantities,
		SelectedItems:      l.SelectedItems,
		DefaultPermissions: l.DefaultPermissions,
		QuoteToken:         l.QuoteToken,
		InvitedSuppliers:   l.InvitedSuppliers,
		QuotePermissions:   l.QuotePermissions,
		SubmissionMetadata: fromMetadata(l.SubmissionMetadata),
		RevisionComment:    l.RevisionComment,
		RevisionCount:      len(l.History),
		Totals:             FromTotals(totals),
		Version:            l.Version,
		CreatedBy:          l.CreatedBy,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
	if out.Prices == nil {
		out.Prices = map[string]float64{}
	}
	if out.Quantities == nil {
		out.Quantities = map[string]int{}
	}
	if out.SelectedItems == nil {
		out.SelectedItems = []string{}
	}
	if out.InvitedSuppliers == nil {
		out.InvitedSuppliers = []entities.InvitedSupplier{}
	}
	return out
}

type RevisionResponse struct {
	RevisionNumber     int                         `json:"revision_number"`
	CreatedAt          time.Time                   `json:"created_at"`
	Comment            string                      `json:"comment,omitempty"`
	Prices             map[string]float64          `json:"prices"`
	Quantities         map[string]int              `json:"quantities"`
	SubmissionMetadata *SubmissionMetadataResponse `json:"submission_metadata,omitempty"`
}

func FromRevisions(revs []entities.Revision) []RevisionResponse {
	out := make([]RevisionResponse, 0, len(revs))
	for _, r := range revs {
		out = append(out, RevisionResponse{
			RevisionNumber:     r.RevisionNumber,
			CreatedAt:          r.CreatedAt,
			Comment:            r.Comment,
			Prices:             r.Prices,
			Quantities:         r.Quantities,
			SubmissionMetadata: fromMetadata(r.SubmissionMetadata),
		})
	}
	return out
}

// RevisionComparisonResponse lists one item's price per revision number (JSON object keys are the numbers).
type RevisionComparisonResponse struct {
	ItemID string          `json:"item_id"`
	Prices map[int]float64 `json:"prices"`
}

func FromLPUList(items []entities.LPU, totals func(entities.LPU) catalog.Totals) []LPUResponse {
	out := make([]LPUResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FromLPU(l, totals(l)))
	}
	return out
}
