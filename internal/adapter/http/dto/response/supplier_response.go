package response

import (
	"time"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase"
)

type SupplierResponse struct {
	ID           string    `json:"id"`
	SocialReason string    `json:"social_reason"`
	TaxID        string    `json:"tax_id"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, SocialReason: s.SocialReason, TaxID: s.TaxID, Email: s.Email, CreatedAt: s.CreatedAt}
}

func FromSuppliers(in []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSupplier(s))
	}
	return out
}

type CatalogEntryResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Unit        string `json:"unit,omitempty"`
	IsGroup     bool   `json:"is_group,omitempty"`
	IsSubGroup  bool   `json:"is_sub_group,omitempty"`
}

func FromCatalogEntries(in []entities.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, fromCatalogEntry(e))
	}
	return out
}

func fromCatalogEntry(e entities.CatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{ID: e.ID, Description: e.Description, Unit: e.Unit, IsGroup: e.IsGroup, IsSubGroup: e.IsSubGroup}
}

// QuotationItemResponse is one row of the supplier form. Headers carry no values.
type QuotationItemResponse struct {
	CatalogEntryResponse
	Price     *float64 `json:"price,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	LineTotal string   `json:"line_total,omitempty"`
}

type QuotationViewResponse struct {
	LPUID        string                  `json:"lpu_id"`
	WorkID       string                  `json:"work_id"`
	LimitDate    string                  `json:"limit_date"`
	Status       string                  `json:"status"`
	SupplierID   string                  `json:"supplier_id"`
	SupplierName string                  `json:"supplier_name"`
	Permissions  entities.PermissionSet  `json:"permissions"`
	Comment      string                  `json:"revision_comment,omitempty"`
	Items        []QuotationItemResponse `json:"items"`
	Totals       TotalsResponse          `json:"totals"`
}

func FromQuotationView(v usecase.QuotationView) QuotationViewResponse {
	out := QuotationViewResponse{
		LPUID:        v.LPUID,
		WorkID:       v.WorkID,
		LimitDate:    v.LimitDate.UTC().Format(dateLayout),
		Status:       string(v.Status),
		SupplierID:   v.Supplier.ID,
		SupplierName: v.Supplier.SocialReason,
		Permissions:  v.Permissions,
		Comment:      v.Comment,
		Items:        make([]QuotationItemResponse, 0, len(v.Entries)),
		Totals:       FromTotals(v.Totals),
	}
	for _, e := range v.Entries {
		item := QuotationItemResponse{CatalogEntryResponse: fromCatalogEntry(e)}
		if e.IsLeaf() {
			price := v.Prices[e.ID]
			qty := v.Quantities[e.ID]
			item.Price = &price
			item.Quantity = &qty
			item.LineTotal = catalog.LineTotal(price, qty).StringFixed(2)
		}
		out.Items = append(out.Items, item)
	}
	return out
}

type ItemValueResponse struct {
	ItemID    string  `json:"item_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal string  `json:"line_total"`
}

func FromItemValue(v usecase.ItemValue) ItemValueResponse {
	return ItemValueResponse{ItemID: v.ItemID, Price: v.Price, Quantity: v.Quantity, LineTotal: v.LineTotal.StringFixed(2)}
}

type SubmissionReceiptResponse struct {
	LPUID          string    `json:"lpu_id"`
	SignerName     string    `json:"signer_name"`
	SupplierName   string    `json:"supplier_name"`
	SubmissionDate time.Time `json:"submission_date"`
	Total          string    `json:"total"`
}

func FromSubmissionReceipt(r usecase.SubmissionReceipt) SubmissionReceiptResponse {
	return SubmissionReceiptResponse{
		LPUID:          r.LPUID,
		SignerName:     r.SignerName,
		SupplierName:   r.SupplierName,
		SubmissionDate: r.SubmissionDate,
		Total:          r.Total.StringFixed(2),
	}
}
