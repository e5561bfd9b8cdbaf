package response

import (
	"encoding/json"
	"testing"
	"time"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
	"lpu_quotation/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromLPU(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	l := entities.LPU{
		ID:        "lpu-1",
		WorkID:    "obra-7",
		LimitDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Status:    entities.LPUStatusDraft,
		History:   []entities.Revision{{RevisionNumber: 1}},
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
	}
	totals := catalog.Totals{
		Total:  decimal.RequireFromString("3721.75"),
		Groups: []catalog.GroupTotal{{GroupID: "1", Description: "Serviços", Total: decimal.RequireFromString("3721.75")}},
	}

	got := FromLPU(l, totals)
	if got.ID != "lpu-1" || got.LimitDate != "2025-05-20" || got.Status != "draft" || got.RevisionCount != 1 || got.Version != 2 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Totals.Total != "3721.75" || got.Totals.Groups[0].Total != "3721.75" {
		t.Fatalf("unexpected totals: %+v", got.Totals)
	}

	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := raw["quote_token"]; ok {
		t.Fatalf("empty token must be omitted")
	}
	if _, ok := raw["prices"].(map[string]any); !ok {
		t.Fatalf("prices must serialize as an object, got %v", raw["prices"])
	}
}

func TestFromQuotationView(t *testing.T) {
	v := usecase.QuotationView{
		LPUID:     "lpu-1",
		LimitDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Status:    entities.LPUStatusWaiting,
		Supplier:  entities.Supplier{ID: "s1", SocialReason: "Fornecedor Alfa", TaxID: "12345678000190"},
		Entries: []entities.CatalogEntry{
			{ID: "1", Description: "Serviços", IsGroup: true},
			{ID: "1.1.2", Description: "Escavação", Unit: "m3"},
		},
		Prices:     map[string]float64{"1.1.2": 12.5},
		Quantities: map[string]int{"1.1.2": 3},
	}

	got := FromQuotationView(v)
	if got.SupplierName != "Fornecedor Alfa" || len(got.Items) != 2 {
		t.Fatalf("unexpected view: %+v", got)
	}
	if got.Items[0].Price != nil || got.Items[0].LineTotal != "" {
		t.Fatalf("group headers carry no values: %+v", got.Items[0])
	}
	leaf := got.Items[1]
	if leaf.Price == nil || *leaf.Price != 12.5 || *leaf.Quantity != 3 || leaf.LineTotal != "37.50" {
		t.Fatalf("unexpected leaf: %+v", leaf)
	}
}

func TestFromSubmissionReceipt(t *testing.T) {
	r := usecase.SubmissionReceipt{LPUID: "lpu-1", SignerName: "Ana", Total: decimal.NewFromFloat(10.1)}
	if got := FromSubmissionReceipt(r); got.Total != "10.10" || got.SignerName != "Ana" {
		t.Fatalf("unexpected receipt: %+v", got)
	}
}
