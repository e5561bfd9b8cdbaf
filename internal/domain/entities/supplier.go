package entities

import (
	"strings"
	"time"
	"unicode"
)

// Supplier is an external company registered in the supplier directory.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tax_id-index): tax_id (digits only)
type Supplier struct {
	ID           string    `json:"id"`
	SocialReason string    `json:"social_reason"`
	TaxID        string    `json:"tax_id"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeTaxID keeps only digits so "12.345.678/0001-90" and "12345678000190" compare equal.
func NormalizeTaxID(taxID string) string {
	var b strings.Builder
	for _, r := range taxID {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
