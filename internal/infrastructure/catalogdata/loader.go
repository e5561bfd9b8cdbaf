// Package catalogdata loads the standard item catalog, embedded at build time or from a CSV file.
package catalogdata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"lpu_quotation/internal/domain/catalog"
	"lpu_quotation/internal/domain/entities"
)

//go:embed lpu_standard_items.csv
var standardItems []byte

var expectedHeader = []string{"id", "description", "unit", "kind"}

// Load returns the catalog from CATALOG_FILE when set, otherwise the embedded standard items.
func Load() (*catalog.Catalog, error) {
	if path := strings.TrimSpace(os.Getenv("CATALOG_FILE")); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
		}
		defer f.Close()
		log.Printf("[catalog][loader] loading catalog from file=%s", path)
		return Parse(f)
	}
	return Parse(bytes.NewReader(standardItems))
}

// Parse reads "id,description,unit,kind" rows, kind being group, subgroup or item.
func Parse(r io.Reader) (*catalog.Catalog, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("catalog CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("catalog CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	entries := make([]entities.CatalogEntry, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("catalog CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		e := entities.CatalogEntry{
			ID:          strings.TrimSpace(record[0]),
			Description: strings.TrimSpace(record[1]),
			Unit:        strings.TrimSpace(record[2]),
		}
		switch strings.ToLower(strings.TrimSpace(record[3])) {
		case "group":
			e.IsGroup = true
		case "subgroup":
			e.IsSubGroup = true
		case "item":
			if e.Unit == "" {
				return nil, fmt.Errorf("catalog CSV row %d: item %s has no unit", i+2, e.ID)
			}
		default:
			return nil, fmt.Errorf("catalog CSV row %d: unknown kind %q", i+2, record[3])
		}
		entries = append(entries, e)
	}

	c, err := catalog.New(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.TrimPrefix(actual[i], "\ufeff")) != col {
			return false
		}
	}
	return true
}
