package entities

// CatalogEntry is one line of the standard item catalog.
// Groups are top-level sections ("1"), sub-groups are headers inside a section ("1.1"),
// leaves carry a unit of measure ("1.1.2").
type CatalogEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Unit        string `json:"unit,omitempty"`
	IsGroup     bool   `json:"is_group,omitempty"`
	IsSubGroup  bool   `json:"is_sub_group,omitempty"`
}

func (e CatalogEntry) IsLeaf() bool {
	return !e.IsGroup && !e.IsSubGroup
}
