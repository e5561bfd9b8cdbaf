// Package catalog holds the read-only standard item catalog and the pure set/total
// computations done over it (definitive selection, group toggles, totals).
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"lpu_quotation/internal/domain/entities"
)

var (
	ErrItemNotInCatalog = errors.New("item not in catalog")
	ErrNotALeaf         = errors.New("catalog entry is not a priceable item")
	ErrGroupNotFound    = errors.New("catalog group not found")
	ErrDuplicateEntry   = errors.New("duplicate catalog entry")
	ErrOrphanEntry      = errors.New("catalog entry has no parent group")
)

// Catalog is an ordered, immutable list of entries loaded once at startup.
type Catalog struct {
	entries []entities.CatalogEntry
	index   map[string]int
}

// New validates the hierarchy: ids are unique and every non-group entry sits under exactly one group
// (its first id segment) and at most one sub-group.
func New(entries []entities.CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]entities.CatalogEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry with empty id: %w", ErrOrphanEntry)
		}
		if _, ok := c.index[e.ID]; ok {
			return nil, fmt.Errorf("%s: %w", e.ID, ErrDuplicateEntry)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	for _, e := range c.entries {
		if e.IsGroup {
			continue
		}
		group, ok := c.Get(topSegment(e.ID))
		if !ok || !group.IsGroup || group.ID == e.ID {
			return nil, fmt.Errorf("%s: %w", e.ID, ErrOrphanEntry)
		}
		if e.IsSubGroup {
			continue
		}
		if parent := parentID(e.ID); parent != group.ID {
			if p, ok := c.Get(parent); ok && !p.IsSubGroup {
				return nil, fmt.Errorf("%s: parent %s is not a sub-group: %w", e.ID, parent, ErrOrphanEntry)
			}
		}
	}
	return c, nil
}

// Entries returns every entry in catalog order.
func (c *Catalog) Entries() []entities.CatalogEntry {
	return append([]entities.CatalogEntry(nil), c.entries...)
}

func (c *Catalog) Get(id string) (entities.CatalogEntry, bool) {
	i, ok := c.index[id]
	if !ok {
		return entities.CatalogEntry{}, false
	}
	return c.entries[i], true
}

// Groups returns the top-level sections in order.
func (c *Catalog) Groups() []entities.CatalogEntry {
	var out []entities.CatalogEntry
	for _, e := range c.entries {
		if e.IsGroup {
			out = append(out, e)
		}
	}
	return out
}

// EntriesOf returns the strict descendants of groupID in catalog order. Unknown ids yield nil.
func (c *Catalog) EntriesOf(groupID string) []entities.CatalogEntry {
	prefix := groupID + "."
	var out []entities.CatalogEntry
	for _, e := range c.entries {
		if strings.HasPrefix(e.ID, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// LeavesOf returns the priceable descendants of groupID.
func (c *Catalog) LeavesOf(groupID string) []entities.CatalogEntry {
	var out []entities.CatalogEntry
	for _, e := range c.EntriesOf(groupID) {
		if e.IsLeaf() {
			out = append(out, e)
		}
	}
	return out
}

// Leaves returns every priceable entry.
func (c *Catalog) Leaves() []entities.CatalogEntry {
	var out []entities.CatalogEntry
	for _, e := range c.entries {
		if e.IsLeaf() {
			out = append(out, e)
		}
	}
	return out
}

// ValidateLeaf checks that id names a priceable entry.
func (c *Catalog) ValidateLeaf(id string) error {
	e, ok := c.Get(id)
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrItemNotInCatalog)
	}
	if !e.IsLeaf() {
		return fmt.Errorf("%s: %w", id, ErrNotALeaf)
	}
	return nil
}

// ValidateLeaves stops at the first id that is not a priceable entry.
func (c *Catalog) ValidateLeaves(ids []string) error {
	for _, id := range ids {
		if err := c.ValidateLeaf(id); err != nil {
			return err
		}
	}
	return nil
}

func topSegment(id string) string {
	if i := strings.Index(id, "."); i >= 0 {
		return id[:i]
	}
	return id
}

func parentID(id string) string {
	if i := strings.LastIndex(id, "."); i >= 0 {
		return id[:i]
	}
	return ""
}
