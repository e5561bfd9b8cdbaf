package catalog

import (
	"fmt"

	"lpu_quotation/internal/domain/entities"
)

// AllSelected reports whether every leaf under groupID is in selected.
// A group without leaves is never "all selected".
func (c *Catalog) AllSelected(selected []string, groupID string) bool {
	leaves := c.LeavesOf(groupID)
	if len(leaves) == 0 {
		return false
	}
	set := toSet(selected)
	for _, e := range leaves {
		if _, ok := set[e.ID]; !ok {
			return false
		}
	}
	return true
}

// ToggleGroup flips every leaf of groupID all-or-nothing: if all were selected they are removed,
// otherwise all are added. The result is normalized (sorted, unique).
func (c *Catalog) ToggleGroup(selected []string, groupID string) ([]string, error) {
	g, ok := c.Get(groupID)
	if !ok || g.IsLeaf() {
		return nil, fmt.Errorf("%s: %w", groupID, ErrGroupNotFound)
	}

	set := toSet(selected)
	leaves := c.LeavesOf(groupID)
	if c.AllSelected(selected, groupID) {
		for _, e := range leaves {
			delete(set, e.ID)
		}
	} else {
		for _, e := range leaves {
			set[e.ID] = struct{}{}
		}
	}
	return fromSet(set), nil
}

// ToggleItem adds or removes a single leaf.
func (c *Catalog) ToggleItem(selected []string, itemID string) ([]string, error) {
	if err := c.ValidateLeaf(itemID); err != nil {
		return nil, err
	}
	set := toSet(selected)
	if _, ok := set[itemID]; ok {
		delete(set, itemID)
	} else {
		set[itemID] = struct{}{}
	}
	return fromSet(set), nil
}

// Visible returns the leaves shown for a selection: every leaf when selected is empty.
func (c *Catalog) Visible(selected []string) []entities.CatalogEntry {
	if len(selected) == 0 {
		return c.Leaves()
	}
	set := toSet(selected)
	var out []entities.CatalogEntry
	for _, e := range c.entries {
		if !e.IsLeaf() {
			continue
		}
		if _, ok := set[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func fromSet(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return entities.NormalizeSelection(ids)
}

// VisibleTree returns the visible leaves together with the group and sub-group headers above them,
// in catalog order.
func (c *Catalog) VisibleTree(selected []string) []entities.CatalogEntry {
	leaves := c.Visible(selected)
	keep := make(map[string]struct{}, len(leaves)*2)
	for _, e := range leaves {
		keep[e.ID] = struct{}{}
		for p := parentID(e.ID); p != ""; p = parentID(p) {
			keep[p] = struct{}{}
		}
	}
	var out []entities.CatalogEntry
	for _, e := range c.entries {
		if _, ok := keep[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}
