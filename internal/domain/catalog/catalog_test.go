package catalog

import (
	"testing"

	"lpu_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleEntries() []entities.CatalogEntry {
	return []entities.CatalogEntry{
		{ID: "1", Description: "Serviços preliminares", IsGroup: true},
		{ID: "1.1", Description: "Documentação", IsSubGroup: true},
		{ID: "1.1.2", Description: "Projeto executivo", Unit: "vb"},
		{ID: "1.1.3", Description: "ART", Unit: "und"},
		{ID: "1.2", Description: "Mobilização", IsSubGroup: true},
		{ID: "1.2.1", Description: "Mobilização de equipe", Unit: "vb"},
		{ID: "2", Description: "Canteiro", IsGroup: true},
		{ID: "2.1", Description: "Container escritório", Unit: "mês"},
		{ID: "2.2", Description: "Tapume", Unit: "m²"},
	}
}

func sampleCatalog(t require.TestingT) *Catalog {
	c, err := New(sampleEntries())
	require.NoError(t, err)
	return c
}

func ids(entries []entities.CatalogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		entries := append(sampleEntries(), entities.CatalogEntry{ID: "2.2", Description: "dup"})
		_, err := New(entries)
		require.ErrorIs(t, err, ErrDuplicateEntry)
	})

	t.Run("orphan leaf", func(t *testing.T) {
		entries := append(sampleEntries(), entities.CatalogEntry{ID: "3.1", Description: "x", Unit: "vb"})
		_, err := New(entries)
		require.ErrorIs(t, err, ErrOrphanEntry)
	})

	t.Run("leaf under a leaf", func(t *testing.T) {
		entries := append(sampleEntries(), entities.CatalogEntry{ID: "2.2.1", Description: "x", Unit: "vb"})
		_, err := New(entries)
		require.ErrorIs(t, err, ErrOrphanEntry)
	})
}

func TestCatalog_EntriesOf(t *testing.T) {
	c := sampleCatalog(t)

	require.Equal(t, []string{"1.1", "1.1.2", "1.1.3", "1.2", "1.2.1"}, ids(c.EntriesOf("1")))
	require.Equal(t, []string{"1.1.2", "1.1.3"}, ids(c.EntriesOf("1.1")))
	require.Empty(t, c.EntriesOf("9"))
	require.Empty(t, c.EntriesOf("1.1.2"))
	require.Equal(t, []string{"1.1.2", "1.1.3", "1.2.1"}, ids(c.LeavesOf("1")))
	require.Equal(t, []string{"1", "2"}, ids(c.Groups()))
}

func TestCatalog_ValidateLeaf(t *testing.T) {
	c := sampleCatalog(t)
	require.NoError(t, c.ValidateLeaf("1.1.2"))
	require.ErrorIs(t, c.ValidateLeaf("1.1"), ErrNotALeaf)
	require.ErrorIs(t, c.ValidateLeaf("7.7"), ErrItemNotInCatalog)
	require.ErrorIs(t, c.ValidateLeaves([]string{"2.1", "9"}), ErrItemNotInCatalog)
}

func TestCatalog_ToggleGroup(t *testing.T) {
	c := sampleCatalog(t)

	t.Run("partial selection selects all", func(t *testing.T) {
		got, err := c.ToggleGroup([]string{"1.1.2", "2.1"}, "1")
		require.NoError(t, err)
		require.Equal(t, []string{"1.1.2", "1.1.3", "1.2.1", "2.1"}, got)
		require.True(t, c.AllSelected(got, "1"))
	})

	t.Run("full selection clears group", func(t *testing.T) {
		got, err := c.ToggleGroup([]string{"1.1.2", "1.1.3", "1.2.1", "2.1"}, "1")
		require.NoError(t, err)
		require.Equal(t, []string{"2.1"}, got)
	})

	t.Run("sub-group", func(t *testing.T) {
		got, err := c.ToggleGroup(nil, "1.2")
		require.NoError(t, err)
		require.Equal(t, []string{"1.2.1"}, got)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := c.ToggleGroup(nil, "2.1")
		require.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("toggle twice is identity on a full group", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			group := rapid.SampledFrom([]string{"1", "1.1", "1.2", "2"}).Draw(t, "group")
			once, err := c.ToggleGroup(nil, group)
			if err != nil {
				t.Fatal(err)
			}
			twice, err := c.ToggleGroup(once, group)
			if err != nil {
				t.Fatal(err)
			}
			if len(twice) != 0 {
				t.Fatalf("expected empty selection, got %v", twice)
			}
		})
	})
}

func TestCatalog_ToggleItem(t *testing.T) {
	c := sampleCatalog(t)
	got, err := c.ToggleItem([]string{"2.1"}, "2.2")
	require.NoError(t, err)
	require.Equal(t, []string{"2.1", "2.2"}, got)
	got, err = c.ToggleItem(got, "2.1")
	require.NoError(t, err)
	require.Equal(t, []string{"2.2"}, got)
	_, err = c.ToggleItem(got, "2")
	require.ErrorIs(t, err, ErrNotALeaf)
}

func TestCatalog_Totals(t *testing.T) {
	c := sampleCatalog(t)
	prices := map[string]float64{"1.1.2": 10.5, "1.2.1": 100, "2.1": 1200.25, "9.9": 50}
	quantities := map[string]int{"1.1.2": 2, "1.2.1": 1, "2.1": 3, "9.9": 1}

	t.Run("no selection counts every leaf", func(t *testing.T) {
		got := c.Totals(prices, quantities, nil)
		require.True(t, decimal.RequireFromString("3721.75").Equal(got.Total), got.Total.String())
		require.Len(t, got.Groups, 2)
		require.True(t, decimal.RequireFromString("121").Equal(got.Groups[0].Total))
		require.True(t, decimal.RequireFromString("3600.75").Equal(got.Groups[1].Total))
	})

	t.Run("selection filters", func(t *testing.T) {
		got := c.Totals(prices, quantities, []string{"1.1.2"})
		require.True(t, decimal.RequireFromString("21").Equal(got.Total), got.Total.String())
	})

	t.Run("idempotent and every leaf once", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			leaves := ids(c.Leaves())
			p := map[string]float64{}
			q := map[string]int{}
			want := decimal.Zero
			for _, id := range leaves {
				p[id] = float64(rapid.IntRange(0, 10000).Draw(t, "cents")) / 100
				q[id] = rapid.IntRange(0, 20).Draw(t, "qty")
				want = want.Add(LineTotal(p[id], q[id]))
			}
			sel := rapid.SliceOfNDistinct(rapid.SampledFrom(leaves), 0, len(leaves), func(s string) string { return s }).Draw(t, "selection")

			first := c.Totals(p, q, sel)
			second := c.Totals(p, q, sel)
			if !first.Total.Equal(second.Total) {
				t.Fatalf("totals differ: %s vs %s", first.Total, second.Total)
			}
			if len(sel) == 0 && !first.Total.Equal(want) {
				t.Fatalf("expected %s for full view, got %s", want, first.Total)
			}
		})
	})
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"R$ 1.200,50": 1200.50,
		"12,5":        12.5,
		"12.5":        12.5,
		"1200":        1200,
		"":            0,
		"abc":         0,
		"-3":          0,
		"12.5abc":     12.5,
		" R$12,00 ":   12,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, ParsePrice(in))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int{
		"3":     3,
		"3.7":   3,
		"12abc": 12,
		"":      0,
		"x":     0,
		"-2":    0,
		" 7 ":   7,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, ParseQuantity(in))
		})
	}
}

func TestCatalog_VisibleTree(t *testing.T) {
	c := sampleCatalog(t)
	require.Equal(t, []string{"1", "1.2", "1.2.1", "2", "2.2"}, ids(c.VisibleTree([]string{"2.2", "1.2.1"})))
	require.Len(t, c.VisibleTree(nil), len(sampleEntries()))
}
