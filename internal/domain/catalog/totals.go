package catalog

import (
	"github.com/shopspring/decimal"
)

type GroupTotal struct {
	GroupID     string
	Description string
	Total       decimal.Decimal
}

// Totals is unit price x quantity summed over the visible leaves.
type Totals struct {
	Total  decimal.Decimal
	Groups []GroupTotal
}

// LineTotal is price x quantity for a single item.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// Totals sums every visible leaf exactly once. Absent prices/quantities count as zero.
func (c *Catalog) Totals(prices map[string]float64, quantities map[string]int, selected []string) Totals {
	visible := toSet(nil)
	for _, e := range c.Visible(selected) {
		visible[e.ID] = struct{}{}
	}

	out := Totals{Total: decimal.Zero}
	for _, g := range c.Groups() {
		gt := GroupTotal{GroupID: g.ID, Description: g.Description, Total: decimal.Zero}
		for _, e := range c.LeavesOf(g.ID) {
			if _, ok := visible[e.ID]; !ok {
				continue
			}
			gt.Total = gt.Total.Add(LineTotal(prices[e.ID], quantities[e.ID]))
		}
		out.Total = out.Total.Add(gt.Total)
		out.Groups = append(out.Groups, gt)
	}
	return out
}
