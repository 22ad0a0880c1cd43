package shop

import "github.com/shopspring/decimal"

// SellerStatsFor aggregates one seller's dashboard numbers. Totals are
// stored as client-supplied decimal text, so revenue is summed with exact
// decimals and only converted to a float at the edge; a malformed total
// contributes nothing rather than failing the whole call.
func (s *Store) SellerStatsFor(sellerID string) SellerStats {
	var stats SellerStats

	for _, p := range s.products.list(func(p Product) bool { return p.SellerID == sellerID }) {
		if p.Status == "active" {
			stats.ActiveListings++
		}
	}

	orders := s.orders.list(func(o Order) bool { return o.SellerID == sellerID })
	stats.TotalOrders = len(orders)

	revenue := decimal.Zero
	for _, o := range orders {
		total, err := decimal.NewFromString(o.Total)
		if err != nil {
			continue
		}
		revenue = revenue.Add(total)
	}

	stats.Revenue = revenue.InexactFloat64()
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = revenue.
			Div(decimal.NewFromInt(int64(stats.TotalOrders))).
			InexactFloat64()
	}
	return stats
}
