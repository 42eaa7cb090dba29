package analytics

import (
	"sort"

	"savora-be/internal/order"
)

type ItemCount struct {
	Name     string
	Quantity int64
}

// Summary is the per-restaurant report derived from its order history.
type Summary struct {
	TotalOrders       int
	TotalRevenue      float64
	AverageOrderValue float64
	OrdersByStatus    map[order.Status]int
	RevenueByDay      map[string]float64
	TopItems          []ItemCount
}

// Compute derives the summary from an order set. Revenue counts every order
// including cancelled ones; RevenueByDay buckets by the server-local calendar
// date of the creation timestamp.
func Compute(orders []order.Order, topN int) Summary {
	s := Summary{
		OrdersByStatus: make(map[order.Status]int),
		RevenueByDay:   make(map[string]float64),
	}

	type itemTally struct {
		quantity  int64
		firstSeen int
	}
	tallies := make(map[string]*itemTally)

	for _, o := range orders {
		s.TotalOrders++
		s.TotalRevenue += o.TotalAmount
		s.OrdersByStatus[o.Status]++
		s.RevenueByDay[o.CreatedAt.Local().Format("2006-01-02")] += o.TotalAmount

		for _, it := range o.Items {
			t, ok := tallies[it.ItemName]
			if !ok {
				t = &itemTally{firstSeen: len(tallies)}
				tallies[it.ItemName] = t
			}
			t.quantity += int64(it.Quantity)
		}
	}

	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	// Ties break by first appearance in the order history, which keeps the
	// ranking stable across runs.
	sort.SliceStable(names, func(i, j int) bool {
		a, b := tallies[names[i]], tallies[names[j]]
		if a.quantity != b.quantity {
			return a.quantity > b.quantity
		}
		return a.firstSeen < b.firstSeen
	})

	if topN > len(names) {
		topN = len(names)
	}
	for _, name := range names[:topN] {
		s.TopItems = append(s.TopItems, ItemCount{Name: name, Quantity: tallies[name].quantity})
	}

	return s
}
