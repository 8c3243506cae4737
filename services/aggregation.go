// services/aggregation.go
package services

import (
	"math"
	"sort"
	"time"

	"restobook-backend/models"
	"restobook-backend/utils"
)

// PopularItem is a line-item name with the number of orders it appeared in.
type PopularItem struct {
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}

// DashboardStats is the aggregate view rendered by the admin dashboard.
type DashboardStats struct {
	TotalRevenue   float64       `json:"totalRevenue"`
	MonthlyRevenue float64       `json:"monthlyRevenue"`
	TotalOrders    int           `json:"totalOrders"`
	PendingOrders  int           `json:"pendingOrders"`
	PopularItems   []PopularItem `json:"popularItems"`
}

const popularItemLimit = 5

// ComputeDashboardStats folds an order snapshot into dashboard metrics.
// Revenue figures are rounded to two decimal places. MonthlyRevenue covers
// orders created within windowDays before now. Popular items are ranked by
// the number of distinct orders containing the item; ties keep first-seen
// order. Pure; no side effects.
func ComputeDashboardStats(orders []models.Order, windowDays int, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalOrders:  len(orders),
		PopularItems: []PopularItem{},
	}
	windowStart := now.AddDate(0, 0, -windowDays)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0

	for _, o := range orders {
		stats.TotalRevenue += o.Total
		if o.CreatedAt.After(windowStart) {
			stats.MonthlyRevenue += o.Total
		}
		if models.IsOrderOpen(o.Status) {
			stats.PendingOrders++
		}

		// Count each item once per order, regardless of quantity.
		inOrder := make(map[string]bool, len(o.Items))
		for _, item := range o.Items {
			if inOrder[item.Name] {
				continue
			}
			inOrder[item.Name] = true
			if _, ok := firstSeen[item.Name]; !ok {
				firstSeen[item.Name] = seq
				seq++
			}
			counts[item.Name]++
		}
	}

	stats.TotalRevenue = round2(stats.TotalRevenue)
	stats.MonthlyRevenue = round2(stats.MonthlyRevenue)

	ranked := make([]PopularItem, 0, len(counts))
	for name, n := range counts {
		ranked = append(ranked, PopularItem{Name: name, OrderCount: n})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OrderCount != ranked[j].OrderCount {
			return ranked[i].OrderCount > ranked[j].OrderCount
		}
		return firstSeen[ranked[i].Name] < firstSeen[ranked[j].Name]
	})
	if len(ranked) > popularItemLimit {
		ranked = ranked[:popularItemLimit]
	}
	stats.PopularItems = ranked

	return stats
}

// CustomerSummary is a read-time rollup of all orders sharing one normalized
// email address. It is never stored.
type CustomerSummary struct {
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	TotalOrders int            `json:"totalOrders"`
	TotalSpent  float64        `json:"totalSpent"`
	FirstOrder  time.Time      `json:"firstOrder"`
	LastOrder   time.Time      `json:"lastOrder"`
	Orders      []models.Order `json:"orders"`
}

// ComputeCustomers groups orders by lowercased, trimmed email. Orders whose
// email differs only by case or surrounding whitespace merge into a single
// customer; the name and phone come from the most recent order. Each group's
// order list is sorted newest-first, and the output is sorted by most recent
// order. Empty input yields an empty list.
func ComputeCustomers(orders []models.Order) []CustomerSummary {
	groups := make(map[string][]models.Order)
	for _, o := range orders {
		key := utils.NormalizeEmail(o.CustomerEmail)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], o)
	}

	customers := make([]CustomerSummary, 0, len(groups))
	for email, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt.After(group[j].CreatedAt)
		})

		summary := CustomerSummary{
			Email:       email,
			Name:        group[0].CustomerName,
			Phone:       group[0].CustomerPhone,
			TotalOrders: len(group),
			FirstOrder:  group[len(group)-1].CreatedAt,
			LastOrder:   group[0].CreatedAt,
			Orders:      group,
		}
		for _, o := range group {
			summary.TotalSpent += o.Total
		}
		summary.TotalSpent = round2(summary.TotalSpent)
		customers = append(customers, summary)
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].LastOrder.After(customers[j].LastOrder)
	})
	return customers
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
