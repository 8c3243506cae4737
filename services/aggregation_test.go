package services

import (
	"testing"
	"time"

	"restobook-backend/models"
)

func TestComputeDashboardStatsRevenue(t *testing.T) {
	now := time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Total: 55.75, Status: models.OrderPending, CreatedAt: now.AddDate(0, 0, -2)},
		{Total: 45.25, Status: models.OrderCompleted, CreatedAt: now.AddDate(0, 0, -10)},
	}

	stats := ComputeDashboardStats(orders, 30, now)

	if stats.TotalRevenue != 101.00 {
		t.Errorf("TotalRevenue = %v, want 101.00", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 101.00 {
		t.Errorf("MonthlyRevenue = %v, want 101.00", stats.MonthlyRevenue)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d, want 1", stats.PendingOrders)
	}
}

func TestComputeDashboardStatsWindow(t *testing.T) {
	now := time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Total: 100, Status: models.OrderCompleted, CreatedAt: now.AddDate(0, 0, -5)},
		{Total: 40, Status: models.OrderCompleted, CreatedAt: now.AddDate(0, 0, -45)},
	}

	stats := ComputeDashboardStats(orders, 30, now)

	if stats.TotalRevenue != 140 {
		t.Errorf("TotalRevenue = %v, want 140", stats.TotalRevenue)
	}
	if stats.MonthlyRevenue != 100 {
		t.Errorf("MonthlyRevenue = %v, want 100", stats.MonthlyRevenue)
	}
}

func TestComputeDashboardStatsPendingSet(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{Status: models.OrderPending, CreatedAt: now},
		{Status: models.OrderConfirmed, CreatedAt: now},
		{Status: models.OrderPreparing, CreatedAt: now},
		{Status: models.OrderReady, CreatedAt: now},
		{Status: models.OrderCompleted, CreatedAt: now},
		{Status: models.OrderCancelled, CreatedAt: now},
	}

	stats := ComputeDashboardStats(orders, 30, now)
	if stats.PendingOrders != 3 {
		t.Errorf("PendingOrders = %d, want 3", stats.PendingOrders)
	}
}

func TestComputeDashboardStatsPopularItems(t *testing.T) {
	now := time.Now()
	mkOrder := func(names ...string) models.Order {
		o := models.Order{Status: models.OrderCompleted, CreatedAt: now}
		for _, n := range names {
			o.Items = append(o.Items, models.OrderItem{Name: n, Quantity: 1})
		}
		return o
	}

	orders := []models.Order{
		mkOrder("Margherita", "Tiramisu"),
		mkOrder("Margherita"),
		mkOrder("Carbonara", "Tiramisu"),
		mkOrder("Margherita", "Carbonara"),
	}

	stats := ComputeDashboardStats(orders, 30, now)

	if len(stats.PopularItems) != 3 {
		t.Fatalf("expected 3 popular items, got %d", len(stats.PopularItems))
	}
	if stats.PopularItems[0].Name != "Margherita" || stats.PopularItems[0].OrderCount != 3 {
		t.Errorf("top item = %+v, want Margherita with 3 orders", stats.PopularItems[0])
	}
	// Tiramisu and Carbonara both appear in 2 orders; Tiramisu was seen first.
	if stats.PopularItems[1].Name != "Tiramisu" {
		t.Errorf("second item = %q, want Tiramisu (tie broken by first appearance)", stats.PopularItems[1].Name)
	}
	if stats.PopularItems[2].Name != "Carbonara" {
		t.Errorf("third item = %q, want Carbonara", stats.PopularItems[2].Name)
	}
}

func TestComputeDashboardStatsItemCountedOncePerOrder(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{
			Status:    models.OrderCompleted,
			CreatedAt: now,
			Items: []models.OrderItem{
				{Name: "Margherita", Quantity: 3},
				{Name: "Margherita", Quantity: 1},
			},
		},
	}

	stats := ComputeDashboardStats(orders, 30, now)
	if stats.PopularItems[0].OrderCount != 1 {
		t.Errorf("OrderCount = %d, want 1 (order frequency, not quantity)", stats.PopularItems[0].OrderCount)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, 30, time.Now())
	if stats.TotalRevenue != 0 || stats.MonthlyRevenue != 0 || stats.TotalOrders != 0 || stats.PendingOrders != 0 {
		t.Errorf("empty input should yield zero stats, got %+v", stats)
	}
	if len(stats.PopularItems) != 0 {
		t.Errorf("expected no popular items, got %d", len(stats.PopularItems))
	}
}

func TestComputeCustomersMergesEmailVariants(t *testing.T) {
	now := time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{CustomerEmail: "Jane@X.com", CustomerName: "Jane", Total: 30, CreatedAt: now.AddDate(0, 0, -1)},
		{CustomerEmail: "jane@x.com ", CustomerName: "Jane Doe", Total: 20, CreatedAt: now},
	}

	customers := ComputeCustomers(orders)

	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	cust := customers[0]
	if cust.Email != "jane@x.com" {
		t.Errorf("Email = %q, want normalized jane@x.com", cust.Email)
	}
	if cust.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", cust.TotalOrders)
	}
	if cust.TotalSpent != 50 {
		t.Errorf("TotalSpent = %v, want 50", cust.TotalSpent)
	}
	if cust.Name != "Jane Doe" {
		t.Errorf("Name = %q, want most recent order's name", cust.Name)
	}
	if !cust.LastOrder.Equal(now) {
		t.Errorf("LastOrder = %v, want %v", cust.LastOrder, now)
	}
	if !cust.FirstOrder.Equal(now.AddDate(0, 0, -1)) {
		t.Errorf("FirstOrder = %v, want %v", cust.FirstOrder, now.AddDate(0, 0, -1))
	}
	if len(cust.Orders) != 2 || !cust.Orders[0].CreatedAt.After(cust.Orders[1].CreatedAt) {
		t.Error("orders should be sorted newest-first")
	}
}

func TestComputeCustomersNoDuplicateEmails(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{CustomerEmail: "a@x.com", Total: 10, CreatedAt: now},
		{CustomerEmail: "A@X.COM", Total: 10, CreatedAt: now},
		{CustomerEmail: "b@x.com", Total: 10, CreatedAt: now},
		{CustomerEmail: " b@x.com", Total: 10, CreatedAt: now},
	}

	customers := ComputeCustomers(orders)

	seen := make(map[string]bool)
	for _, c := range customers {
		if seen[c.Email] {
			t.Fatalf("duplicate normalized email %q in output", c.Email)
		}
		seen[c.Email] = true
	}
	if len(customers) != 2 {
		t.Errorf("expected 2 customers, got %d", len(customers))
	}
}

func TestComputeCustomersEmptyInput(t *testing.T) {
	customers := ComputeCustomers(nil)
	if len(customers) != 0 {
		t.Errorf("expected empty list, got %d entries", len(customers))
	}
}

func TestComputeCustomersSortedByRecency(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{CustomerEmail: "old@x.com", Total: 10, CreatedAt: now.AddDate(0, 0, -10)},
		{CustomerEmail: "new@x.com", Total: 10, CreatedAt: now},
	}

	customers := ComputeCustomers(orders)
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if customers[0].Email != "new@x.com" {
		t.Errorf("first customer = %q, want most recently active", customers[0].Email)
	}
}
