package impl

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

// recentOrderCount bounds the dashboard's recent-orders listing.
const recentOrderCount = 5

// popularItemCount bounds the dashboard's popular-items listing.
const popularItemCount = 5

type adminService struct {
	orders *store.OrderBook
}

// NewAdminService creates a new admin service instance
func NewAdminService(orders *store.OrderBook) usecase.AdminUsecase {
	return &adminService{orders: orders}
}

func (s *adminService) Orders(_ context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	return s.orders.Orders(status), nil
}

func (s *adminService) Order(_ context.Context, id string) (*entity.Order, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *adminService) Transition(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	order, err := s.orders.Transition(ctx, id, status)
	if err != nil {
		return nil, wrapStorage(err, "transition order")
	}

	return &order, nil
}

func (s *adminService) ClearOrders(ctx context.Context) error {
	if err := s.orders.Clear(ctx); err != nil {
		return wrapStorage(err, "clear orders")
	}

	return nil
}

// Dashboard derives every statistic from the current order list. Cancelled
// orders count toward totals but not revenue.
func (s *adminService) Dashboard(_ context.Context) (*usecase.DashboardStats, error) {
	orders := s.orders.Orders("")

	stats := usecase.DashboardStats{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
		Revenue: usecase.RevenueBreakdown{
			Total:     decimal.Zero,
			Completed: decimal.Zero,
			Pending:   decimal.Zero,
		},
	}

	customers := make(map[string]struct{})
	quantities := make(map[string]int)

	for _, order := range orders {
		customers[order.Customer.Name] = struct{}{}

		switch order.Status {
		case entity.OrderStatusPending:
			stats.PendingCount++
			stats.Revenue.Pending = stats.Revenue.Pending.Add(order.Total)
		case entity.OrderStatusCompleted:
			stats.Revenue.Completed = stats.Revenue.Completed.Add(order.Total)
		}

		for _, item := range order.Items {
			quantities[item.Name] += item.Quantity
		}
	}

	stats.Revenue.Total = stats.Revenue.Pending.Add(stats.Revenue.Completed)
	stats.TotalRevenue = stats.Revenue.Total
	stats.DistinctCustomers = len(customers)

	if len(orders) > recentOrderCount {
		stats.RecentOrders = orders[:recentOrderCount]
	} else {
		stats.RecentOrders = orders
	}

	for name, quantity := range quantities {
		stats.PopularItems = append(stats.PopularItems, usecase.PopularItem{Name: name, Quantity: quantity})
	}
	sort.Slice(stats.PopularItems, func(i, j int) bool {
		if stats.PopularItems[i].Quantity != stats.PopularItems[j].Quantity {
			return stats.PopularItems[i].Quantity > stats.PopularItems[j].Quantity
		}

		return stats.PopularItems[i].Name < stats.PopularItems[j].Name
	})
	if len(stats.PopularItems) > popularItemCount {
		stats.PopularItems = stats.PopularItems[:popularItemCount]
	}

	return &stats, nil
}

// Customers groups orders by customer name. Ordering follows each
// customer's most recent order.
func (s *adminService) Customers(_ context.Context) ([]usecase.CustomerSummary, error) {
	orders := s.orders.Orders("")

	index := make(map[string]int)
	summaries := make([]usecase.CustomerSummary, 0)

	for _, order := range orders {
		i, ok := index[order.Customer.Name]
		if !ok {
			i = len(summaries)
			index[order.Customer.Name] = i
			summaries = append(summaries, usecase.CustomerSummary{
				Customer:   order.Customer,
				TotalSpent: decimal.Zero,
			})
		}

		summaries[i].OrderCount++
		summaries[i].TotalSpent = summaries[i].TotalSpent.Add(order.Total)
		summaries[i].Orders = append(summaries[i].Orders, order)
	}

	return summaries, nil
}
