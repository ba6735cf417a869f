package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"brewhub/internal/domain/entity"
)

// PopularItem aggregates ordered quantity per menu item name.
type PopularItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// RevenueBreakdown splits revenue by order status.
type RevenueBreakdown struct {
	Total     decimal.Decimal `json:"total"`
	Completed decimal.Decimal `json:"completed"`
	Pending   decimal.Decimal `json:"pending"`
}

// DashboardStats is the admin landing-page summary, derived from the order
// list on every call.
type DashboardStats struct {
	TotalOrders       int              `json:"total_orders"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	PendingCount      int              `json:"pending_count"`
	DistinctCustomers int              `json:"distinct_customers"`
	RecentOrders      []entity.Order   `json:"recent_orders"`
	PopularItems      []PopularItem    `json:"popular_items"`
	Revenue           RevenueBreakdown `json:"revenue"`
}

// CustomerSummary groups a customer's orders with their spend.
type CustomerSummary struct {
	Customer   entity.Customer `json:"customer"`
	OrderCount int             `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Orders     []entity.Order  `json:"orders"`
}

// AdminUsecase defines the admin mirror view over the shared order state
type AdminUsecase interface {
	// Orders lists orders newest first, optionally filtered by status
	Orders(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)

	// Order returns one order by id
	Order(ctx context.Context, id string) (*entity.Order, error)

	// Transition moves a pending order to completed or cancelled
	Transition(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// ClearOrders removes every order
	ClearOrders(ctx context.Context) error

	// Dashboard derives the summary statistics
	Dashboard(ctx context.Context) (*DashboardStats, error)

	// Customers groups orders by customer name with totals
	Customers(ctx context.Context) ([]CustomerSummary, error)
}
