package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"brewhub/config"
	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

type checkoutService struct {
	cart        *store.CartLedger
	orders      *store.OrderBook
	inbox       *store.Inbox
	activities  *store.ActivityLog
	taxRate     decimal.Decimal
	deliveryFee decimal.Decimal
	logger      *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	cfg *config.Config,
	cart *store.CartLedger,
	orders *store.OrderBook,
	inbox *store.Inbox,
	activities *store.ActivityLog,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:        cart,
		orders:      orders,
		inbox:       inbox,
		activities:  activities,
		taxRate:     decimal.NewFromFloat(cfg.Checkout.TaxRate),
		deliveryFee: decimal.NewFromFloat(cfg.Checkout.DeliveryFee),
		logger:      logger,
	}
}

// Confirm snapshots the cart into a pending order. The side effects run in a
// fixed sequence with no rollback: an order that fails partway may leave a
// notification or activity behind.
func (s *checkoutService) Confirm(ctx context.Context, req usecase.CheckoutRequest) (*entity.Order, error) {
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, domainerrors.ErrMissingContact
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	// Sum from the copied snapshot so a concurrent cart mutation cannot
	// desync the subtotal from the item lines.
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	tax := subtotal.Mul(s.taxRate).Round(2)
	delivery := s.deliveryFee

	now := time.Now()
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	orderNumber := "ORD" + millis[len(millis)-8:]

	order := entity.Order{
		ID:                  millis,
		OrderNumber:         orderNumber,
		Customer:            entity.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address},
		Items:               items,
		Subtotal:            subtotal,
		Tax:                 tax,
		Delivery:            delivery,
		Total:               subtotal.Add(tax).Add(delivery),
		SpecialInstructions: req.SpecialInstructions,
		Status:              entity.OrderStatusPending,
		CreatedAt:           now,
	}

	if err := s.orders.Submit(ctx, order); err != nil {
		return nil, wrapStorage(err, "submit order")
	}

	if _, err := s.inbox.AddNotification(ctx,
		"New Order Received",
		fmt.Sprintf("Order %s from %s", order.OrderNumber, order.Customer.Name),
		"",
	); err != nil {
		return nil, wrapStorage(err, "notify admin")
	}

	if _, err := s.activities.Record(ctx,
		"Order Placed",
		fmt.Sprintf("Order %s has been placed successfully", order.OrderNumber),
	); err != nil {
		return nil, wrapStorage(err, "record activity")
	}

	if err := s.cart.Clear(ctx); err != nil {
		return nil, wrapStorage(err, "clear cart")
	}

	s.logger.Info("order submitted",
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.Total.StringFixed(2)),
	)

	return &order, nil
}
