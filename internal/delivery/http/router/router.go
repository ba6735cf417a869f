// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"brewhub/internal/delivery/http/middleware"
	"brewhub/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	InboxHandler     *handler.InboxHandler
	AdminHandler     *handler.AdminHandler
	InventoryHandler *handler.InventoryHandler
	AdminMiddleware  *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	inboxHandler     *handler.InboxHandler
	adminHandler     *handler.AdminHandler
	inventoryHandler *handler.InventoryHandler
	adminMiddleware  *middleware.AdminMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		inboxHandler:     params.InboxHandler,
		adminHandler:     params.AdminHandler,
		inventoryHandler: params.InventoryHandler,
		adminMiddleware:  params.AdminMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Storefront cart
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.View)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.ChangeQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Checkout and the profile activity feed
	e.POST("/checkout", r.checkoutHandler.Confirm)
	e.GET("/activities", r.checkoutHandler.Activities)

	// Notification/message inbox
	inboxGroup := e.Group("/inbox")
	{
		inboxGroup.GET("/badges", r.inboxHandler.Badges)

		inboxGroup.GET("/notifications", r.inboxHandler.Notifications)
		inboxGroup.POST("/notifications", r.inboxHandler.AddNotification)
		inboxGroup.DELETE("/notifications", r.inboxHandler.ClearNotifications)
		inboxGroup.POST("/notifications/read-all", r.inboxHandler.MarkAllNotificationsRead)
		inboxGroup.POST("/notifications/:id/read", r.inboxHandler.MarkNotificationRead)
		inboxGroup.POST("/notifications/:id/promote", r.inboxHandler.Promote)

		inboxGroup.GET("/messages", r.inboxHandler.Messages)
		inboxGroup.DELETE("/messages", r.inboxHandler.ClearMessages)
		inboxGroup.POST("/messages/read-all", r.inboxHandler.MarkAllMessagesRead)
		inboxGroup.POST("/messages/:id/read", r.inboxHandler.MarkMessageRead)
		inboxGroup.POST("/messages/:id/reply", r.inboxHandler.StartReply)
		inboxGroup.POST("/reply", r.inboxHandler.SendReply)
		inboxGroup.DELETE("/reply", r.inboxHandler.CancelReply)
	}

	// Admin mirror view, gated by the static API token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.adminMiddleware.Authenticate)
	{
		adminGroup.GET("/orders", r.adminHandler.Orders)
		adminGroup.DELETE("/orders", r.adminHandler.ClearOrders)
		adminGroup.GET("/orders/:id", r.adminHandler.Order)
		adminGroup.POST("/orders/:id/status", r.adminHandler.Transition)
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/customers", r.adminHandler.Customers)
		adminGroup.POST("/export/orders", r.adminHandler.ExportOrders)
	}

	// Standalone inventory/sales/supplier tracker
	inventoryGroup := e.Group("/inventory")
	{
		inventoryGroup.GET("/items", r.inventoryHandler.Items)
		inventoryGroup.POST("/items", r.inventoryHandler.CreateItem)
		inventoryGroup.GET("/items/low-stock", r.inventoryHandler.LowStock)
		inventoryGroup.GET("/items/:id", r.inventoryHandler.Item)
		inventoryGroup.PUT("/items/:id", r.inventoryHandler.UpdateItem)
		inventoryGroup.DELETE("/items/:id", r.inventoryHandler.DeleteItem)

		inventoryGroup.GET("/sales", r.inventoryHandler.Sales)
		inventoryGroup.POST("/sales", r.inventoryHandler.RecordSale)
		inventoryGroup.DELETE("/sales/:id", r.inventoryHandler.DeleteSale)

		inventoryGroup.GET("/suppliers", r.inventoryHandler.Suppliers)
		inventoryGroup.POST("/suppliers", r.inventoryHandler.CreateSupplier)
		inventoryGroup.PUT("/suppliers/:id", r.inventoryHandler.UpdateSupplier)
		inventoryGroup.DELETE("/suppliers/:id", r.inventoryHandler.DeleteSupplier)

		inventoryGroup.GET("/report", r.inventoryHandler.Report)
		inventoryGroup.GET("/report/inventory.csv", r.inventoryHandler.InventoryCSV)
		inventoryGroup.GET("/report/sales.csv", r.inventoryHandler.SalesCSV)
		inventoryGroup.GET("/report/suppliers.csv", r.inventoryHandler.SuppliersCSV)

		inventoryGroup.POST("/backup", r.inventoryHandler.ExportBackup)
		inventoryGroup.POST("/backup/import", r.inventoryHandler.ImportBackup)
		inventoryGroup.DELETE("/data", r.inventoryHandler.ClearAllData)
	}
}
