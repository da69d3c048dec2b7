package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateProduct(c *ginext.Context)
	GetProduct(c *ginext.Context)
	ListProducts(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	MarkAttendance(c *ginext.Context)
	SubmitFeedback(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	CancelOrder(c *ginext.Context)
	GetOrder(c *ginext.Context)
	GetUserOrders(c *ginext.Context)
	GetCart(c *ginext.Context)
	SetCartItem(c *ginext.Context)
	RemoveCartItem(c *ginext.Context)
	ClearCart(c *ginext.Context)
	ValidateCart(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter wires the HTTP surface. checkoutMW is applied only to the
// order mutation endpoints, which are the ones worth guarding against
// request replays.
func InitRouter(mode string, h Handler, checkoutMW []ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Products
		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Registrations
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/cancel", h.CancelRegistration)
		api.POST("/events/:id/attendance", h.MarkAttendance)
		api.POST("/events/:id/feedback", h.SubmitFeedback)
		api.GET("/events/:id/registrations", h.ListRegistrations)
		api.GET("/events/:id/registrations/:user_id", h.GetRegistration)

		// Orders
		api.POST("/orders", append(checkoutMW, h.CreateOrder)...)
		api.POST("/orders/:id/cancel", append(checkoutMW, h.CancelOrder)...)
		api.GET("/orders/:id", h.GetOrder)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/orders", h.GetUserOrders)

		// Cart
		api.GET("/users/:id/cart", h.GetCart)
		api.PUT("/users/:id/cart/items", h.SetCartItem)
		api.DELETE("/users/:id/cart/items/:product_id", h.RemoveCartItem)
		api.DELETE("/users/:id/cart", h.ClearCart)
		api.POST("/users/:id/cart/validate", h.ValidateCart)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
