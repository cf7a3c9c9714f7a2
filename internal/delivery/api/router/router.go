// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"snackbasket/internal/delivery/api/middleware"
	"snackbasket/internal/delivery/api/router/handler"
	"snackbasket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	ShopHandler     *handler.ShopHandler
	OrderHandler    *handler.OrderHandler
	DeliveryHandler *handler.DeliveryHandler
	SurveyHandler   *handler.SurveyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	shopHandler     *handler.ShopHandler
	orderHandler    *handler.OrderHandler
	deliveryHandler *handler.DeliveryHandler
	surveyHandler   *handler.SurveyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		shopHandler:     params.ShopHandler,
		orderHandler:    params.OrderHandler,
		deliveryHandler: params.DeliveryHandler,
		surveyHandler:   params.SurveyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}

	// Every /api route requires a signed-in user.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	api.GET("/me", r.userHandler.Me)

	skus := api.Group("/skus")
	{
		skus.GET("", r.catalogHandler.ListSKUs)
		skus.GET("/:id", r.catalogHandler.GetSKU)
	}

	shops := api.Group("/shops")
	{
		shops.POST("", r.shopHandler.CreateShop)
		shops.GET("", r.shopHandler.ListShops)
		shops.GET("/nearby", r.shopHandler.NearbyShops)
		shops.POST("/refresh-status", r.shopHandler.RefreshStatus)
		shops.GET("/:id", r.shopHandler.GetShop)
		shops.DELETE("/:id", r.shopHandler.DeleteShop)
	}

	api.GET("/geocode/reverse", r.shopHandler.ReverseGeocode)

	orders := api.Group("/orders")
	{
		orders.POST("", r.orderHandler.CreateOrder)
		orders.GET("", r.orderHandler.ListOrders)
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.POST("/:id/discount", r.orderHandler.ApplyDiscount)
	}

	returns := api.Group("/return-orders")
	{
		returns.POST("", r.orderHandler.CreateReturnOrder)
		returns.GET("", r.orderHandler.ListReturnOrders)
		returns.GET("/:id", r.orderHandler.GetReturnOrder)
	}

	deliveries := api.Group("/deliveries")
	{
		deliveries.POST("", r.deliveryHandler.CreateDelivery)
		deliveries.GET("", r.deliveryHandler.ListDeliveries)
		deliveries.GET("/summary", r.deliveryHandler.Summary)
		deliveries.POST("/scan", r.deliveryHandler.Scan)
		deliveries.POST("/from-order/:orderId", r.deliveryHandler.CreateFromOrder)
		deliveries.GET("/by-order/:orderId", r.deliveryHandler.GetByOrder)
		deliveries.GET("/:id", r.deliveryHandler.GetDelivery)
		deliveries.POST("/:id/status", r.deliveryHandler.UpdateStatus)
		deliveries.POST("/:id/advance", r.deliveryHandler.Advance)
		deliveries.GET("/:id/label.png", r.deliveryHandler.Label)
	}

	surveys := api.Group("/surveys")
	{
		surveys.POST("", r.surveyHandler.SubmitSurvey)
		surveys.GET("", r.surveyHandler.ListSurveys)
		surveys.GET("/:id", r.surveyHandler.GetSurvey)
	}

	// User management requires the admin role.
	users := api.Group("/users")
	users.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", r.userHandler.ListUsers)
		users.POST("", r.userHandler.CreateUser)
		users.GET("/by-email", r.userHandler.GetUserByEmail)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
