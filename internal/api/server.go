package api

import "github.com/RoyceAzure/lab/storefront/internal/api/handler"

type Server struct {
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	DiscountHandler     *handler.DiscountHandler
	NotificationHandler *handler.NotificationHandler
	UserHandler         *handler.UserHandler
	FileHandler         *handler.FileHandler
	AdminHandler        *handler.AdminHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	discountHandler *handler.DiscountHandler,
	notificationHandler *handler.NotificationHandler,
	userHandler *handler.UserHandler,
	fileHandler *handler.FileHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	return &Server{
		ProductHandler:      productHandler,
		CartHandler:         cartHandler,
		OrderHandler:        orderHandler,
		DiscountHandler:     discountHandler,
		NotificationHandler: notificationHandler,
		UserHandler:         userHandler,
		FileHandler:         fileHandler,
		AdminHandler:        adminHandler,
	}
}
