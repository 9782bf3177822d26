package router

import (
	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, tokenKey string, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenKey))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	// 驗證折扣碼另外限流，防止暴力列舉
	limiterCfg := limiter.GetDefaultLimiterConfig()
	discountLimiter := m.NewRateLimitMiddleware(&limiterCfg)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 公開路由
		r.Group(func(r chi.Router) {
			r.Get("/products", server.ProductHandler.ListProducts)
			r.Get("/products/{id}", server.ProductHandler.GetProduct)
			r.Get("/products/{id}/reviews", server.ProductHandler.GetProductReviews)
			r.With(discountLimiter).Post("/validate-discount", server.DiscountHandler.ValidateDiscount)
		})

		// 需登入路由
		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Get("/me", server.UserHandler.Me)
			r.Post("/products/{id}/reviews", server.ProductHandler.AddReview)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Post("/", server.CartHandler.AddToCart)
				r.Delete("/", server.CartHandler.ClearCart)
				r.Put("/{id}", server.CartHandler.UpdateCartItem)
				r.Delete("/{id}", server.CartHandler.RemoveFromCart)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", server.OrderHandler.CreateOrder)
				r.Get("/", server.OrderHandler.GetMyOrders)
				r.Get("/{id}", server.OrderHandler.GetOrder)
				r.Post("/{id}/refund", server.OrderHandler.RequestRefund)
			})
			r.Get("/refunds", server.OrderHandler.GetMyRefunds)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", server.NotificationHandler.GetNotifications)
				r.Post("/{id}/read", server.NotificationHandler.MarkRead)
			})

			r.Get("/files/{id}", server.FileHandler.DownloadFile)
		})

		// 後台路由
		r.Route("/admin", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Use(m.AdminMiddleware)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListProducts)
				r.Post("/", server.AdminHandler.CreateProduct)
				r.Put("/{id}", server.AdminHandler.UpdateProduct)
				r.Delete("/{id}", server.AdminHandler.DeleteProduct)
				r.Post("/{id}/adjust-stock", server.AdminHandler.AdjustStock)
				r.Post("/{id}/file", server.AdminHandler.UploadProductFile)
				r.Get("/{id}/download-link", server.AdminHandler.GetProductDownloadLink)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListCategories)
				r.Post("/", server.AdminHandler.CreateCategory)
				r.Put("/{id}", server.AdminHandler.UpdateCategory)
				r.Delete("/{id}", server.AdminHandler.DeleteCategory)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListOrders)
				r.Put("/{id}/status", server.AdminHandler.UpdateOrderStatus)
			})

			r.Route("/discount-codes", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListDiscountCodes)
				r.Post("/", server.AdminHandler.CreateDiscountCode)
				r.Put("/{id}", server.AdminHandler.UpdateDiscountCode)
				r.Delete("/{id}", server.AdminHandler.DeleteDiscountCode)
			})

			r.Route("/refunds", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListRefunds)
				r.Put("/{id}/status", server.AdminHandler.UpdateRefundStatus)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListReviews)
				r.Delete("/{id}", server.AdminHandler.DeleteReview)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/", server.AdminHandler.CreateNotification)
				r.Delete("/{id}", server.AdminHandler.DeleteNotification)
			})

			r.Get("/users", server.UserHandler.ListUsers)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", server.AdminHandler.ListSettings)
				r.Put("/", server.AdminHandler.UpsertSetting)
			})
		})
	})

	return r
}
