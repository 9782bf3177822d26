package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/appcontext"
	"github.com/RoyceAzure/lab/storefront/internal/config"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	productHandler := handler.NewProductHandler(app.CatalogService, app.ReviewService)
	cartHandler := handler.NewCartHandler(app.CartService)
	orderHandler := handler.NewOrderHandler(app.OrderService, app.RefundService)
	discountHandler := handler.NewDiscountHandler(app.DiscountService)
	notificationHandler := handler.NewNotificationHandler(app.NotificationService)
	userHandler := handler.NewUserHandler(app.UserService)
	fileHandler := handler.NewFileHandler(app.BlobStore)
	adminHandler := handler.NewAdminHandler(
		app.CatalogService,
		app.OrderService,
		app.DiscountService,
		app.RefundService,
		app.ReviewService,
		app.NotificationService,
		app.SettingService,
		app.BlobStore,
	)

	server := api.NewServer(
		productHandler,
		cartHandler,
		orderHandler,
		discountHandler,
		notificationHandler,
		userHandler,
		fileHandler,
		adminHandler,
	)

	// 設置路由
	r := router.SetupRouter(server, app.Cf.AuthTokenKey, app.Logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDownCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDownCompleted
	log.Printf("closed completed")
}
