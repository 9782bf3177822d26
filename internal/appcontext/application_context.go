package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/infra/storage"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	DbConn    *gorm.DB
	DbDao     *db.DbDao
	Producer  producer.INotificationProducer
	BlobStore storage.IBlobStore

	CatalogService      service.ICatalogService
	CartService         service.ICartService
	OrderService        service.IOrderService
	DiscountService     service.IDiscountService
	RefundService       service.IRefundService
	ReviewService       service.IReviewService
	NotificationService service.INotificationService
	SettingService      service.ISettingService
	UserService         service.IUserService

	productRepo db.IProductRepository
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpDbConn()
	if err != nil {
		return err
	}
	err = app.setUpDbDao()
	if err != nil {
		return err
	}
	err = app.setUpProductRepo()
	if err != nil {
		return err
	}
	err = app.setUpProducer()
	if err != nil {
		return err
	}
	err = app.setUpBlobStore()
	if err != nil {
		return err
	}
	err = app.setUpServices()
	if err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	if err := app.DbDao.InitMigrate(); err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

// setUpProductRepo redis有設定就掛cache-aside裝飾器，沒有就直連DB
func (app *ApplicationContext) setUpProductRepo() error {
	log.Printf("Start setup product repository")
	dbRepo := db.NewProductRepo(app.DbDao)
	if app.Cf.RedisAddr == "" {
		log.Printf("REDIS_ADDR not set, product cache disabled")
		app.productRepo = dbRepo
		return nil
	}

	client, err := redis_repo.GetRedisClient(app.Cf.RedisAddr, app.Cf.RedisPassword, app.Cf.RedisDB)
	if err != nil {
		return err
	}
	app.productRepo = redis_decorator.NewCacheAsideProductRepo(dbRepo, redis_repo.NewProductCache(client))
	log.Printf("Finish setup product repository")
	return nil
}

func (app *ApplicationContext) setUpProducer() error {
	log.Printf("Start setup notification producer")
	if app.Cf.KafkaBrokers == "" {
		log.Printf("KAFKA_BROKERS not set, notification events disabled")
		app.Producer = producer.NopNotificationProducer{}
		return nil
	}
	app.Producer = producer.NewNotificationProducer(strings.Split(app.Cf.KafkaBrokers, ","), app.Cf.KafkaTopic)
	log.Printf("Finish setup notification producer")
	return nil
}

func (app *ApplicationContext) setUpBlobStore() error {
	log.Printf("Start setup blob store")
	store, err := storage.NewLocalBlobStore(app.Cf.BlobDir, app.Cf.BaseURL)
	if err != nil {
		return err
	}
	app.BlobStore = store
	log.Printf("Finish setup blob store")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	cartRepo := db.NewCartRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)
	categoryRepo := db.NewCategoryRepo(app.DbDao)
	discountRepo := db.NewDiscountRepo(app.DbDao)
	refundRepo := db.NewRefundRepo(app.DbDao)
	reviewRepo := db.NewReviewRepo(app.DbDao)
	notificationRepo := db.NewNotificationRepo(app.DbDao)
	settingRepo := db.NewSettingRepo(app.DbDao)
	userRepo := db.NewUserRepo(app.DbDao)

	app.CatalogService = service.NewCatalogService(app.productRepo, categoryRepo)
	app.CartService = service.NewCartService(cartRepo, app.productRepo)
	app.DiscountService = service.NewDiscountService(discountRepo)
	app.SettingService = service.NewSettingService(settingRepo)
	app.OrderService = service.NewOrderService(orderRepo, cartRepo, app.productRepo, app.DiscountService, app.SettingService)
	app.RefundService = service.NewRefundService(refundRepo, orderRepo)
	app.ReviewService = service.NewReviewService(reviewRepo, app.productRepo)
	app.NotificationService = service.NewNotificationService(notificationRepo, app.Producer)
	app.UserService = service.NewUserService(userRepo)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.Producer != nil {
			log.Printf("Closing notification producer...")
			if err := app.Producer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("notification producer shutdown error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			sqlDB, err := app.DbConn.DB()
			if err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
