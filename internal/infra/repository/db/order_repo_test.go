package db

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db           *gorm.DB
	orderRepo    *OrderRepo
	productRepo  *ProductRepo
	cartRepo     *CartRepo
	discountRepo *DiscountRepo
}

func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao)
	suite.cartRepo = NewCartRepo(dbDao)
	suite.discountRepo = NewDiscountRepo(dbDao)
}

func (suite *OrderRepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM discount_scopes")
	suite.db.Exec("DELETE FROM discount_codes")
	suite.db.Exec("DELETE FROM products")
}

func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *OrderRepoTestSuite) createProduct(name string, stock uint) *model.Product {
	product := &model.Product{
		Name:  name,
		Price: decimal.NewFromFloat(100.0),
		Stock: stock,
		Type:  model.ProductTypeAccount,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *OrderRepoTestSuite) buildOrder(userID uint, product *model.Product, quantity int) *model.Order {
	return &model.Order{
		OrderNumber: util.GenerateOrderNumber(),
		UserID:      userID,
		OrderItems: []model.OrderItem{
			{
				ProductID:   product.ProductID,
				ProductName: product.Name,
				ProductType: product.Type,
				Price:       product.Price,
				Quantity:    quantity,
			},
		},
		TotalAmount:   product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Currency:      "USD",
		PaymentMethod: model.PaymentMethodPaypal,
		PaymentStatus: model.PaymentStatusPaid,
		Status:        model.OrderStatusCompleted,
	}
}

func (suite *OrderRepoTestSuite) TestPlaceOrder() {
	product := suite.createProduct("Test Product", 10)

	_, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  3,
	})
	require.NoError(suite.T(), err)

	order := suite.buildOrder(1, product, 3)
	require.NoError(suite.T(), suite.orderRepo.PlaceOrder(context.Background(), order))
	require.NotZero(suite.T(), order.OrderID)

	// 庫存已扣
	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), uint(7), found.Stock)

	// 購物車已清
	items, err := suite.cartRepo.GetItemsByUserID(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), items)

	// 訂單與快照都在
	saved, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), saved.OrderItems, 1)
	require.Equal(suite.T(), "Test Product", saved.OrderItems[0].ProductName)
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_StockNotEnoughRollsBack() {
	product := suite.createProduct("Test Product", 2)

	order := suite.buildOrder(1, product, 3)
	err := suite.orderRepo.PlaceOrder(context.Background(), order)
	require.ErrorIs(suite.T(), err, ErrProductStockNotEnough)

	// 整筆回滾，訂單不能留半套
	var count int64
	suite.db.Model(&model.Order{}).Count(&count)
	require.Zero(suite.T(), count)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), uint(2), found.Stock)
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_ConsumesDiscount() {
	product := suite.createProduct("Test Product", 10)

	code := &model.DiscountCode{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          2,
	}
	require.NoError(suite.T(), suite.discountRepo.CreateDiscountCode(context.Background(), code))

	order := suite.buildOrder(1, product, 1)
	discountCode := "SAVE10"
	order.DiscountCode = &discountCode

	require.NoError(suite.T(), suite.orderRepo.PlaceOrder(context.Background(), order))

	saved, err := suite.discountRepo.GetByCode(context.Background(), "SAVE10")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, saved.UsedCount)
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_DiscountExhaustedRollsBack() {
	product := suite.createProduct("Test Product", 10)

	code := &model.DiscountCode{
		Code:               "ONCE",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          1,
		UsedCount:          1,
	}
	require.NoError(suite.T(), suite.discountRepo.CreateDiscountCode(context.Background(), code))

	order := suite.buildOrder(1, product, 1)
	discountCode := "ONCE"
	order.DiscountCode = &discountCode

	err := suite.orderRepo.PlaceOrder(context.Background(), order)
	require.ErrorIs(suite.T(), err, ErrDiscountConsumeFailed)

	// 折扣碼消耗失敗，庫存與訂單一併回滾
	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), uint(10), found.Stock)

	var count int64
	suite.db.Model(&model.Order{}).Count(&count)
	require.Zero(suite.T(), count)
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_ExpiredDiscountRollsBack() {
	// 驗證與結帳交易之間折扣碼過期，消耗必須失敗並整筆回滾
	product := suite.createProduct("Test Product", 10)

	expired := time.Now().Add(-time.Minute)
	code := &model.DiscountCode{
		Code:               "LAPSED",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          model.UnlimitedUses,
		ExpiresAt:          &expired,
	}
	require.NoError(suite.T(), suite.discountRepo.CreateDiscountCode(context.Background(), code))

	order := suite.buildOrder(1, product, 1)
	discountCode := "LAPSED"
	order.DiscountCode = &discountCode

	err := suite.orderRepo.PlaceOrder(context.Background(), order)
	require.ErrorIs(suite.T(), err, ErrDiscountConsumeFailed)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), uint(10), found.Stock)

	saved, err := suite.discountRepo.GetByCode(context.Background(), "LAPSED")
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), saved.UsedCount)
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_DuplicateOrderNumber() {
	product := suite.createProduct("Test Product", 10)

	first := suite.buildOrder(1, product, 1)
	require.NoError(suite.T(), suite.orderRepo.PlaceOrder(context.Background(), first))

	second := suite.buildOrder(2, product, 1)
	second.OrderNumber = first.OrderNumber

	err := suite.orderRepo.PlaceOrder(context.Background(), second)
	require.ErrorIs(suite.T(), err, ErrOrderNumberDuplicated)
}

func (suite *OrderRepoTestSuite) TestGetOrdersByUserID() {
	product := suite.createProduct("Test Product", 10)

	require.NoError(suite.T(), suite.orderRepo.PlaceOrder(context.Background(), suite.buildOrder(1, product, 1)))
	require.NoError(suite.T(), suite.orderRepo.PlaceOrder(context.Background(), suite.buildOrder(2, product, 1)))

	orders, err := suite.orderRepo.GetOrdersByUserID(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	require.Equal(suite.T(), uint(1), orders[0].UserID)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus() {
	product := suite.createProduct("Test Product", 10)
	order := suite.buildOrder(1, product, 1)
	require.NoError(suite.T(), suite.orderRepo.PlaceOrder(context.Background(), order))

	require.NoError(suite.T(), suite.orderRepo.UpdateOrderStatus(context.Background(), order.OrderID, model.OrderStatusCancelled))

	saved, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusCancelled, saved.Status)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus_NotFound() {
	err := suite.orderRepo.UpdateOrderStatus(context.Background(), 99999, model.OrderStatusCancelled)
	require.ErrorIs(suite.T(), err, ErrOrderNotFound)
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
