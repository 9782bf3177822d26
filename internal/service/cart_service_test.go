package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CartServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	cartService ICartService
	productRepo db.IProductRepository
}

func (suite *CartServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	dbDao := db.NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	productRepo := db.NewProductRepo(dbDao)

	suite.db = conn
	suite.productRepo = productRepo
	suite.cartService = NewCartService(db.NewCartRepo(dbDao), productRepo)
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM products")
}

func (suite *CartServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *CartServiceTestSuite) createProduct(name string, status string) *model.Product {
	product := &model.Product{
		Name:   name,
		Price:  decimal.NewFromFloat(100.0),
		Stock:  10,
		Status: status,
		Type:   model.ProductTypeAccount,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *CartServiceTestSuite) TestAddToCart() {
	auth := model.AuthContext{UserID: 1, Role: model.RoleCustomer}
	product := suite.createProduct("Test Product", model.ProductStatusActive)

	item, err := suite.cartService.AddToCart(context.Background(), auth, product.ProductID, 2)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 2, item.Quantity)

	// 重複加入合併數量
	item, err = suite.cartService.AddToCart(context.Background(), auth, product.ProductID, 3)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 5, item.Quantity)
}

func (suite *CartServiceTestSuite) TestAddToCart_InvalidQuantity() {
	auth := model.AuthContext{UserID: 1, Role: model.RoleCustomer}
	product := suite.createProduct("Test Product", model.ProductStatusActive)

	_, err := suite.cartService.AddToCart(context.Background(), auth, product.ProductID, 0)
	require.ErrorIs(suite.T(), err, ErrInvalidQuantity)
}

func (suite *CartServiceTestSuite) TestAddToCart_InactiveProduct() {
	auth := model.AuthContext{UserID: 1, Role: model.RoleCustomer}
	product := suite.createProduct("Test Product", model.ProductStatusInactive)

	_, err := suite.cartService.AddToCart(context.Background(), auth, product.ProductID, 1)
	require.ErrorIs(suite.T(), err, ErrProductUnavailable)
}

func (suite *CartServiceTestSuite) TestAddToCart_ProductNotFound() {
	auth := model.AuthContext{UserID: 1, Role: model.RoleCustomer}

	_, err := suite.cartService.AddToCart(context.Background(), auth, 99999, 1)
	require.ErrorIs(suite.T(), err, ErrProductUnavailable)
}

func (suite *CartServiceTestSuite) TestUpdateCartItem_OtherUsersItemHidden() {
	owner := model.AuthContext{UserID: 1, Role: model.RoleCustomer}
	product := suite.createProduct("Test Product", model.ProductStatusActive)

	item, err := suite.cartService.AddToCart(context.Background(), owner, product.ProductID, 2)
	require.NoError(suite.T(), err)

	// 別人的購物車項目一律當不存在
	other := model.AuthContext{UserID: 2, Role: model.RoleCustomer}
	_, err = suite.cartService.UpdateCartItem(context.Background(), other, item.CartItemID, 5)
	require.ErrorIs(suite.T(), err, ErrCartItemNotFound)

	// 擁有者可改
	updated, err := suite.cartService.UpdateCartItem(context.Background(), owner, item.CartItemID, 5)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 5, updated.Quantity)
}

func (suite *CartServiceTestSuite) TestRemoveFromCart_Idempotent() {
	auth := model.AuthContext{UserID: 1, Role: model.RoleCustomer}
	product := suite.createProduct("Test Product", model.ProductStatusActive)

	item, err := suite.cartService.AddToCart(context.Background(), auth, product.ProductID, 1)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartService.RemoveFromCart(context.Background(), auth, item.CartItemID))
	require.NoError(suite.T(), suite.cartService.RemoveFromCart(context.Background(), auth, item.CartItemID))

	items, err := suite.cartService.GetCart(context.Background(), auth)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), items)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
