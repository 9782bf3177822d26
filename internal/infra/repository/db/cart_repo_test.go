package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CartRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	cartRepo    *CartRepo
	productRepo *ProductRepo
}

func (suite *CartRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.cartRepo = NewCartRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao)
}

func (suite *CartRepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM products")
}

func (suite *CartRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *CartRepoTestSuite) createProduct(name string) *model.Product {
	product := &model.Product{
		Name:  name,
		Price: decimal.NewFromFloat(100.0),
		Stock: 10,
		Type:  model.ProductTypeAccount,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *CartRepoTestSuite) TestAddItem() {
	product := suite.createProduct("Test Product")

	item, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  2,
	})
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), item.CartItemID)
	require.Equal(suite.T(), 2, item.Quantity)
}

func (suite *CartRepoTestSuite) TestAddItem_MergeQuantity() {
	product := suite.createProduct("Test Product")

	first, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  2,
	})
	require.NoError(suite.T(), err)

	// 同一用戶重複加入同商品，合併數量而不是建新row
	merged, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  3,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), first.CartItemID, merged.CartItemID)
	require.Equal(suite.T(), 5, merged.Quantity)

	items, err := suite.cartRepo.GetItemsByUserID(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
}

func (suite *CartRepoTestSuite) TestAddItem_DifferentUsersNotMerged() {
	product := suite.createProduct("Test Product")

	_, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  1,
	})
	require.NoError(suite.T(), err)

	_, err = suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    2,
		ProductID: product.ProductID,
		Quantity:  1,
	})
	require.NoError(suite.T(), err)

	items, err := suite.cartRepo.GetItemsByUserID(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
}

func (suite *CartRepoTestSuite) TestUpdateItemQuantity() {
	product := suite.createProduct("Test Product")

	item, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  2,
	})
	require.NoError(suite.T(), err)

	updated, err := suite.cartRepo.UpdateItemQuantity(context.Background(), item.CartItemID, 7)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 7, updated.Quantity)
}

func (suite *CartRepoTestSuite) TestUpdateItemQuantity_NotFound() {
	_, err := suite.cartRepo.UpdateItemQuantity(context.Background(), 99999, 1)
	require.ErrorIs(suite.T(), err, ErrCartItemNotFound)
}

func (suite *CartRepoTestSuite) TestRemoveItem_Idempotent() {
	product := suite.createProduct("Test Product")

	item, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
		UserID:    1,
		ProductID: product.ProductID,
		Quantity:  2,
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.cartRepo.RemoveItem(context.Background(), item.CartItemID))
	// 重複刪除不報錯
	require.NoError(suite.T(), suite.cartRepo.RemoveItem(context.Background(), item.CartItemID))
}

func (suite *CartRepoTestSuite) TestClearCart() {
	productA := suite.createProduct("Product A")
	productB := suite.createProduct("Product B")

	for _, productID := range []uint{productA.ProductID, productB.ProductID} {
		_, err := suite.cartRepo.AddItem(context.Background(), &model.CartItem{
			UserID:    1,
			ProductID: productID,
			Quantity:  1,
		})
		require.NoError(suite.T(), err)
	}

	require.NoError(suite.T(), suite.cartRepo.ClearCart(context.Background(), 1))

	items, err := suite.cartRepo.GetItemsByUserID(context.Background(), 1)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), items)

	// 空購物車再清一次也不報錯
	require.NoError(suite.T(), suite.cartRepo.ClearCart(context.Background(), 1))
}

func TestCartRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepoTestSuite))
}
