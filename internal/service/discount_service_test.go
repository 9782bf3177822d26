package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DiscountServiceTestSuite struct {
	suite.Suite
	db              *gorm.DB
	discountService IDiscountService
}

func (suite *DiscountServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	dbDao := db.NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = conn
	suite.discountService = NewDiscountService(db.NewDiscountRepo(dbDao))
}

func (suite *DiscountServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM discount_scopes")
	suite.db.Exec("DELETE FROM discount_codes")
}

func (suite *DiscountServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *DiscountServiceTestSuite) createCode(code *model.DiscountCode) {
	require.NoError(suite.T(), suite.discountService.CreateDiscountCode(context.Background(), code))
}

func (suite *DiscountServiceTestSuite) TestValidate() {
	suite.createCode(&model.DiscountCode{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          model.UnlimitedUses,
		Active:             true,
	})

	discount, err := suite.discountService.Validate(context.Background(), "SAVE10")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "SAVE10", discount.Code)
}

func (suite *DiscountServiceTestSuite) TestValidate_NotFound() {
	_, err := suite.discountService.Validate(context.Background(), "NOPE")
	require.ErrorIs(suite.T(), err, ErrDiscountInvalid)
}

func (suite *DiscountServiceTestSuite) TestValidate_CaseSensitive() {
	suite.createCode(&model.DiscountCode{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          model.UnlimitedUses,
		Active:             true,
	})

	// 大小寫不同視為不存在
	_, err := suite.discountService.Validate(context.Background(), "save10")
	require.ErrorIs(suite.T(), err, ErrDiscountInvalid)
}

func (suite *DiscountServiceTestSuite) TestValidate_Inactive() {
	suite.createCode(&model.DiscountCode{
		Code:               "DISABLED",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          model.UnlimitedUses,
		Active:             true,
	})
	// active欄位有DB default，建立後再停用
	suite.db.Model(&model.DiscountCode{}).Where("code = ?", "DISABLED").Update("active", false)

	// 停用與不存在對外不區分
	_, err := suite.discountService.Validate(context.Background(), "DISABLED")
	require.ErrorIs(suite.T(), err, ErrDiscountInvalid)
}

func (suite *DiscountServiceTestSuite) TestValidate_Exhausted() {
	suite.createCode(&model.DiscountCode{
		Code:               "USEDUP",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          3,
		UsedCount:          3,
		Active:             true,
	})

	_, err := suite.discountService.Validate(context.Background(), "USEDUP")
	require.ErrorIs(suite.T(), err, ErrDiscountExhausted)
}

func (suite *DiscountServiceTestSuite) TestValidate_Expired() {
	expired := time.Now().Add(-time.Hour)
	suite.createCode(&model.DiscountCode{
		Code:               "OLD",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          model.UnlimitedUses,
		Active:             true,
		ExpiresAt:          &expired,
	})

	_, err := suite.discountService.Validate(context.Background(), "OLD")
	require.ErrorIs(suite.T(), err, ErrDiscountExpired)
}

func (suite *DiscountServiceTestSuite) TestValidate_UnlimitedNeverExhausted() {
	suite.createCode(&model.DiscountCode{
		Code:               "FOREVER",
		DiscountPercentage: decimal.NewFromInt(10),
		TotalUses:          model.UnlimitedUses,
		UsedCount:          100000,
		Active:             true,
	})

	_, err := suite.discountService.Validate(context.Background(), "FOREVER")
	require.NoError(suite.T(), err)
}

func (suite *DiscountServiceTestSuite) TestCreateDiscountCode_Invalid() {
	err := suite.discountService.CreateDiscountCode(context.Background(), &model.DiscountCode{
		DiscountPercentage: decimal.NewFromInt(10),
	})
	require.Error(suite.T(), err)

	err = suite.discountService.CreateDiscountCode(context.Background(), &model.DiscountCode{
		Code:               "NEG",
		DiscountPercentage: decimal.NewFromInt(-5),
	})
	require.Error(suite.T(), err)
}

func TestDiscountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscountServiceTestSuite))
}
