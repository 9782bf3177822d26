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

type SettingServiceTestSuite struct {
	suite.Suite
	db             *gorm.DB
	settingService ISettingService
}

func (suite *SettingServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	dbDao := db.NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = conn
	suite.settingService = NewSettingService(db.NewSettingRepo(dbDao))
}

func (suite *SettingServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM settings")
}

func (suite *SettingServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *SettingServiceTestSuite) TestTaxRate_DefaultZero() {
	// 未設定稅率視為免稅
	rate, err := suite.settingService.TaxRate(context.Background())
	require.NoError(suite.T(), err)
	require.True(suite.T(), rate.IsZero())
}

func (suite *SettingServiceTestSuite) TestTaxRate() {
	require.NoError(suite.T(), suite.settingService.UpsertSetting(context.Background(), model.SettingTaxRate, "0.05"))

	rate, err := suite.settingService.TaxRate(context.Background())
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.NewFromFloat(0.05).Equal(rate))
}

func (suite *SettingServiceTestSuite) TestUpsertSetting_Overwrite() {
	require.NoError(suite.T(), suite.settingService.UpsertSetting(context.Background(), model.SettingTaxRate, "0.05"))
	require.NoError(suite.T(), suite.settingService.UpsertSetting(context.Background(), model.SettingTaxRate, "0.10"))

	settings, err := suite.settingService.GetAllSettings(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), settings, 1)
	require.Equal(suite.T(), "0.10", settings[0].Value)
}

func (suite *SettingServiceTestSuite) TestUpsertSetting_InvalidTaxRate() {
	err := suite.settingService.UpsertSetting(context.Background(), model.SettingTaxRate, "not-a-number")
	require.Error(suite.T(), err)

	err = suite.settingService.UpsertSetting(context.Background(), "", "value")
	require.Error(suite.T(), err)
}

func TestSettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingServiceTestSuite))
}
