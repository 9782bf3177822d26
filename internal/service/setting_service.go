package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/shopspring/decimal"
)

type ISettingService interface {
	TaxRate(ctx context.Context) (decimal.Decimal, error)
	GetAllSettings(ctx context.Context) ([]model.Setting, error)
	UpsertSetting(ctx context.Context, key, value string) error
}

type SettingService struct {
	settingRepo db.ISettingRepository
}

func NewSettingService(settingRepo db.ISettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// TaxRate 結帳用稅率，例如0.05
// 未設定視為免稅
func (s *SettingService) TaxRate(ctx context.Context) (decimal.Decimal, error) {
	setting, err := s.settingRepo.GetSetting(ctx, model.SettingTaxRate)
	if errors.Is(err, db.ErrSettingNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, apperr.Wrap(apperr.InternalCode, "tax_rate setting is not a valid decimal", err)
	}
	return rate, nil
}

func (s *SettingService) GetAllSettings(ctx context.Context) ([]model.Setting, error) {
	return s.settingRepo.GetAllSettings(ctx)
}

func (s *SettingService) UpsertSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return apperr.New(apperr.ValidationCode, "setting key is required")
	}
	if key == model.SettingTaxRate {
		if _, err := decimal.NewFromString(value); err != nil {
			return apperr.New(apperr.ValidationCode, "tax_rate must be a decimal")
		}
	}
	return s.settingRepo.UpsertSetting(ctx, &model.Setting{Key: key, Value: value})
}

var _ ISettingService = (*SettingService)(nil)
