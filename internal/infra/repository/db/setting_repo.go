package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingNotFound 設定不存在
var ErrSettingNotFound = errors.New("setting not found")

type ISettingRepository interface {
	GetSetting(ctx context.Context, key string) (*model.Setting, error)
	GetAllSettings(ctx context.Context) ([]model.Setting, error)
	UpsertSetting(ctx context.Context, setting *model.Setting) error
}

type SettingRepo struct {
	db *DbDao
}

func NewSettingRepo(db *DbDao) *SettingRepo {
	return &SettingRepo{db: db}
}

func (s *SettingRepo) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *SettingRepo) GetAllSettings(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	err := s.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}

// UpsertSetting 存在即覆寫value
func (s *SettingRepo) UpsertSetting(ctx context.Context, setting *model.Setting) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(setting).Error
}

var _ ISettingRepository = (*SettingRepo)(nil)
