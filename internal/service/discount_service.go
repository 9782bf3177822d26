package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var (
	// ErrDiscountInvalid 折扣碼不存在或已停用，對外一律404不區分
	ErrDiscountInvalid = apperr.New(apperr.NotFoundCode, "invalid discount code")
	// ErrDiscountExhausted 使用次數已用罄
	ErrDiscountExhausted = apperr.New(apperr.ValidationCode, "discount code usage limit reached")
	// ErrDiscountExpired 已過期
	ErrDiscountExpired = apperr.New(apperr.ValidationCode, "discount code expired")
)

type IDiscountService interface {
	Validate(ctx context.Context, code string) (*model.DiscountCode, error)
	CreateDiscountCode(ctx context.Context, code *model.DiscountCode) error
	GetAllDiscountCodes(ctx context.Context) ([]model.DiscountCode, error)
	UpdateDiscountCode(ctx context.Context, code *model.DiscountCode) error
	DeleteDiscountCode(ctx context.Context, discountID uint) error
}

type DiscountService struct {
	discountRepo db.IDiscountRepository
}

func NewDiscountService(discountRepo db.IDiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// Validate 折扣碼驗證，大小寫敏感
// 順序: 存在且啟用 -> 次數 -> 效期
// 只驗證不消耗，used_count在結帳交易內才遞增
// 錯誤:
//   - ErrDiscountInvalid: 不存在或已停用
//   - ErrDiscountExhausted: 次數用罄，與active無關
//   - ErrDiscountExpired: 已過期，與次數無關
func (s *DiscountService) Validate(ctx context.Context, code string) (*model.DiscountCode, error) {
	discount, err := s.discountRepo.GetByCode(ctx, code)
	if errors.Is(err, db.ErrDiscountNotFound) {
		return nil, ErrDiscountInvalid
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to query discount code", err)
	}

	if !discount.Active {
		return nil, ErrDiscountInvalid
	}
	if discount.IsExhausted() {
		return nil, ErrDiscountExhausted
	}
	if discount.IsExpired(time.Now()) {
		return nil, ErrDiscountExpired
	}

	return discount, nil
}

func (s *DiscountService) CreateDiscountCode(ctx context.Context, code *model.DiscountCode) error {
	if code.Code == "" {
		return apperr.New(apperr.ValidationCode, "code is required")
	}
	if code.DiscountPercentage.IsNegative() {
		return apperr.New(apperr.ValidationCode, "discount percentage must not be negative")
	}
	return s.discountRepo.CreateDiscountCode(ctx, code)
}

func (s *DiscountService) GetAllDiscountCodes(ctx context.Context) ([]model.DiscountCode, error) {
	return s.discountRepo.GetAllDiscountCodes(ctx)
}

func (s *DiscountService) UpdateDiscountCode(ctx context.Context, code *model.DiscountCode) error {
	return s.discountRepo.UpdateDiscountCode(ctx, code)
}

func (s *DiscountService) DeleteDiscountCode(ctx context.Context, discountID uint) error {
	return s.discountRepo.DeleteDiscountCode(ctx, discountID)
}

var _ IDiscountService = (*DiscountService)(nil)
