package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm"
)

// ErrReviewDuplicated 同一用戶重複評價同一商品
var ErrReviewDuplicated = errors.New("review already exists")

type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
	GetReviewsByProductID(ctx context.Context, productID uint) ([]model.Review, error)
	GetAllReviews(ctx context.Context) ([]model.Review, error)
	DeleteReview(ctx context.Context, reviewID uint) error
}

type ReviewRepo struct {
	db *DbDao
}

func NewReviewRepo(db *DbDao) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (s *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	err := s.db.WithContext(ctx).Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrReviewDuplicated
	}
	return err
}

func (s *ReviewRepo) GetReviewsByProductID(ctx context.Context, productID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepo) GetAllReviews(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepo) DeleteReview(ctx context.Context, reviewID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Review{}, reviewID).Error
}

var _ IReviewRepository = (*ReviewRepo)(nil)
