package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var (
	ErrReviewDuplicated = apperr.New(apperr.ConflictCode, "product already reviewed")
	ErrInvalidRating    = apperr.New(apperr.ValidationCode, "rating must be between 1 and 5")
)

type IReviewService interface {
	AddReview(ctx context.Context, auth model.AuthContext, productID uint, rating int, comment string) (*model.Review, error)
	GetProductReviews(ctx context.Context, productID uint) ([]model.Review, error)
	GetAllReviews(ctx context.Context) ([]model.Review, error)
	DeleteReview(ctx context.Context, reviewID uint) error
}

type ReviewService struct {
	reviewRepo  db.IReviewRepository
	productRepo db.IProductRepository
}

func NewReviewService(reviewRepo db.IReviewRepository, productRepo db.IProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// AddReview 一個用戶對一個商品只能評價一次，重複回Conflict
func (s *ReviewService) AddReview(ctx context.Context, auth model.AuthContext, productID uint, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load product", err)
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    auth.UserID,
		Rating:    rating,
		Comment:   comment,
	}
	err := s.reviewRepo.CreateReview(ctx, review)
	if errors.Is(err, db.ErrReviewDuplicated) {
		return nil, ErrReviewDuplicated
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to create review", err)
	}
	return review, nil
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID uint) ([]model.Review, error) {
	return s.reviewRepo.GetReviewsByProductID(ctx, productID)
}

func (s *ReviewService) GetAllReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.GetAllReviews(ctx)
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID uint) error {
	return s.reviewRepo.DeleteReview(ctx, reviewID)
}

var _ IReviewService = (*ReviewService)(nil)
