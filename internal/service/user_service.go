package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var ErrUserNotFound = apperr.New(apperr.NotFoundCode, "user not found")

type IUserService interface {
	GetProfile(ctx context.Context, auth model.AuthContext) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
}

type UserService struct {
	userRepo db.IUserRepository
}

func NewUserService(userRepo db.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, auth model.AuthContext) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, auth.UserID)
	if errors.Is(err, db.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load user", err)
	}
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

var _ IUserService = (*UserService)(nil)
