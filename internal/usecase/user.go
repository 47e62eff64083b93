package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
	"newsdesk/internal/security"
)

// UserUsecase defines the interface for user management use cases.
type UserUsecase interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, q query.Query) ([]*model.User, int64, error)
}

// CreateUserParams defines the parameters for direct (admin) user creation.
type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Phone    string
	Role     string
}

var ErrUserNotFound = errors.New("user not found")

type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of UserUsecase.
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) CreateUser(ctx context.Context, params CreateUserParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	role := params.Role
	if role == "" {
		role = model.RoleUser
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Phone:        params.Phone,
		Role:         role,
		IsVerified:   role == model.RoleAdmin,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	if _, err := u.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}

func (u *userUsecase) ListUsers(ctx context.Context, q query.Query) ([]*model.User, int64, error) {
	return u.userRepo.ListUsers(ctx, q)
}
