package usecase

import (
	"context"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/firebase"
	"estatehub/pkg/errors"
	"estatehub/pkg/logger"
	"estatehub/pkg/utils"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.AuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient *firebase.AuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

// CreateAdmin provisions an auth account and the matching user document for
// a CMS editor.
func (uc *UserUseCase) CreateAdmin(ctx context.Context, email, password, name string) (*entity.User, error) {
	if !utils.IsValidEmail(email) {
		return nil, errors.BadRequest("A valid email address is required", nil)
	}
	if len(password) < 8 {
		return nil, errors.BadRequest("Password must be at least 8 characters", nil)
	}

	uid, err := uc.authClient.CreateAdminUser(ctx, email, password, name)
	if err != nil {
		return nil, errors.Internal("Failed to create auth account", err)
	}

	user := &entity.User{
		ID:    uid,
		Email: email,
		Name:  name,
		Role:  "admin",
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll the auth account back so the email is not orphaned.
		if delErr := uc.authClient.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to roll back auth account %s: %v", uid, delErr)
		}
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}
