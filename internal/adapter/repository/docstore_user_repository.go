package repository

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	apperrors "estatehub/pkg/errors"
)

const usersCollection = "users"

type docstoreUserRepository struct {
	store docstore.Store
}

func NewDocstoreUserRepository(store docstore.Store) repository.UserRepository {
	return &docstoreUserRepository{store: store}
}

func (r *docstoreUserRepository) col() docstore.Collection {
	return r.store.Collection(usersCollection)
}

func (r *docstoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if err := r.col().Set(ctx, user.ID, encodeUser(user)); err != nil {
		return apperrors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *docstoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.col().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Unavailable("Failed to get user", err)
	}

	m := doc.Data()
	return &entity.User{
		ID:        doc.ID(),
		Email:     strField(m, "email"),
		Name:      strField(m, "name"),
		Role:      strField(m, "role"),
		CreatedAt: timeField(m, "createdAt"),
		UpdatedAt: timeField(m, "updatedAt"),
	}, nil
}

func (r *docstoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	if err := r.col().Set(ctx, user.ID, encodeUser(user)); err != nil {
		return apperrors.Internal("Failed to update user", err)
	}
	return nil
}

func encodeUser(u *entity.User) map[string]interface{} {
	return map[string]interface{}{
		"email":     u.Email,
		"name":      u.Name,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}
