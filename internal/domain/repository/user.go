package repository

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetAdmin looks up an active-or-not admin account by name and email.
	GetAdmin(ctx context.Context, name, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, name, email string, role model.Role) error
	Delete(ctx context.Context, id int64) error
}
