package repository

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// MessageRepository describes persistence operations for contact messages.
type MessageRepository interface {
	Create(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) error
	Delete(ctx context.Context, id int64) error
}
