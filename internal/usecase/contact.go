package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/domain/repository"
)

// ContactUseCase accepts public contact form submissions.
type ContactUseCase struct {
	messages repository.MessageRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(messages repository.MessageRepository) *ContactUseCase {
	return &ContactUseCase{messages: messages}
}

// Submit validates and stores a contact message with status unread.
func (u *ContactUseCase) Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || subject == "" || message == "" {
		return nil, domainErrors.Validation("Please fill in all fields")
	}
	if !ValidEmail(email) {
		return nil, domainErrors.Validation("Invalid email format")
	}

	return u.messages.Create(ctx, name, email, subject, message)
}
