package dto

import (
	"time"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// ContactRequest describes the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageResponse is a contact message as seen by the back office.
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MessagesFromModel converts a slice of domain contact messages.
func MessagesFromModel(messages []model.ContactMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			Status:    string(m.Status),
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

// UpdateMessageStatusRequest describes the triage status change payload.
type UpdateMessageStatusRequest struct {
	Status string `json:"status"`
}

// MessagesResponse lists contact messages.
type MessagesResponse struct {
	Response
	Messages []MessageResponse `json:"messages"`
}
