package dto

import (
	"time"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// UserResponse is the public projection of an account: no password hash,
// no security code.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a domain user to its response shape.
func UserFromModel(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// UsersFromModel converts a slice of domain users.
func UsersFromModel(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *UserFromModel(&users[i]))
	}
	return out
}

// UpdateUserRequest describes the admin account edit payload.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UsersResponse lists accounts for the back office.
type UsersResponse struct {
	Response
	Users []UserResponse `json:"users"`
}

// SingleUserResponse wraps one account.
type SingleUserResponse struct {
	Response
	User *UserResponse `json:"user,omitempty"`
}
