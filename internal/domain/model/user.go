package model

import "time"

// Role distinguishes storefront customers from back-office admins.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered account. SecurityCode is set for admins only
// and compared verbatim during admin login.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	SecurityCode *string
	IsActive     bool
	CreatedAt    time.Time
}
