package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/domain/repository"
	pkgAuth "github.com/ovenlight/bakeshop/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles account lifecycle and session token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Signup creates a new customer account and returns a session token.
func (u *AuthUseCase) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", domainErrors.Validation("Please fill in all fields")
	}
	if !ValidEmail(email) {
		return nil, "", domainErrors.Validation("Please enter a valid email address")
	}
	if len(password) < minPasswordLength {
		return nil, "", domainErrors.Validation("Password must be at least 6 characters")
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Login validates customer credentials and returns a session token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !usr.IsActive {
		return nil, "", domainErrors.ErrAccountDisabled
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// AdminLogin validates the four-factor admin credentials (username, email,
// password and the six character security code) and returns a session token.
func (u *AuthUseCase) AdminLogin(ctx context.Context, username, email, password, securityCode string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	securityCode = strings.TrimSpace(securityCode)
	if username == "" || email == "" || password == "" || securityCode == "" {
		return nil, "", domainErrors.Validation("All fields are required")
	}
	if !ValidEmail(email) {
		return nil, "", domainErrors.Validation("Invalid email address")
	}
	if len(securityCode) != 6 {
		return nil, "", domainErrors.Validation("Security code must be 6 characters")
	}

	admin, err := u.users.GetAdmin(ctx, username, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !admin.IsActive {
		return nil, "", domainErrors.ErrAccountDisabled
	}

	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if admin.SecurityCode == nil || *admin.SecurityCode != securityCode {
		return nil, "", domainErrors.ErrInvalidSecurityCode
	}

	token, err := u.issueToken(admin)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// ParseToken extracts the identity encoded in a session token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) issueToken(usr *model.User) (string, error) {
	return u.tokens.IssueToken(pkgAuth.Identity{UserID: usr.ID, Role: string(usr.Role)})
}
