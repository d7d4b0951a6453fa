package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	pkgAuth "github.com/ovenlight/bakeshop/internal/pkg/auth"
	testhelpers "github.com/ovenlight/bakeshop/internal/test"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(id pkgAuth.Identity) (string, error) {
			return fmt.Sprintf("token-%d-%s", id.UserID, id.Role), nil
		},
		ParseFn: func(token string) (pkgAuth.Identity, error) {
			var id int64
			var role string
			if _, err := fmt.Sscanf(token, "token-%d-%s", &id, &role); err != nil {
				return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
			}
			return pkgAuth.Identity{UserID: id, Role: role}, nil
		},
	}
}

func TestAuthUseCaseSignupSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Signup(ctx, "Alice", "alice@example.com", "password")
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleCustomer {
		t.Fatalf("expected customer role, got %q", user.Role)
	}
	if token != "token-1-customer" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseSignupValidation(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		message  string
	}{
		{name: "missing name", userName: "", email: "a@b.com", password: "123456", message: "Please fill in all fields"},
		{name: "missing email", userName: "Al", email: "", password: "123456", message: "Please fill in all fields"},
		{name: "missing password", userName: "Al", email: "a@b.com", password: "", message: "Please fill in all fields"},
		{name: "bad email", userName: "Al", email: "nope", password: "123456", message: "Please enter a valid email address"},
		{name: "email without dot", userName: "Al", email: "a@localhost", password: "123456", message: "Please enter a valid email address"},
		{name: "short password", userName: "Al", email: "a@b.com", password: "12345", message: "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.Signup(context.Background(), tt.userName, tt.email, tt.password)
			if !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestAuthUseCaseSignupDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Signup(ctx, "Bob", "bob@example.com", "secret123"); err != nil {
		t.Fatalf("unexpected error on first signup: %v", err)
	}
	if _, _, err := uc.Signup(ctx, "Bobby", "bob@example.com", "secret123"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseLogin(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Signup(ctx, "Carol", "carol@example.com", "123456"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, _, err := uc.Login(ctx, "carol@example.com", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Login(ctx, "carol@example.com", "123456")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token != "token-1-customer" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseLoginUnknownEmail(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Login(context.Background(), "absent@example.com", "pass"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseLoginDisabledAccount(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Add(&model.User{ID: 5, Name: "Dan", Email: "dan@example.com", PasswordHash: "hash:pass", Role: model.RoleCustomer, IsActive: false})
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Login(context.Background(), "dan@example.com", "pass"); !errors.Is(err, domainErrors.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthUseCaseAdminLogin(t *testing.T) {
	code := "ABC123"
	repo := testhelpers.NewUserRepositoryStub()
	repo.Add(&model.User{ID: 9, Name: "root", Email: "admin@example.com", PasswordHash: "hash:pass", Role: model.RoleAdmin, SecurityCode: &code, IsActive: true})
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.AdminLogin(ctx, "root", "admin@example.com", "pass", "ABC123")
	if err != nil {
		t.Fatalf("admin login returned error: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
	if token != "token-9-admin" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAdminLoginFailures(t *testing.T) {
	code := "ABC123"
	newRepo := func() *testhelpers.UserRepositoryStub {
		repo := testhelpers.NewUserRepositoryStub()
		repo.Add(&model.User{ID: 9, Name: "root", Email: "admin@example.com", PasswordHash: "hash:pass", Role: model.RoleAdmin, SecurityCode: &code, IsActive: true})
		return repo
	}

	tests := []struct {
		name     string
		username string
		email    string
		password string
		secCode  string
		want     error
	}{
		{name: "missing fields", username: "", email: "admin@example.com", password: "pass", secCode: "ABC123", want: domainErrors.ErrInvalidInput},
		{name: "bad email", username: "root", email: "nope", password: "pass", secCode: "ABC123", want: domainErrors.ErrInvalidInput},
		{name: "short code", username: "root", email: "admin@example.com", password: "pass", secCode: "ABC", want: domainErrors.ErrInvalidInput},
		{name: "wrong username", username: "other", email: "admin@example.com", password: "pass", secCode: "ABC123", want: domainErrors.ErrInvalidCredentials},
		{name: "wrong password", username: "root", email: "admin@example.com", password: "bad", secCode: "ABC123", want: domainErrors.ErrInvalidCredentials},
		{name: "wrong code", username: "root", email: "admin@example.com", password: "pass", secCode: "XYZ999", want: domainErrors.ErrInvalidSecurityCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewAuthUseCase(newRepo(), testhelpers.HasherStub{}, newStrategyStub())
			_, _, err := uc.AdminLogin(context.Background(), tt.username, tt.email, tt.password, tt.secCode)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAuthUseCaseAdminLoginCustomerRejected(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Add(&model.User{ID: 2, Name: "user", Email: "user@example.com", PasswordHash: "hash:pass", Role: model.RoleCustomer, IsActive: true})
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.AdminLogin(context.Background(), "user", "user@example.com", "pass", "ABC123"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for customer account, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	identity, err := uc.ParseToken("token-42-admin")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if identity.UserID != 42 || identity.Role != "admin" {
		t.Fatalf("unexpected identity %+v", identity)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseSignupHasherError(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())
	if _, _, err := uc.Signup(context.Background(), "Eve", "eve@example.com", "password"); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestAuthUseCaseSignupRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = fmt.Errorf("db down")
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Signup(context.Background(), "Eve", "eve@example.com", "password"); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	user, _, err := uc.Signup(context.Background(), "Dave", "dave@example.com", "password")
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	fetched, err := uc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if fetched.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, fetched.Email)
	}
}

func TestAuthUseCaseSignupTrimsFields(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	user, _, err := uc.Signup(context.Background(), "  Frank  ", "  frank@example.com  ", "password")
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if user.Name != "Frank" || user.Email != "frank@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", user)
	}
}
