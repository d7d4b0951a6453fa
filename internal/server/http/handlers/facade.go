package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	pkgAuth "github.com/ovenlight/bakeshop/internal/pkg/auth"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

// AuthFacade describes session capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	AdminLogin(ctx context.Context, username, email, password, securityCode string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Identity, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade exposes the public catalog.
type CatalogFacade interface {
	Products(ctx context.Context, category string) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	AddToCart(ctx context.Context, userID, productID, quantity int64) error
	Cart(ctx context.Context, userID int64) ([]model.CartView, decimal.Decimal, error)
	UpdateCartLine(ctx context.Context, userID, lineID, quantity int64) error
	RemoveCartLine(ctx context.Context, userID, lineID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade encapsulates checkout and order history.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error)
}

// ContactFacade accepts public contact form submissions.
type ContactFacade interface {
	SubmitContactMessage(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error)
}

// AdminFacade aggregates the back-office operations.
type AdminFacade interface {
	AdminProducts(ctx context.Context) ([]model.Product, error)
	AdminArchivedProducts(ctx context.Context) ([]model.Product, error)
	AdminProduct(ctx context.Context, id int64) (*model.Product, error)
	AdminCreateProduct(ctx context.Context, in usecase.ProductInput) (int64, error)
	AdminUpdateProduct(ctx context.Context, id int64, in usecase.ProductInput) error
	AdminArchiveProduct(ctx context.Context, id int64) error
	AdminRestoreProduct(ctx context.Context, id int64) error

	AdminOrders(ctx context.Context) ([]model.Order, error)
	AdminOrder(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error)
	AdminUpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error
	AdminDeleteOrder(ctx context.Context, id int64) error

	AdminUsers(ctx context.Context) ([]model.User, error)
	AdminUser(ctx context.Context, id int64) (*model.User, error)
	AdminUpdateUser(ctx context.Context, id int64, name, email string, role model.Role) error
	AdminDeleteUser(ctx context.Context, actorID, targetID int64) error

	AdminMessages(ctx context.Context) ([]model.ContactMessage, error)
	AdminUpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error
	AdminDeleteMessage(ctx context.Context, id int64) error

	AdminStats(ctx context.Context) (*model.DashboardStats, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	ContactFacade
	AdminFacade
}
