package test

import (
	"context"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	pkgAuth "github.com/ovenlight/bakeshop/internal/pkg/auth"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

// AuthFacadeStub simulates session facade interactions.
type AuthFacadeStub struct {
	SignupFn     func(context.Context, string, string, string) (*model.User, string, error)
	LoginFn      func(context.Context, string, string) (*model.User, string, error)
	AdminLoginFn func(context.Context, string, string, string, string) (*model.User, string, error)
	ParseFn      func(string) (pkgAuth.Identity, error)
	UserByIDFn   func(context.Context, int64) (*model.User, error)
}

// Signup returns a default customer for successful registration scenarios.
func (s AuthFacadeStub) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleCustomer, IsActive: true}, "token", nil
}

// Login returns a default customer for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer, IsActive: true}, "token", nil
}

// AdminLogin returns a default admin for successful back-office logins.
func (s AuthFacadeStub) AdminLogin(ctx context.Context, username, email, password, securityCode string) (*model.User, string, error) {
	if s.AdminLoginFn != nil {
		return s.AdminLoginFn(ctx, username, email, password, securityCode)
	}
	return &model.User{ID: 1, Name: username, Email: email, Role: model.RoleAdmin, IsActive: true}, "token", nil
}

// ParseToken returns the stored identity for authenticated requests.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: 1, Role: "customer"}, nil
}

// UserByID resolves the account behind an identity.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleCustomer, IsActive: true}, nil
}

// CatalogFacadeStub serves predefined catalog data.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context, string) ([]model.Product, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
}

// Products returns configured catalog entries.
func (s CatalogFacadeStub) Products(ctx context.Context, category string) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, category)
	}
	return []model.Product{{ID: 1, Name: "Sourdough Loaf", InStock: true}}, nil
}

// Product returns one configured catalog entry.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Sourdough Loaf", InStock: true}, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	AddFn    func(context.Context, int64, int64, int64) error
	CartFn   func(context.Context, int64) ([]model.CartView, decimal.Decimal, error)
	UpdateFn func(context.Context, int64, int64, int64) error
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error
}

// AddToCart delegates to the provided function or succeeds.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID, quantity int64) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return nil
}

// Cart returns configured cart contents.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartView, decimal.Decimal, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return nil, decimal.Zero, nil
}

// UpdateCartLine delegates to the provided function or succeeds.
func (s CartFacadeStub) UpdateCartLine(ctx context.Context, userID, lineID, quantity int64) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, lineID, quantity)
	}
	return nil
}

// RemoveCartLine delegates to the provided function or succeeds.
func (s CartFacadeStub) RemoveCartLine(ctx context.Context, userID, lineID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	return nil
}

// ClearCart delegates to the provided function or succeeds.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for checkout endpoints.
type OrderFacadeStub struct {
	CheckoutFn func(context.Context, int64) (*model.Order, error)
	OrdersFn   func(context.Context, int64) ([]model.Order, error)
	OrderFn    func(context.Context, int64, int64) (*model.Order, []model.OrderItem, error)
}

// Checkout returns a default pending order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined order history.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// Order returns one predefined order with items.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID}, nil, nil
}

// ContactFacadeStub records contact form submissions.
type ContactFacadeStub struct {
	SubmitFn func(context.Context, string, string, string, string) (*model.ContactMessage, error)
}

// SubmitContactMessage delegates to the provided function or succeeds.
func (s ContactFacadeStub) SubmitContactMessage(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, name, email, subject, message)
	}
	return &model.ContactMessage{ID: 1, Name: name, Email: email, Subject: subject, Message: message, Status: model.MessageStatusUnread}, nil
}

// AdminFacadeStub provides controllable behaviour for back-office endpoints.
type AdminFacadeStub struct {
	ProductsFn         func(context.Context) ([]model.Product, error)
	ArchivedProductsFn func(context.Context) ([]model.Product, error)
	ProductFn          func(context.Context, int64) (*model.Product, error)
	CreateProductFn    func(context.Context, usecase.ProductInput) (int64, error)
	UpdateProductFn    func(context.Context, int64, usecase.ProductInput) error
	ArchiveProductFn   func(context.Context, int64) error
	RestoreProductFn   func(context.Context, int64) error

	OrdersFn            func(context.Context) ([]model.Order, error)
	OrderFn             func(context.Context, int64) (*model.Order, []model.OrderItem, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) error
	DeleteOrderFn       func(context.Context, int64) error

	UsersFn      func(context.Context) ([]model.User, error)
	UserFn       func(context.Context, int64) (*model.User, error)
	UpdateUserFn func(context.Context, int64, string, string, model.Role) error
	DeleteUserFn func(context.Context, int64, int64) error

	MessagesFn            func(context.Context) ([]model.ContactMessage, error)
	UpdateMessageStatusFn func(context.Context, int64, model.MessageStatus) error
	DeleteMessageFn       func(context.Context, int64) error

	StatsFn func(context.Context) (*model.DashboardStats, error)
}

func (s AdminFacadeStub) AdminProducts(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s AdminFacadeStub) AdminArchivedProducts(ctx context.Context) ([]model.Product, error) {
	if s.ArchivedProductsFn != nil {
		return s.ArchivedProductsFn(ctx)
	}
	return nil, nil
}

func (s AdminFacadeStub) AdminProduct(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

func (s AdminFacadeStub) AdminCreateProduct(ctx context.Context, in usecase.ProductInput) (int64, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in)
	}
	return 1, nil
}

func (s AdminFacadeStub) AdminUpdateProduct(ctx context.Context, id int64, in usecase.ProductInput) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, in)
	}
	return nil
}

func (s AdminFacadeStub) AdminArchiveProduct(ctx context.Context, id int64) error {
	if s.ArchiveProductFn != nil {
		return s.ArchiveProductFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) AdminRestoreProduct(ctx context.Context, id int64) error {
	if s.RestoreProductFn != nil {
		return s.RestoreProductFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) AdminOrders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

func (s AdminFacadeStub) AdminOrder(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id}, nil, nil
}

func (s AdminFacadeStub) AdminUpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	return nil
}

func (s AdminFacadeStub) AdminDeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) AdminUsers(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

func (s AdminFacadeStub) AdminUser(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id}, nil
}

func (s AdminFacadeStub) AdminUpdateUser(ctx context.Context, id int64, name, email string, role model.Role) error {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, name, email, role)
	}
	return nil
}

func (s AdminFacadeStub) AdminDeleteUser(ctx context.Context, actorID, targetID int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, actorID, targetID)
	}
	return nil
}

func (s AdminFacadeStub) AdminMessages(ctx context.Context) ([]model.ContactMessage, error) {
	if s.MessagesFn != nil {
		return s.MessagesFn(ctx)
	}
	return nil, nil
}

func (s AdminFacadeStub) AdminUpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	if s.UpdateMessageStatusFn != nil {
		return s.UpdateMessageStatusFn(ctx, id, status)
	}
	return nil
}

func (s AdminFacadeStub) AdminDeleteMessage(ctx context.Context, id int64) error {
	if s.DeleteMessageFn != nil {
		return s.DeleteMessageFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) AdminStats(ctx context.Context) (*model.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.DashboardStats{}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	ContactFacadeStub
	AdminFacadeStub
}

// SweeperFacadeStub mimics sweeper interactions with the storefront facade.
type SweeperFacadeStub struct {
	SweepFn func(context.Context) (int64, error)
	Calls   int32
}

// SweepArchivedCartLines counts invocations and delegates to the override.
func (s *SweeperFacadeStub) SweepArchivedCartLines(ctx context.Context) (int64, error) {
	atomic.AddInt32(&s.Calls, 1)
	if s.SweepFn != nil {
		return s.SweepFn(ctx)
	}
	return 0, nil
}

// SweepCalls reports how many times the sweeper ran.
func (s *SweeperFacadeStub) SweepCalls() int32 {
	return atomic.LoadInt32(&s.Calls)
}
