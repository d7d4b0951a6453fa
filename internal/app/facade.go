package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	pkgAuth "github.com/ovenlight/bakeshop/internal/pkg/auth"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

// StorefrontFacade aggregates the storefront use cases behind one surface for
// handlers, middleware and the background sweeper.
type StorefrontFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	cart    *usecase.CartUseCase
	orders  *usecase.OrderUseCase
	contact *usecase.ContactUseCase
	admin   *usecase.AdminUseCase
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	contact *usecase.ContactUseCase,
	admin *usecase.AdminUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, catalog: catalog, cart: cart, orders: orders, contact: contact, admin: admin}
}

// --- Session ---

func (f *StorefrontFacade) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Signup(ctx, name, email, password)
}

func (f *StorefrontFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *StorefrontFacade) AdminLogin(ctx context.Context, username, email, password, securityCode string) (*model.User, string, error) {
	return f.auth.AdminLogin(ctx, username, email, password, securityCode)
}

func (f *StorefrontFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

// --- Catalog ---

func (f *StorefrontFacade) Products(ctx context.Context, category string) ([]model.Product, error) {
	return f.catalog.List(ctx, category)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

// --- Cart ---

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID, productID, quantity int64) error {
	return f.cart.Add(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) ([]model.CartView, decimal.Decimal, error) {
	return f.cart.Get(ctx, userID)
}

func (f *StorefrontFacade) UpdateCartLine(ctx context.Context, userID, lineID, quantity int64) error {
	return f.cart.UpdateLine(ctx, userID, lineID, quantity)
}

func (f *StorefrontFacade) RemoveCartLine(ctx context.Context, userID, lineID int64) error {
	return f.cart.RemoveLine(ctx, userID, lineID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StorefrontFacade) SweepArchivedCartLines(ctx context.Context) (int64, error) {
	return f.cart.SweepArchived(ctx)
}

// --- Orders ---

func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	return f.orders.Checkout(ctx, userID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error) {
	return f.orders.GetByUser(ctx, userID, orderID)
}

// --- Contact ---

func (f *StorefrontFacade) SubmitContactMessage(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	return f.contact.Submit(ctx, name, email, subject, message)
}

// --- Admin ---

func (f *StorefrontFacade) AdminProducts(ctx context.Context) ([]model.Product, error) {
	return f.admin.ListProducts(ctx)
}

func (f *StorefrontFacade) AdminArchivedProducts(ctx context.Context) ([]model.Product, error) {
	return f.admin.ListArchivedProducts(ctx)
}

func (f *StorefrontFacade) AdminProduct(ctx context.Context, id int64) (*model.Product, error) {
	return f.admin.GetProduct(ctx, id)
}

func (f *StorefrontFacade) AdminCreateProduct(ctx context.Context, in usecase.ProductInput) (int64, error) {
	return f.admin.CreateProduct(ctx, in)
}

func (f *StorefrontFacade) AdminUpdateProduct(ctx context.Context, id int64, in usecase.ProductInput) error {
	return f.admin.UpdateProduct(ctx, id, in)
}

func (f *StorefrontFacade) AdminArchiveProduct(ctx context.Context, id int64) error {
	return f.admin.ArchiveProduct(ctx, id)
}

func (f *StorefrontFacade) AdminRestoreProduct(ctx context.Context, id int64) error {
	return f.admin.RestoreProduct(ctx, id)
}

func (f *StorefrontFacade) AdminOrders(ctx context.Context) ([]model.Order, error) {
	return f.admin.ListOrders(ctx)
}

func (f *StorefrontFacade) AdminOrder(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error) {
	return f.admin.GetOrder(ctx, id)
}

func (f *StorefrontFacade) AdminUpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return f.admin.UpdateOrderStatus(ctx, id, status)
}

func (f *StorefrontFacade) AdminDeleteOrder(ctx context.Context, id int64) error {
	return f.admin.DeleteOrder(ctx, id)
}

func (f *StorefrontFacade) AdminUsers(ctx context.Context) ([]model.User, error) {
	return f.admin.ListUsers(ctx)
}

func (f *StorefrontFacade) AdminUser(ctx context.Context, id int64) (*model.User, error) {
	return f.admin.GetUser(ctx, id)
}

func (f *StorefrontFacade) AdminUpdateUser(ctx context.Context, id int64, name, email string, role model.Role) error {
	return f.admin.UpdateUser(ctx, id, name, email, role)
}

func (f *StorefrontFacade) AdminDeleteUser(ctx context.Context, actorID, targetID int64) error {
	return f.admin.DeleteUser(ctx, actorID, targetID)
}

func (f *StorefrontFacade) AdminMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return f.admin.ListMessages(ctx)
}

func (f *StorefrontFacade) AdminUpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	return f.admin.UpdateMessageStatus(ctx, id, status)
}

func (f *StorefrontFacade) AdminDeleteMessage(ctx context.Context, id int64) error {
	return f.admin.DeleteMessage(ctx, id)
}

func (f *StorefrontFacade) AdminStats(ctx context.Context) (*model.DashboardStats, error) {
	return f.admin.DashboardStats(ctx)
}
