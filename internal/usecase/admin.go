package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/domain/repository"
)

// ProductInput carries the admin-editable product fields.
type ProductInput struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	Category         string
	ImageURL         string
	HoverImageURL    string
	FeaturedImageURL string
	Badge            *string
	InStock          bool
	Quantity         *int64
}

func (in *ProductInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" || !in.Price.IsPositive() {
		return domainErrors.Validation("Invalid product data")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return domainErrors.Validation("Invalid product data")
	}
	return nil
}

func (in *ProductInput) toModel() *model.Product {
	return &model.Product{
		Name:             in.Name,
		Description:      strings.TrimSpace(in.Description),
		Price:            in.Price,
		Category:         in.Category,
		ImageURL:         strings.TrimSpace(in.ImageURL),
		HoverImageURL:    strings.TrimSpace(in.HoverImageURL),
		FeaturedImageURL: strings.TrimSpace(in.FeaturedImageURL),
		Badge:            in.Badge,
		InStock:          in.InStock,
		Quantity:         in.Quantity,
	}
}

// AdminUseCase implements the back-office: product, order, user and message
// management plus dashboard stats. Handlers gate it behind the admin role.
type AdminUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	messages repository.MessageRepository
	stats    repository.StatsRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	messages repository.MessageRepository,
	stats repository.StatsRepository,
) *AdminUseCase {
	return &AdminUseCase{products: products, orders: orders, users: users, messages: messages, stats: stats}
}

// --- Products ---

func (u *AdminUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.ListAdmin(ctx)
}

func (u *AdminUseCase) ListArchivedProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.ListArchived(ctx)
}

func (u *AdminUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.Get(ctx, id)
}

func (u *AdminUseCase) CreateProduct(ctx context.Context, in ProductInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	return u.products.Create(ctx, in.toModel())
}

func (u *AdminUseCase) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	p := in.toModel()
	p.ID = id
	return u.products.Update(ctx, p)
}

// ArchiveProduct soft-deletes: the product disappears from listings and new
// cart additions but stays referenced by historical orders.
func (u *AdminUseCase) ArchiveProduct(ctx context.Context, id int64) error {
	return u.products.Archive(ctx, id)
}

func (u *AdminUseCase) RestoreProduct(ctx context.Context, id int64) error {
	return u.products.Restore(ctx, id)
}

// --- Orders ---

func (u *AdminUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

func (u *AdminUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error) {
	return u.orders.Get(ctx, id)
}

func (u *AdminUseCase) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if !model.ValidOrderStatus(status) {
		return domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

func (u *AdminUseCase) DeleteOrder(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

// --- Users ---

func (u *AdminUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

func (u *AdminUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AdminUseCase) UpdateUser(ctx context.Context, id int64, name, email string, role model.Role) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || !ValidEmail(email) {
		return domainErrors.Validation("Invalid user data")
	}
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return domainErrors.ErrInvalidStatus
	}
	return u.users.Update(ctx, id, name, email, role)
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (u *AdminUseCase) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return domainErrors.ErrSelfDelete
	}
	return u.users.Delete(ctx, targetID)
}

// --- Contact messages ---

func (u *AdminUseCase) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return u.messages.List(ctx)
}

func (u *AdminUseCase) UpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	if !model.ValidMessageStatus(status) {
		return domainErrors.ErrInvalidStatus
	}
	return u.messages.UpdateStatus(ctx, id, status)
}

func (u *AdminUseCase) DeleteMessage(ctx context.Context, id int64) error {
	return u.messages.Delete(ctx, id)
}

// --- Dashboard ---

func (u *AdminUseCase) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	return u.stats.Dashboard(ctx)
}
