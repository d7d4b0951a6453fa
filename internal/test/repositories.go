package test

import (
	"context"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error

	UpdateFn func(context.Context, int64, string, string, model.Role) error
	DeleteFn func(context.Context, int64) error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Add seeds an account, keyed by email.
func (s *UserRepositoryStub) Add(user *model.User) {
	s.Users[user.Email] = user
	s.ByID[user.ID] = user
	if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
}

// Create registers an account unless the email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, Role: model.RoleCustomer, IsActive: true}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches an account by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches an account by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetAdmin matches an admin account by name and email.
func (s *UserRepositoryStub) GetAdmin(ctx context.Context, name, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[email]
	if !ok || user.Name != name || user.Role != model.RoleAdmin {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// List returns every stored account.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, user := range s.ByID {
		out = append(out, *user)
	}
	return out, nil
}

// Update applies the override or edits the stored account.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, name, email string, role model.Role) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, email, role)
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Users, user.Email)
	user.Name, user.Email, user.Role = name, email, role
	s.Users[email] = user
	return nil
}

// Delete applies the override or removes the stored account.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Users, user.Email)
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	ListPublicFn   func(context.Context, string) ([]model.Product, error)
	GetPublicFn    func(context.Context, int64) (*model.Product, error)
	ListAdminFn    func(context.Context) ([]model.Product, error)
	ListArchivedFn func(context.Context) ([]model.Product, error)
	GetFn          func(context.Context, int64) (*model.Product, error)
	CreateFn       func(context.Context, *model.Product) (int64, error)
	UpdateFn       func(context.Context, *model.Product) error
	ArchiveFn      func(context.Context, int64) error
	RestoreFn      func(context.Context, int64) error

	Products []model.Product
}

func (s *ProductRepositoryStub) ListPublic(ctx context.Context, category string) ([]model.Product, error) {
	if s.ListPublicFn != nil {
		return s.ListPublicFn(ctx, category)
	}
	return s.Products, nil
}

func (s *ProductRepositoryStub) GetPublic(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetPublicFn != nil {
		return s.GetPublicFn(ctx, id)
	}
	for i := range s.Products {
		if s.Products[i].ID == id && !s.Products[i].Archived {
			product := s.Products[i]
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) ListAdmin(ctx context.Context) ([]model.Product, error) {
	if s.ListAdminFn != nil {
		return s.ListAdminFn(ctx)
	}
	return s.Products, nil
}

func (s *ProductRepositoryStub) ListArchived(ctx context.Context) ([]model.Product, error) {
	if s.ListArchivedFn != nil {
		return s.ListArchivedFn(ctx)
	}
	return nil, nil
}

func (s *ProductRepositoryStub) Get(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			product := s.Products[i]
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	id := int64(len(s.Products) + 1)
	stored := *p
	stored.ID = id
	s.Products = append(s.Products, stored)
	return id, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	for i := range s.Products {
		if s.Products[i].ID == p.ID {
			s.Products[i] = *p
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Archive(ctx context.Context, id int64) error {
	if s.ArchiveFn != nil {
		return s.ArchiveFn(ctx, id)
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products[i].Archived = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Restore(ctx context.Context, id int64) error {
	if s.RestoreFn != nil {
		return s.RestoreFn(ctx, id)
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products[i].Archived = false
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CartRepositoryStub lets tests control cart persistence.
type CartRepositoryStub struct {
	ListFn           func(context.Context, int64) ([]model.CartView, error)
	GetLineFn        func(context.Context, int64, int64) (*model.CartLine, error)
	InsertFn         func(context.Context, int64, int64, int64) error
	AddQuantityFn    func(context.Context, int64, int64) error
	UpdateQuantityFn func(context.Context, int64, int64, int64) error
	RemoveFn         func(context.Context, int64, int64) error
	ClearFn          func(context.Context, int64) error
	DeleteArchivedFn func(context.Context) (int64, error)

	Views   []model.CartView
	Inserts []model.CartLine
}

func (s *CartRepositoryStub) ListWithProducts(ctx context.Context, userID int64) ([]model.CartView, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Views, nil
}

func (s *CartRepositoryStub) GetLineByProduct(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	if s.GetLineFn != nil {
		return s.GetLineFn(ctx, userID, productID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CartRepositoryStub) Insert(ctx context.Context, userID, productID, quantity int64) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, userID, productID, quantity)
	}
	s.Inserts = append(s.Inserts, model.CartLine{UserID: userID, ProductID: productID, Quantity: quantity})
	return nil
}

func (s *CartRepositoryStub) AddQuantity(ctx context.Context, lineID, delta int64) error {
	if s.AddQuantityFn != nil {
		return s.AddQuantityFn(ctx, lineID, delta)
	}
	return nil
}

func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, userID, lineID, quantity int64) error {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, userID, lineID, quantity)
	}
	return nil
}

func (s *CartRepositoryStub) Remove(ctx context.Context, userID, lineID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	return nil
}

func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

func (s *CartRepositoryStub) DeleteArchived(ctx context.Context) (int64, error) {
	if s.DeleteArchivedFn != nil {
		return s.DeleteArchivedFn(ctx)
	}
	return 0, nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CheckoutFn     func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	GetByUserFn    func(context.Context, int64, int64) (*model.Order, []model.OrderItem, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	GetFn          func(context.Context, int64) (*model.Order, []model.OrderItem, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error
	DeleteFn       func(context.Context, int64) error

	Orders []model.Order
}

func (s *OrderRepositoryStub) Checkout(ctx context.Context, userID int64) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) GetByUser(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderItem, error) {
	if s.GetByUserFn != nil {
		return s.GetByUserFn(ctx, userID, orderID)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID && s.Orders[i].UserID == userID {
			order := s.Orders[i]
			return &order, nil, nil
		}
	}
	return nil, nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) Get(ctx context.Context, orderID int64) (*model.Order, []model.OrderItem, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			order := s.Orders[i]
			return &order, nil, nil
		}
	}
	return nil, nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	return nil
}

// MessageRepositoryStub stores contact messages for tests.
type MessageRepositoryStub struct {
	CreateFn       func(context.Context, string, string, string, string) (*model.ContactMessage, error)
	ListFn         func(context.Context) ([]model.ContactMessage, error)
	UpdateStatusFn func(context.Context, int64, model.MessageStatus) error
	DeleteFn       func(context.Context, int64) error

	Messages []model.ContactMessage
}

func (s *MessageRepositoryStub) Create(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, subject, message)
	}
	stored := model.ContactMessage{
		ID:      int64(len(s.Messages) + 1),
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Status:  model.MessageStatusUnread,
	}
	s.Messages = append(s.Messages, stored)
	return &stored, nil
}

func (s *MessageRepositoryStub) List(ctx context.Context) ([]model.ContactMessage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Messages, nil
}

func (s *MessageRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *MessageRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StatsRepositoryStub serves predefined dashboard counters.
type StatsRepositoryStub struct {
	DashboardFn func(context.Context) (*model.DashboardStats, error)
	Stats       *model.DashboardStats
}

func (s *StatsRepositoryStub) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	if s.Stats == nil {
		return &model.DashboardStats{}, nil
	}
	return s.Stats, nil
}
