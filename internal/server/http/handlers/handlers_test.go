package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/server/http/dto"
	"github.com/ovenlight/bakeshop/internal/server/http/middleware"
	testhelpers "github.com/ovenlight/bakeshop/internal/test"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return performRouteRequest(t, method, path, path, handler, setup, body, headers)
}

func performRouteRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asCustomer(c *gin.Context) {
	c.Set(middleware.UserIDContextKey, int64(1))
	c.Set(middleware.UserRoleContextKey, string(model.RoleCustomer))
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var decoded dto.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return decoded
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCurrentRole(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentRole(c); got != "" {
		t.Fatalf("expected empty role when not set, got %q", got)
	}

	c.Set(middleware.UserRoleContextKey, "admin")
	if got := CurrentRole(c); got != "admin" {
		t.Fatalf("expected admin, got %q", got)
	}
}

func TestAuthHandlerSignup(t *testing.T) {
	signupPassword := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: signupPassword})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{SignupFn: func(ctx context.Context, name, email, password string) (*model.User, string, error) {
		if name != "Alice" || email != "alice@example.com" || password != signupPassword {
			t.Fatalf("unexpected credentials passed to facade: %q %q", name, email)
		}
		return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleCustomer, IsActive: true}, "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/signup", handler.Signup, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	var decoded dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.Success || decoded.User == nil || decoded.User.Email != "alice@example.com" {
		t.Fatalf("unexpected response %+v", decoded)
	}

	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "bakeshop_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected auth cookie named bakeshop_token")
	}
}

func TestAuthHandlerSignupFailures(t *testing.T) {
	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "validation", body: []byte(`{"name":"","email":"","password":""}`), facade: testhelpers.AuthFacadeStub{SignupFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.Validation("Please fill in all fields")
		}}, status: http.StatusOK, message: "Please fill in all fields"},
		{name: "duplicate", body: []byte(`{"name":"a","email":"a@b.com","password":"secret1"}`), facade: testhelpers.AuthFacadeStub{SignupFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusOK, message: "An account with this email already exists"},
		{name: "internal", body: []byte(`{"name":"a","email":"a@b.com","password":"secret1"}`), facade: testhelpers.AuthFacadeStub{SignupFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/signup", NewAuthHandler(tt.facade).Signup, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if tt.message != "" {
				decoded := decodeEnvelope(t, resp)
				if decoded.Success {
					t.Fatal("expected success=false")
				}
				if decoded.Message != tt.message {
					t.Fatalf("expected message %q, got %q", tt.message, decoded.Message)
				}
			}
		})
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}}
	body := []byte(`{"email":"a@b.com","password":"bad"}`)
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with failure envelope, got %d", resp.Code)
	}
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Invalid email or password" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAuthHandlerLoginDisabledAccount(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrAccountDisabled
	}}
	body := []byte(`{"email":"a@b.com","password":"pass"}`)
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Your account has been disabled" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAuthHandlerAdminLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AdminLoginRequest{Username: "root", Email: "admin@example.com", Password: "pass", SecurityCode: "ABC123"})
	resp := performRequest(t, http.MethodPost, "/admin/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).AdminLogin, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.Success || decoded.User == nil || decoded.User.Role != "admin" {
		t.Fatalf("unexpected response %+v", decoded)
	}
}

func TestAuthHandlerAdminLoginWrongCode(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{AdminLoginFn: func(context.Context, string, string, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidSecurityCode
	}}
	body := []byte(`{"username":"root","email":"admin@example.com","password":"pass","security_code":"XYZ999"}`)
	resp := performRequest(t, http.MethodPost, "/admin/login", NewAuthHandler(facade).AdminLogin, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Invalid security code" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/logout", NewAuthHandler(testhelpers.AuthFacadeStub{}).Logout, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cleared := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "bakeshop_token" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected auth cookie to be expired")
	}
}

func TestAuthHandlerSession(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/session", NewAuthHandler(testhelpers.AuthFacadeStub{}).Session, nil, nil, nil)
	var anonymous dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &anonymous); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if anonymous.LoggedIn || anonymous.User != nil {
		t.Fatalf("expected anonymous session, got %+v", anonymous)
	}

	resp = performRequest(t, http.MethodGet, "/session", NewAuthHandler(testhelpers.AuthFacadeStub{}).Session, asCustomer, nil, nil)
	var authed dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &authed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !authed.LoggedIn || authed.User == nil || authed.User.ID != 1 {
		t.Fatalf("expected logged-in session, got %+v", authed)
	}
}

func TestAuthHandlerSessionDisabledAccount(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{UserByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
		return &model.User{ID: id, IsActive: false}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/session", NewAuthHandler(facade).Session, asCustomer, nil, nil)
	var decoded dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.LoggedIn {
		t.Fatal("expected disabled account to read as logged out")
	}
}

func TestCatalogHandlerList(t *testing.T) {
	tracked := int64(7)
	products := []model.Product{
		{ID: 1, Name: "Sourdough", InStock: true, Quantity: &tracked},
		{ID: 2, Name: "Baguette", InStock: true},
	}
	var gotCategory string
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(ctx context.Context, category string) ([]model.Product, error) {
		gotCategory = category
		return products, nil
	}}
	resp := performRouteRequest(t, http.MethodGet, "/products", "/products?category=bread", NewCatalogHandler(facade).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotCategory != "bread" {
		t.Fatalf("expected category filter, got %q", gotCategory)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte(`"quantity"`)) {
		t.Fatalf("stock quantity leaked into public listing: %s", resp.Body.String())
	}

	var decoded dto.PublicProductsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(decoded.Products))
	}
	if !decoded.Products[0].InStock {
		t.Fatalf("expected in_stock flag preserved, got %+v", decoded.Products[0])
	}
}

func TestCatalogHandlerGet(t *testing.T) {
	tracked := int64(3)
	facade := testhelpers.CatalogFacadeStub{ProductFn: func(ctx context.Context, id int64) (*model.Product, error) {
		return &model.Product{ID: id, Name: "Sourdough", InStock: true, Quantity: &tracked}, nil
	}}
	resp := performRouteRequest(t, http.MethodGet, "/products/:id", "/products/1", NewCatalogHandler(facade).Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte(`"quantity"`)) {
		t.Fatalf("stock quantity leaked into public product: %s", resp.Body.String())
	}

	var decoded dto.SinglePublicProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Product == nil || decoded.Product.Name != "Sourdough" || !decoded.Product.InStock {
		t.Fatalf("unexpected product %+v", decoded.Product)
	}
}

func TestCatalogHandlerGetNotFound(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{ProductFn: func(context.Context, int64) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRouteRequest(t, http.MethodGet, "/products/:id", "/products/5", NewCatalogHandler(facade).Get, nil, nil, nil)
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Not found" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestCatalogHandlerGetInvalidID(t *testing.T) {
	resp := performRouteRequest(t, http.MethodGet, "/products/:id", "/products/abc", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Get, nil, nil, nil)
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Invalid id" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestCartHandlerAdd(t *testing.T) {
	var gotProduct, gotQuantity int64
	facade := testhelpers.CartFacadeStub{AddFn: func(ctx context.Context, userID, productID, quantity int64) error {
		if userID != 1 {
			t.Fatalf("expected user 1, got %d", userID)
		}
		gotProduct, gotQuantity = productID, quantity
		return nil
	}}
	body := []byte(`{"product_id":3,"quantity":2}`)
	resp := performRequest(t, http.MethodPost, "/cart", NewCartHandler(facade).Add, asCustomer, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotProduct != 3 || gotQuantity != 2 {
		t.Fatalf("unexpected add call product=%d quantity=%d", gotProduct, gotQuantity)
	}
}

func TestCartHandlerAddStockError(t *testing.T) {
	facade := testhelpers.CartFacadeStub{AddFn: func(context.Context, int64, int64, int64) error {
		return &domainErrors.StockError{Issues: []domainErrors.StockIssue{{ProductName: "Croissant", Requested: 5, Available: 2}}}
	}}
	body := []byte(`{"product_id":3,"quantity":5}`)
	resp := performRequest(t, http.MethodPost, "/cart", NewCartHandler(facade).Add, asCustomer, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with failure envelope, got %d", resp.Code)
	}
	decoded := decodeEnvelope(t, resp)
	if decoded.Success {
		t.Fatal("expected success=false")
	}
	if decoded.Message != `only 2 left of "Croissant" (requested 5)` {
		t.Fatalf("unexpected message %q", decoded.Message)
	}
}

func TestCartHandlerGet(t *testing.T) {
	facade := testhelpers.CartFacadeStub{CartFn: func(context.Context, int64) ([]model.CartView, decimal.Decimal, error) {
		views := []model.CartView{
			{LineID: 1, ProductID: 1, Name: "Sourdough", Price: decimal.RequireFromString("6.00"), Quantity: 2, InStock: true},
			{LineID: 2, ProductID: 4, Name: "Croissant", Price: decimal.RequireFromString("3.50"), Quantity: 1, InStock: true},
		}
		return views, decimal.RequireFromString("15.50"), nil
	}}
	resp := performRequest(t, http.MethodGet, "/cart", NewCartHandler(facade).Get, asCustomer, nil, nil)
	var decoded dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Items) != 2 || decoded.Count != 3 {
		t.Fatalf("unexpected cart %+v", decoded)
	}
	if !decoded.Total.Equal(decimal.RequireFromString("15.50")) {
		t.Fatalf("unexpected total %s", decoded.Total)
	}
	if !decoded.Items[0].Subtotal.Equal(decimal.RequireFromString("12.00")) {
		t.Fatalf("unexpected subtotal %s", decoded.Items[0].Subtotal)
	}
}

func TestCartHandlerUpdateAndRemove(t *testing.T) {
	updated := false
	removed := false
	facade := testhelpers.CartFacadeStub{
		UpdateFn: func(ctx context.Context, userID, lineID, quantity int64) error {
			if lineID != 9 || quantity != 4 {
				t.Fatalf("unexpected update line=%d quantity=%d", lineID, quantity)
			}
			updated = true
			return nil
		},
		RemoveFn: func(ctx context.Context, userID, lineID int64) error {
			removed = true
			return nil
		},
	}

	body := []byte(`{"quantity":4}`)
	resp := performRouteRequest(t, http.MethodPatch, "/cart/:id", "/cart/9", NewCartHandler(facade).Update, asCustomer, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK || !updated {
		t.Fatalf("expected update to run, status %d", resp.Code)
	}

	resp = performRouteRequest(t, http.MethodDelete, "/cart/:id", "/cart/9", NewCartHandler(facade).Remove, asCustomer, nil, nil)
	if resp.Code != http.StatusOK || !removed {
		t.Fatalf("expected remove to run, status %d", resp.Code)
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, userID int64) (*model.Order, error) {
		return &model.Order{ID: 12, UserID: userID, TotalAmount: decimal.RequireFromString("21.00"), Status: model.OrderStatusPending}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/checkout", NewOrderHandler(facade).Checkout, asCustomer, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.SingleOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.Success || decoded.Order == nil || decoded.Order.ID != 12 {
		t.Fatalf("unexpected response %+v", decoded)
	}
	if decoded.Order.Status != string(model.OrderStatusPending) {
		t.Fatalf("unexpected status %q", decoded.Order.Status)
	}
}

func TestOrderHandlerCheckoutEmptyCart(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrEmptyCart
	}}
	resp := performRequest(t, http.MethodPost, "/checkout", NewOrderHandler(facade).Checkout, asCustomer, nil, nil)
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Your cart is empty" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestOrderHandlerCheckoutStorageFault(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(context.Context, int64) (*model.Order, error) {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrCheckoutFailed, errors.New("tx aborted"))
	}}
	resp := performRequest(t, http.MethodPost, "/checkout", NewOrderHandler(facade).Checkout, asCustomer, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Checkout failed. Please try again." {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("tx aborted")) {
		t.Fatalf("storage fault leaked to the customer: %s", resp.Body.String())
	}
}

func TestOrderHandlerList(t *testing.T) {
	orders := []model.Order{{ID: 1}, {ID: 2}}
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return orders, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asCustomer, nil, nil)
	var decoded dto.OrdersResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Orders) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(decoded.Orders))
	}
}

func TestContactHandlerSubmit(t *testing.T) {
	body := []byte(`{"name":"Al","email":"al@example.com","subject":"Hi","message":"Great bread"}`)
	resp := performRequest(t, http.MethodPost, "/contact", NewContactHandler(testhelpers.ContactFacadeStub{}).Submit, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if !decoded.Success {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestContactHandlerSubmitValidation(t *testing.T) {
	facade := testhelpers.ContactFacadeStub{SubmitFn: func(context.Context, string, string, string, string) (*model.ContactMessage, error) {
		return nil, domainErrors.Validation("Please fill in all fields")
	}}
	body := []byte(`{"name":"","email":"","subject":"","message":""}`)
	resp := performRequest(t, http.MethodPost, "/contact", NewContactHandler(facade).Submit, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Please fill in all fields" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAdminProductHandlerCreate(t *testing.T) {
	body := []byte(`{"name":"Rye Loaf","price":"5.50","category":"bread","in_stock":true}`)
	resp := performRequest(t, http.MethodPost, "/products", NewAdminProductHandler(testhelpers.AdminFacadeStub{}).Create, nil, body, map[string]string{"Content-Type": "application/json"})
	var decoded dto.CreateProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.Success || decoded.ID != 1 {
		t.Fatalf("unexpected response %+v", decoded)
	}
}

func TestAdminProductHandlerCreateInvalid(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{CreateProductFn: func(ctx context.Context, in usecase.ProductInput) (int64, error) {
		return 0, domainErrors.Validation("Name, price and category are required")
	}}
	body := []byte(`{"name":"","price":"0","category":""}`)
	resp := performRequest(t, http.MethodPost, "/products", NewAdminProductHandler(facade).Create, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Name, price and category are required" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAdminProductHandlerUpdate(t *testing.T) {
	var gotID int64
	facade := testhelpers.AdminFacadeStub{UpdateProductFn: func(ctx context.Context, id int64, in usecase.ProductInput) error {
		gotID = id
		if in.Name != "Rye Loaf" {
			t.Fatalf("unexpected name %q", in.Name)
		}
		return nil
	}}
	body := []byte(`{"name":"Rye Loaf","price":"5.50","category":"bread"}`)
	resp := performRouteRequest(t, http.MethodPut, "/products/:id", "/products/7", NewAdminProductHandler(facade).Update, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if !decoded.Success || decoded.Message != "Product updated" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
	if gotID != 7 {
		t.Fatalf("expected id 7, got %d", gotID)
	}
}

func TestAdminProductHandlerArchiveAndRestore(t *testing.T) {
	archived := false
	restored := false
	facade := testhelpers.AdminFacadeStub{
		ArchiveProductFn: func(context.Context, int64) error {
			archived = true
			return nil
		},
		RestoreProductFn: func(context.Context, int64) error {
			restored = true
			return nil
		},
	}
	handler := NewAdminProductHandler(facade)

	resp := performRouteRequest(t, http.MethodDelete, "/products/:id", "/products/2", handler.Archive, nil, nil, nil)
	decoded := decodeEnvelope(t, resp)
	if !decoded.Success || decoded.Message != "Product archived" || !archived {
		t.Fatalf("unexpected archive result %+v", decoded)
	}

	resp = performRouteRequest(t, http.MethodPost, "/products/:id/restore", "/products/2/restore", handler.Restore, nil, nil, nil)
	decoded = decodeEnvelope(t, resp)
	if !decoded.Success || decoded.Message != "Product restored" || !restored {
		t.Fatalf("unexpected restore result %+v", decoded)
	}
}

func TestAdminOrderHandlerUpdateStatusInvalid(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{UpdateOrderStatusFn: func(context.Context, int64, model.OrderStatus) error {
		return domainErrors.ErrInvalidStatus
	}}
	body := []byte(`{"status":"shipped"}`)
	resp := performRouteRequest(t, http.MethodPatch, "/orders/:id/status", "/orders/1/status", NewAdminOrderHandler(facade).UpdateStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "Invalid status" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAdminUserHandlerDeleteSelf(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{DeleteUserFn: func(ctx context.Context, actorID, targetID int64) error {
		if actorID != 1 || targetID != 1 {
			t.Fatalf("unexpected delete call actor=%d target=%d", actorID, targetID)
		}
		return domainErrors.ErrSelfDelete
	}}
	resp := performRouteRequest(t, http.MethodDelete, "/users/:id", "/users/1", NewAdminUserHandler(facade).Delete, asCustomer, nil, nil)
	decoded := decodeEnvelope(t, resp)
	if decoded.Success || decoded.Message != "You cannot delete your own account" {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
}

func TestAdminStatsHandler(t *testing.T) {
	facade := testhelpers.AdminFacadeStub{StatsFn: func(context.Context) (*model.DashboardStats, error) {
		return &model.DashboardStats{Products: 4, Orders: 2, Revenue: decimal.RequireFromString("44.00")}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/stats", NewAdminStatsHandler(facade).Get, nil, nil, nil)
	var decoded dto.StatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Stats == nil || decoded.Stats.Products != 4 {
		t.Fatalf("unexpected stats %+v", decoded.Stats)
	}
	if !decoded.Stats.Revenue.Equal(decimal.RequireFromString("44.00")) {
		t.Fatalf("unexpected revenue %s", decoded.Stats.Revenue)
	}
}

func TestAdminMessageHandlerUpdateStatus(t *testing.T) {
	var gotStatus model.MessageStatus
	facade := testhelpers.AdminFacadeStub{UpdateMessageStatusFn: func(ctx context.Context, id int64, status model.MessageStatus) error {
		gotStatus = status
		return nil
	}}
	body := []byte(`{"status":"read"}`)
	resp := performRouteRequest(t, http.MethodPatch, "/messages/:id/status", "/messages/3/status", NewAdminMessageHandler(facade).UpdateStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotStatus != model.MessageStatusRead {
		t.Fatalf("unexpected status %q", gotStatus)
	}
}
