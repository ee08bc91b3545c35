package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"payfee/internal/middleware"
	"payfee/internal/models"
	"payfee/internal/services/auth"
	"payfee/internal/services/catalog"
	"payfee/internal/services/checkout"
	"payfee/internal/services/fee"
	"payfee/internal/services/settings"
	"payfee/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateCart(ctx context.Context) (*models.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCheckoutService) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCheckoutService) AddItem(ctx context.Context, id uuid.UUID, input checkout.AddItemInput) (*models.Cart, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCheckoutService) RemoveItem(ctx context.Context, id uuid.UUID, productID uint) (*models.Cart, error) {
	args := m.Called(ctx, id, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCheckoutService) Recalculate(ctx context.Context, id uuid.UUID, input checkout.RecalculateInput) (*models.CheckoutTotals, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutTotals), args.Error(1)
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, id uuid.UUID, input checkout.PlaceOrderInput) (*models.Order, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockCheckoutService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetPercentageRate(ctx context.Context) decimal.Decimal {
	return m.Called(ctx).Get(0).(decimal.Decimal)
}

func (m *MockSettingsService) GetEligiblePaymentMethods(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockSettingsService) Configuration(ctx context.Context) fee.Configuration {
	return m.Called(ctx).Get(0).(fee.Configuration)
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*settings.View, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.View), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, input settings.UpdateInput, actor string) (*settings.View, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.View), args.Error(1)
}

func (m *MockSettingsService) Gateways(ctx context.Context) ([]models.PaymentGateway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentGateway), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) IsExcludedFromFee(ctx context.Context, productID uint) bool {
	return m.Called(ctx, productID).Bool(0)
}

func (m *MockCatalogService) ExclusionFlags(ctx context.Context, ids []uint) (map[uint]bool, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uint]bool), args.Error(1)
}

func (m *MockCatalogService) SetExcluded(ctx context.Context, productID uint, excluded bool) (*models.Product, error) {
	args := m.Called(ctx, productID, excluded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.AdminClaims, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.AdminClaims), args.Error(2)
}

func (m *MockAuthService) ParseToken(token string) (*models.AdminClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminClaims), args.Error(1)
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

func TestCartHandler_Recalculate(t *testing.T) {
	cartID := uuid.New()

	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func(*MockCheckoutService)
		wantStatus int
		wantTotal  string
	}{
		{
			name: "returns totals with fee line",
			path: "/api/carts/" + cartID.String() + "/recalculate",
			body: `{"payment_method":"cod","page":"checkout"}`,
			setupMock: func(m *MockCheckoutService) {
				m.On("Recalculate", mock.Anything, cartID, checkout.RecalculateInput{PaymentMethod: "cod", Page: checkout.PageCheckout}).
					Return(&models.CheckoutTotals{
						CartID:   cartID,
						Subtotal: decimal.NewFromInt(100),
						Fees:     []models.FeeLine{{Label: fee.Label, Amount: decimal.NewFromInt(5), Taxable: true}},
						FeeTotal: decimal.NewFromInt(5),
						Total:    decimal.NewFromInt(105),
					}, nil)
			},
			wantStatus: fiber.StatusOK,
			wantTotal:  "105",
		},
		{
			name:       "invalid cart id",
			path:       "/api/carts/nope/recalculate",
			body:       `{}`,
			setupMock:  func(m *MockCheckoutService) {},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name: "closed cart",
			path: "/api/carts/" + cartID.String() + "/recalculate",
			body: `{"payment_method":"cod"}`,
			setupMock: func(m *MockCheckoutService) {
				m.On("Recalculate", mock.Anything, cartID, checkout.RecalculateInput{PaymentMethod: "cod"}).
					Return(nil, checkout.ErrCartClosed)
			},
			wantStatus: fiber.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCheckoutService)
			tt.setupMock(svc)
			h := NewCartHandler(svc)
			app := fiber.New()
			app.Post("/api/carts/:id/recalculate", h.Recalculate)

			status, body := doRequest(t, app, "POST", tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantTotal != "" {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, tt.wantTotal, data["total"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCartHandler_PlaceOrder(t *testing.T) {
	cartID := uuid.New()
	svc := new(MockCheckoutService)
	svc.On("PlaceOrder", mock.Anything, cartID, checkout.PlaceOrderInput{PaymentMethod: "paypal"}).
		Return(nil, checkout.ErrUnknownPaymentMethod)
	svc.On("PlaceOrder", mock.Anything, cartID, checkout.PlaceOrderInput{PaymentMethod: "cod"}).
		Return(&models.Order{CartID: cartID, PaymentMethod: "cod"}, nil)

	app := fiber.New()
	app.Post("/api/carts/:id/orders", NewCartHandler(svc).PlaceOrder)

	status, body := doRequest(t, app, "POST", "/api/carts/"+cartID.String()+"/orders", `{"payment_method":"paypal"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "UNKNOWN_PAYMENT_METHOD", body["code"])

	status, _ = doRequest(t, app, "POST", "/api/carts/"+cartID.String()+"/orders", `{"payment_method":"cod"}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	cartID := uuid.New()
	svc := new(MockCheckoutService)
	svc.On("RemoveItem", mock.Anything, cartID, uint(3)).Return(nil, checkout.ErrItemNotFound)

	app := fiber.New()
	app.Delete("/api/carts/:id/items/:productId", NewCartHandler(svc).RemoveItem)

	status, _ := doRequest(t, app, "DELETE", "/api/carts/"+cartID.String()+"/items/3", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, "DELETE", "/api/carts/"+cartID.String()+"/items/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func adminApp(authSvc *MockAuthService) *fiber.App {
	authSvc.On("ParseToken", "token").Return(&models.AdminClaims{
		Username:    "admin",
		Role:        models.RoleAdmin,
		Permissions: models.GetDefaultPermissions(models.RoleAdmin),
	}, nil)
	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(authSvc).Handler, middleware.AdminOnly)
	return app
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockSettingsService)
		wantStatus int
	}{
		{
			name: "saved with actor from token",
			body: `{"percentage_rate":"2.5","payment_methods":["cod"]}`,
			setupMock: func(m *MockSettingsService) {
				m.On("Update", mock.Anything, settings.UpdateInput{PercentageRate: "2.5", PaymentMethods: []string{"cod"}}, "admin").
					Return(&settings.View{PercentageRate: "2.5", PaymentMethods: []string{"cod"}}, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "validation failure",
			body: `{"percentage_rate":"-1"}`,
			setupMock: func(m *MockSettingsService) {
				m.On("Update", mock.Anything, settings.UpdateInput{PercentageRate: "-1"}, "admin").
					Return(nil, &validation.Error{Fields: map[string]string{"percentage_rate": "must not be negative"}})
			},
			wantStatus: fiber.StatusUnprocessableEntity,
		},
		{
			name:       "malformed body",
			body:       `{`,
			setupMock:  func(m *MockSettingsService) {},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSettingsService)
			tt.setupMock(svc)
			app := adminApp(new(MockAuthService))
			app.Put("/api/admin/payment-fee", NewSettingsHandler(svc).UpdateSettings)

			status, _ := doRequest(t, app, "PUT", "/api/admin/payment-fee", tt.body)

			assert.Equal(t, tt.wantStatus, status)
			svc.AssertExpectations(t)
		})
	}
}

func TestSettingsHandler_GetSettingsUnavailable(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("GetSettings", mock.Anything).Return(nil, settings.ErrSettingsUnavailable)

	app := adminApp(new(MockAuthService))
	app.Get("/api/admin/payment-fee", NewSettingsHandler(svc).GetSettings)

	status, _ := doRequest(t, app, "GET", "/api/admin/payment-fee", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestProductHandler_SetFeeExclusion(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("SetExcluded", mock.Anything, uint(7), true).Return(&models.Product{ID: 7, ExcludedFromFee: true}, nil)
	svc.On("SetExcluded", mock.Anything, uint(8), true).Return(nil, catalog.ErrProductNotFound)

	app := adminApp(new(MockAuthService))
	app.Put("/api/admin/products/:id/fee-exclusion", NewProductHandler(svc).SetFeeExclusion)

	status, _ := doRequest(t, app, "PUT", "/api/admin/products/7/fee-exclusion", `{"excluded_from_fee":true}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "PUT", "/api/admin/products/8/fee-exclusion", `{"excluded_from_fee":true}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body := doRequest(t, app, "PUT", "/api/admin/products/7/fee-exclusion", `{}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["fields"], "excluded_from_fee")
}

func TestProductHandler_ListProducts(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListProducts", mock.Anything, 10, 10).Return([]models.Product{{ID: 11}}, int64(25), nil)

	app := adminApp(new(MockAuthService))
	app.Get("/api/admin/products", NewProductHandler(svc).ListProducts)

	status, body := doRequest(t, app, "GET", "/api/admin/products?page=2&limit=10", "")
	require.Equal(t, fiber.StatusOK, status)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total_pages"])
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "admin", "good").Return("signed", &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Username:         "admin",
		Role:             models.RoleAdmin,
	}, nil)
	svc.On("Login", mock.Anything, "admin", "bad").Return("", nil, auth.ErrInvalidCredentials)

	app := fiber.New()
	app.Post("/api/admin/login", NewAuthHandler(svc).Login)

	status, body := doRequest(t, app, "POST", "/api/admin/login", `{"username":"admin","password":"good"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "signed", body["data"].(map[string]interface{})["access_token"])

	status, _ = doRequest(t, app, "POST", "/api/admin/login", `{"username":"admin","password":"bad"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doRequest(t, app, "POST", "/api/admin/login", `{"username":"admin"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantState  string
	}{
		{
			name:       "all up",
			checks:     map[string]Check{"database": func(context.Context) error { return nil }},
			wantStatus: fiber.StatusOK,
			wantState:  "ok",
		},
		{
			name: "redis down",
			checks: map[string]Check{
				"database": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
			},
			wantStatus: fiber.StatusServiceUnavailable,
			wantState:  "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.checks, nil).HealthCheck)

			status, body := doRequest(t, app, "GET", "/health", "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantState, body["status"])
		})
	}
}
