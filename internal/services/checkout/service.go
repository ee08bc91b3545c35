package checkout

import (
	"context"
	"errors"
	"strings"

	"payfee/internal/config"
	"payfee/internal/models"
	"payfee/internal/repositories"
	"payfee/internal/services/catalog"
	"payfee/internal/services/fee"
	"payfee/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type service struct {
	repo     repositories.CartRepository
	settings SettingsStore
	catalog  ProductCatalog
	config   config.CheckoutConfig
	metrics  MetricsCollector
}

// NewService creates the checkout engine.
func NewService(
	repo repositories.CartRepository,
	settings SettingsStore,
	catalog ProductCatalog,
	cfg config.CheckoutConfig,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if settings == nil {
		panic("settings store is required")
	}
	if catalog == nil {
		panic("catalog is required")
	}

	if cfg.Currency == "" {
		cfg.Currency = config.DefaultCurrency
	}
	if cfg.CurrencyDecimals < 0 {
		cfg.CurrencyDecimals = config.DefaultCurrencyDecimals
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:     repo,
		settings: settings,
		catalog:  catalog,
		config:   cfg,
		metrics:  metrics,
	}
}

func (s *service) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart := &models.Cart{
		Status:   models.CartStatusOpen,
		Currency: s.config.Currency,
		Items:    []models.CartItem{},
	}
	if err := s.repo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

func (s *service) AddItem(ctx context.Context, cartID uuid.UUID, input AddItemInput) (*models.Cart, error) {
	v := validation.New()
	v.Quantity("quantity", input.Quantity)
	if err := v.Err(); err != nil {
		return nil, err
	}

	cart, err := s.openCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	quantity := input.Quantity
	for _, item := range cart.Items {
		if item.ProductID == product.ID {
			quantity += item.Quantity
			break
		}
	}
	v.Quantity("quantity", quantity)
	if err := v.Err(); err != nil {
		return nil, err
	}

	item := &models.CartItem{
		CartID:       cart.ID,
		ProductID:    product.ID,
		Quantity:     quantity,
		LineSubtotal: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if err := s.repo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, cartID)
}

func (s *service) RemoveItem(ctx context.Context, cartID uuid.UUID, productID uint) (*models.Cart, error) {
	if _, err := s.openCart(ctx, cartID); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, cartID, productID); err != nil {
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.GetCart(ctx, cartID)
}

func (s *service) Recalculate(ctx context.Context, cartID uuid.UUID, input RecalculateInput) (*models.CheckoutTotals, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if input.Page == "" {
		input.Page = PageCheckout
	}
	method := strings.TrimSpace(input.PaymentMethod)

	// An ordered cart only shows up again on the order pages, where the totals
	// are the ones charged.
	if cart.Status != models.CartStatusOpen {
		if !input.Page.IsEndpoint() {
			return nil, ErrCartClosed
		}
		order, err := s.GetOrder(ctx, cartID)
		if err != nil {
			return nil, err
		}
		return orderTotals(order), nil
	}

	// Blank clears the choice; anything else must be an offered gateway.
	if method != "" && !s.knownGateway(method) {
		return nil, ErrUnknownPaymentMethod
	}
	if method != cart.ChosenPaymentMethod {
		if err := s.repo.SetPaymentMethod(ctx, cartID, method); err != nil {
			return nil, err
		}
		cart.ChosenPaymentMethod = method
	}

	return s.totals(ctx, cart, input.Page.FeeContext(method)), nil
}

func (s *service) PlaceOrder(ctx context.Context, cartID uuid.UUID, input PlaceOrderInput) (*models.Order, error) {
	method := strings.TrimSpace(input.PaymentMethod)
	if method == "" {
		return nil, ErrPaymentMethodRequired
	}
	if !s.knownGateway(method) {
		return nil, ErrUnknownPaymentMethod
	}

	cart, err := s.openCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	totals := s.totals(ctx, cart, PageCheckout.FeeContext(method))
	order := &models.Order{
		CartID:        cart.ID,
		PaymentMethod: method,
		Currency:      totals.Currency,
		Subtotal:      totals.Subtotal,
		FeeTotal:      totals.FeeTotal,
		Total:         totals.Total,
		Fees:          make([]models.OrderFee, 0, len(totals.Fees)),
	}
	for _, line := range totals.Fees {
		order.Fees = append(order.Fees, models.OrderFee{
			Label:   line.Label,
			Amount:  line.Amount,
			Taxable: line.Taxable,
		})
	}

	err = s.repo.ExecuteInTransaction(ctx, func(tx repositories.CartRepository) error {
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := tx.SetPaymentMethod(ctx, cart.ID, method); err != nil {
			return err
		}
		return tx.SetStatus(ctx, cart.ID, models.CartStatusOrdered)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", order.ID.String()).
		Str("cart_id", cart.ID.String()).
		Str("payment_method", method).
		Str("fee_total", order.FeeTotal.StringFixed(s.config.CurrencyDecimals)).
		Str("total", order.Total.StringFixed(s.config.CurrencyDecimals)).
		Msg("order placed")
	return order, nil
}

func (s *service) GetOrder(ctx context.Context, cartID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetOrderByCartID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// totals sums the cart and attaches the payment fee when one is owed.
// Fees are computed from line subtotals only, so additional surcharges would
// add up flat instead of compounding.
func (s *service) totals(ctx context.Context, cart *models.Cart, feeCtx fee.Context) *models.CheckoutTotals {
	totals := &models.CheckoutTotals{
		CartID:        cart.ID,
		PaymentMethod: feeCtx.ChosenPaymentMethod,
		Currency:      cart.Currency,
		Subtotal:      decimal.Zero,
		Fees:          []models.FeeLine{},
		FeeTotal:      decimal.Zero,
	}
	if totals.Currency == "" {
		totals.Currency = s.config.Currency
	}
	for _, item := range cart.Items {
		totals.Subtotal = totals.Subtotal.Add(item.LineSubtotal)
	}

	if line, ok := s.paymentFee(ctx, cart, feeCtx); ok {
		totals.Fees = append(totals.Fees, line)
		totals.FeeTotal = totals.FeeTotal.Add(line.Amount)
	}

	totals.Total = totals.Subtotal.Add(totals.FeeTotal)
	return totals
}

func (s *service) paymentFee(ctx context.Context, cart *models.Cart, feeCtx fee.Context) (models.FeeLine, bool) {
	cfg := s.settings.Configuration(ctx)

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	flags, err := s.catalog.ExclusionFlags(ctx, ids)
	if err != nil {
		log.Warn().Err(err).Str("cart_id", cart.ID.String()).Msg("fee exclusions unavailable, charging no fee")
		s.metrics.RecordCalculation(string(outcomeExclusionsUnavailable))
		return models.FeeLine{}, false
	}

	items := make([]fee.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, fee.LineItem{
			ProductID:       item.ProductID,
			LineSubtotal:    item.LineSubtotal,
			ExcludedFromFee: flags[item.ProductID],
		})
	}

	result, outcome := fee.Evaluate(cfg, feeCtx, items)
	s.metrics.RecordCalculation(string(outcome))
	if result == nil {
		log.Debug().Str("cart_id", cart.ID.String()).Str("outcome", string(outcome)).Msg("no payment fee")
		return models.FeeLine{}, false
	}

	amount := fee.Round(result.Amount, s.config.CurrencyDecimals)
	if !amount.IsPositive() {
		return models.FeeLine{}, false
	}
	amountF, _ := amount.Float64()
	s.metrics.RecordFee(feeCtx.ChosenPaymentMethod, amountF)

	return models.FeeLine{
		Label:   result.Label,
		Amount:  amount,
		Taxable: true,
	}, true
}

func orderTotals(order *models.Order) *models.CheckoutTotals {
	totals := &models.CheckoutTotals{
		CartID:        order.CartID,
		PaymentMethod: order.PaymentMethod,
		Currency:      order.Currency,
		Subtotal:      order.Subtotal,
		Fees:          make([]models.FeeLine, 0, len(order.Fees)),
		FeeTotal:      order.FeeTotal,
		Total:         order.Total,
	}
	for _, f := range order.Fees {
		totals.Fees = append(totals.Fees, models.FeeLine{Label: f.Label, Amount: f.Amount, Taxable: f.Taxable})
	}
	return totals
}

func (s *service) openCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.Status != models.CartStatusOpen {
		return nil, ErrCartClosed
	}
	return cart, nil
}

func (s *service) knownGateway(method string) bool {
	for _, g := range s.config.Gateways {
		if g.ID == method {
			return true
		}
	}
	return false
}
