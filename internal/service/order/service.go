package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"sort"

	"foodapp/internal/domain"
	"foodapp/internal/payment"
)

var (
	// ErrEmptyCart is returned when placement is attempted with nothing in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCatalogConflict is returned when a cart entry no longer resolves in
	// the catalog at placement time. Placement aborts and the cart is left
	// intact for correction.
	ErrCatalogConflict = errors.New("cart item missing from catalog")
	// ErrOrderNotFound is returned when verification references an unknown
	// order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPaymentGateway is returned when the checkout session could not be
	// created; no payable pending order is left behind.
	ErrPaymentGateway = errors.New("payment session creation failed")
)

// Service owns the order lifecycle: snapshot creation at placement and the
// pending -> paid|failed verification state machine.
type Service struct {
	orders      orderRepo
	carts       cartStore
	catalog     catalog
	gateway     payment.Gateway
	frontendURL string
	logger      *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	SetSession(ctx context.Context, id, sessionID string) error
	TransitionStatus(ctx context.Context, id string, from, to domain.OrderStatus) (bool, error)
}

type cartStore interface {
	Cart(ctx context.Context, userID string) (domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type catalog interface {
	GetByID(ctx context.Context, id string) (*domain.FoodItem, error)
}

func New(orders orderRepo, carts cartStore, catalog catalog, gateway payment.Gateway, frontendURL string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		orders:      orders,
		carts:       carts,
		catalog:     catalog,
		gateway:     gateway,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// PlaceResult carries the created order and the provider redirect target.
type PlaceResult struct {
	Order       *domain.Order
	RedirectURL string
}

// Place converts the user's cart plus a delivery address into a pending
// order with frozen item snapshots and opens a checkout session for it. The
// cart is not cleared here; that happens only on confirmed payment, so an
// abandoned checkout leaves the cart intact for retry.
func (s *Service) Place(ctx context.Context, userID string, address domain.Address, deliveryFeeCents int64) (*PlaceResult, error) {
	cart, err := s.carts.Cart(ctx, userID)
	if err != nil {
		return nil, err
	}

	foodIDs := make([]string, 0, len(cart))
	for foodID, qty := range cart {
		if qty > 0 {
			foodIDs = append(foodIDs, foodID)
		}
	}
	if len(foodIDs) == 0 {
		return nil, ErrEmptyCart
	}
	sort.Strings(foodIDs)

	items := make([]domain.OrderItem, 0, len(foodIDs))
	var amount int64
	for _, foodID := range foodIDs {
		item, err := s.catalog.GetByID(ctx, foodID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Unlike the advisory subtotal, placement must not silently
				// drop an item the customer is about to pay for.
				return nil, fmt.Errorf("%w: %s", ErrCatalogConflict, foodID)
			}
			return nil, err
		}
		qty := cart[foodID]
		items = append(items, domain.OrderItem{
			FoodID:     item.ID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   qty,
		})
		amount += item.PriceCents * int64(qty)
	}
	amount += deliveryFeeCents

	created, err := s.orders.Create(ctx, domain.Order{
		UserID:      userID,
		Address:     address,
		Items:       items,
		AmountCents: amount,
		Status:      domain.OrderPending,
	})
	if err != nil {
		return nil, err
	}

	lines := make([]payment.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, payment.Line{Name: it.Name, UnitCents: it.PriceCents, Quantity: it.Quantity})
	}
	sess, err := s.gateway.CreateCheckoutSession(ctx, payment.SessionInput{
		OrderID:          created.ID,
		Lines:            lines,
		DeliveryFeeCents: deliveryFeeCents,
		SuccessURL:       s.verifyURL(created.ID, true),
		CancelURL:        s.verifyURL(created.ID, false),
	})
	if err != nil {
		s.failOrphan(ctx, created.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	if err := s.orders.SetSession(ctx, created.ID, sess.ID); err != nil {
		s.failOrphan(ctx, created.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	created.SessionID = sess.ID

	return &PlaceResult{Order: created, RedirectURL: sess.URL}, nil
}

// Verify applies the provider outcome to the order. The pending -> terminal
// transition is a conditional update, so duplicate or concurrent callbacks
// settle first-writer-wins: exactly one call clears the cart, every later
// call just observes the terminal status.
func (s *Service) Verify(ctx context.Context, orderID string, succeeded bool) (domain.OrderStatus, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Should never happen under correct redirect construction.
			s.logger.Printf("order service: verify for unknown order id=%s", orderID)
			return "", ErrOrderNotFound
		}
		return "", err
	}

	target := domain.OrderFailed
	if succeeded {
		target = domain.OrderPaid
	}

	moved, err := s.orders.TransitionStatus(ctx, orderID, domain.OrderPending, target)
	if err != nil {
		return "", err
	}
	if !moved {
		// Already settled by an earlier callback; report the stored status
		// without re-applying side effects.
		settled, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return "", err
		}
		return settled.Status, nil
	}

	if target == domain.OrderPaid {
		if err := s.carts.ClearCart(ctx, o.UserID); err != nil {
			// The payment outcome is settled; surface the stale cart in logs
			// rather than failing the verification.
			s.logger.Printf("order service: clear cart after payment user=%s order=%s error=%v", o.UserID, orderID, err)
		}
	}
	return target, nil
}

// ListByUser returns the user's purchase history, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *Service) failOrphan(ctx context.Context, orderID string, cause error) {
	s.logger.Printf("order service: checkout session failed for order=%s: %v", orderID, cause)
	if _, err := s.orders.TransitionStatus(ctx, orderID, domain.OrderPending, domain.OrderFailed); err != nil {
		s.logger.Printf("order service: mark orphan failed order=%s error=%v", orderID, err)
	}
}

func (s *Service) verifyURL(orderID string, success bool) string {
	q := url.Values{}
	if success {
		q.Set("success", "true")
	} else {
		q.Set("success", "false")
	}
	q.Set("orderId", orderID)
	return fmt.Sprintf("%s/verify?%s", s.frontendURL, q.Encode())
}
