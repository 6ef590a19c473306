package pos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smartmart/pos-backend/internal/modules/catalog"
	"github.com/smartmart/pos-backend/internal/modules/sales"
)

// Sentinel errors surfaced by the POS service.
var (
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrNotInCart           = errors.New("product not in cart")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPayment = errors.New("insufficient payment amount")
)

// Service defines cashier-side cart and checkout logic. Carts are keyed by
// session ID and live only in memory for the lifetime of a session.
type Service interface {
	AddToCart(ctx context.Context, session uuid.UUID, productID string, qty int) error
	UpdateCartQuantity(ctx context.Context, session uuid.UUID, productID string, qty int) error
	RemoveFromCart(ctx context.Context, session uuid.UUID, productID string) error
	CartItems(ctx context.Context, session uuid.UUID) ([]CartItem, error)
	Total(ctx context.Context, session uuid.UUID, paymentMethod string) (float64, error)
	// Checkout is the single commit path: it validates the cart against
	// current stock, decrements the catalog all-or-nothing, appends one
	// sales-log record, and clears the cart.
	Checkout(ctx context.Context, session uuid.UUID, req CheckoutRequest) (*Receipt, error)
	ClearCart(ctx context.Context, session uuid.UUID)
	CloseSession(ctx context.Context, session uuid.UUID)
}

type service struct {
	sessions    *sessions
	catalogRepo catalog.Repository
	salesSvc    sales.Service
	log         *logrus.Logger
}

// NewService creates a new POS service.
func NewService(catalogRepo catalog.Repository, salesSvc sales.Service, log *logrus.Logger) Service {
	return &service{
		sessions:    newSessions(),
		catalogRepo: catalogRepo,
		salesSvc:    salesSvc,
		log:         log,
	}
}

func (s *service) AddToCart(ctx context.Context, session uuid.UUID, productID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	// Stock is re-read from the store at call time, never cached.
	p, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.Quantity < qty {
		return fmt.Errorf("%w: %s has %d, need %d", catalog.ErrInsufficientStock, p.ID, p.Quantity, qty)
	}
	s.sessions.get(session).add(productID, qty)
	return nil
}

func (s *service) UpdateCartQuantity(ctx context.Context, session uuid.UUID, productID string, qty int) error {
	if qty <= 0 {
		return s.RemoveFromCart(ctx, session, productID)
	}
	p, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.Quantity < qty {
		return fmt.Errorf("%w: %s has %d, need %d", catalog.ErrInsufficientStock, p.ID, p.Quantity, qty)
	}
	s.sessions.get(session).set(productID, qty)
	return nil
}

func (s *service) RemoveFromCart(ctx context.Context, session uuid.UUID, productID string) error {
	if !s.sessions.get(session).remove(productID) {
		return fmt.Errorf("%w: %s", ErrNotInCart, productID)
	}
	return nil
}

// CartItems joins the cart against the current catalog. Entries whose
// product has meanwhile disappeared are dropped, not reported as errors.
func (s *service) CartItems(ctx context.Context, session uuid.UUID) ([]CartItem, error) {
	entries := s.sessions.get(session).entries()
	items := make([]CartItem, 0, len(entries))
	for _, e := range entries {
		p, err := s.catalogRepo.GetByID(ctx, e.productID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, CartItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Quantity: e.quantity,
		})
	}
	return items, nil
}

func (s *service) Total(ctx context.Context, session uuid.UUID, paymentMethod string) (float64, error) {
	items, err := s.CartItems(ctx, session)
	if err != nil {
		return 0, err
	}
	return totalOf(items, paymentMethod), nil
}

func totalOf(items []CartItem, paymentMethod string) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	if strings.EqualFold(paymentMethod, string(PaymentCard)) {
		total *= cardDiscountMultiplier
	}
	return round2(total)
}

func (s *service) Checkout(ctx context.Context, session uuid.UUID, req CheckoutRequest) (*Receipt, error) {
	crt := s.sessions.get(session)
	if len(crt.snapshot()) == 0 {
		return nil, ErrEmptyCart
	}

	// One live catalog join feeds both the charge and the decrement batch,
	// so an entry whose product has meanwhile been removed is neither
	// billed nor decremented.
	items, err := s.CartItems(ctx, session)
	if err != nil {
		return nil, err
	}
	total := totalOf(items, req.PaymentMethod)
	batch := make(map[string]int, len(items))
	for _, item := range items {
		batch[item.ID] = item.Quantity
	}

	var change float64
	if req.AmountReceived != nil {
		if *req.AmountReceived < total {
			return nil, ErrInsufficientPayment
		}
		change = round2(*req.AmountReceived - total)
	}

	// All-or-nothing: a negative resulting quantity anywhere aborts with
	// the products file untouched.
	if err := s.catalogRepo.DecrementStock(ctx, batch); err != nil {
		return nil, err
	}

	rec, err := s.salesSvc.Log(ctx, total)
	if err != nil {
		// Stock is already decremented; the sale record is the source of
		// truth the admin report reads, so surface the failure and keep
		// the cart so the cashier can retry.
		return nil, fmt.Errorf("record sale: %w", err)
	}

	crt.clear()

	receipt := &Receipt{Reference: uuid.New(), Total: total, Change: change, At: rec.At}
	s.log.WithFields(logrus.Fields{
		"reference": receipt.Reference,
		"total":     receipt.Total,
		"method":    req.PaymentMethod,
		"items":     len(batch),
	}).Info("sale committed")
	return receipt, nil
}

func (s *service) ClearCart(ctx context.Context, session uuid.UUID) {
	s.sessions.get(session).clear()
}

func (s *service) CloseSession(ctx context.Context, session uuid.UUID) {
	s.sessions.close(session)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
