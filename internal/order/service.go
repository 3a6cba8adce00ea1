package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/product"
)

var (
	ErrNoItems              = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidStatus        = errors.New("invalid order status")
)

// Notifier is an optional side channel told about successfully placed orders.
type Notifier interface {
	OrderPlaced(o *Order)
}

// Service implements the order placement workflow: fail-fast validation,
// server-side price snapshotting, total computation and the transactional
// commit, plus the guarded status state machine.
type Service struct {
	repo     Repository
	products product.Repository
	notify   Notifier
}

func NewService(repo Repository, products product.Repository, notify Notifier) *Service {
	return &Service{repo: repo, products: products, notify: notify}
}

const createAttempts = 3

// Create validates every requested line (exists, active, sufficient stock, in
// that order, first violation wins), snapshots the authoritative catalog price
// into each line item and commits order + items + stock decrements atomically.
// On a validation failure nothing is persisted and no stock is touched.
func (s *Service) Create(ctx context.Context, userID int64, req CreateOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if !ValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	items := make([]Item, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
		if !p.IsActive {
			return nil, &ProductUnavailableError{ProductName: p.Name}
		}
		if p.StockQuantity < line.Quantity {
			return nil, &InsufficientStockError{ProductName: p.Name, Available: p.StockQuantity}
		}

		// the catalog price is authoritative; the client-supplied unit price
		// is never persisted
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			TotalPrice:  lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	o := &Order{
		UserID:             userID,
		Status:             StatusPending,
		PaymentMethod:      req.PaymentMethod,
		PaymentStatus:      PaymentStatusPending,
		Subtotal:           subtotal,
		TaxAmount:          decimal.Zero,
		ShippingCost:       decimal.Zero,
		TotalAmount:        subtotal,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
		BillingAddress:     req.BillingAddress,
		BillingCity:        req.BillingCity,
		BillingPostalCode:  req.BillingPostalCode,
		BillingCountry:     req.BillingCountry,
		Notes:              req.Notes,
	}

	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		o.OrderNumber = NewOrderNumber()
		err = s.repo.Create(ctx, o, items)
		if !errors.Is(err, ErrDuplicateNumber) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	// read-after-write so the caller gets the fully hydrated row, not the
	// in-memory assembly
	created, err := s.repo.GetByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if s.notify != nil {
		s.notify.OrderPlaced(created)
	}
	return created, nil
}

// Update applies the admin partial update. Status changes go through the
// transition table; moving to cancelled restocks every line item.
func (s *Service) Update(ctx context.Context, id int64, req UpdateOrderRequest) (*Order, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// validate every field before touching the store, so an error leaves the
	// order exactly as it was
	if req.Status != "" {
		next := Status(req.Status)
		if !ValidStatus(next) {
			return nil, ErrInvalidStatus
		}
		if !CanTransition(cur.Status, next) {
			return nil, &InvalidTransitionError{From: cur.Status, To: next}
		}
	}
	if req.PaymentStatus != "" && !ValidPaymentStatus(req.PaymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}

	if req.Status != "" {
		next := Status(req.Status)
		restock := next == StatusCancelled
		if err := s.repo.SetStatus(ctx, id, next, restock); err != nil {
			return nil, err
		}
		if restock {
			log.Printf("[order] %s cancelled, %d line item(s) restocked", cur.OrderNumber, len(cur.Items))
		}
	}

	if req.PaymentStatus != "" || req.TrackingNumber != "" || req.Notes != "" {
		if err := s.repo.UpdateDetails(ctx, id, req.PaymentStatus, req.TrackingNumber, req.Notes); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

// NewOrderNumber builds "ORD-" + timestamp + zero-padded random suffix.
// Collisions are possible; the UNIQUE column plus the retry in Create makes
// uniqueness a guarantee rather than a probability.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%03d", time.Now().Format("20060102150405"), rand.Intn(1000))
}
