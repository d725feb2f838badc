package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecom/backend/internal/customer"
	"github.com/ecom/backend/internal/product"
)

var (
	ErrNoItems          = errors.New("order must contain at least one item")
	ErrDuplicateProduct = errors.New("product referenced more than once")
	ErrBadQuantity      = errors.New("quantity must be at least 1")
	ErrCustomerNotFound = errors.New("customer does not exist")
	ErrProductNotFound  = errors.New("product does not exist")
)

// Service runs the order placement workflow. Every referenced entity is
// resolved before anything is written, so a failed placement leaves no rows
// behind.
type Service struct {
	orders    Repository
	customers customer.Repository
	products  product.Repository
	now       func() time.Time
}

func NewService(orders Repository, customers customer.Repository, products product.Repository) *Service {
	return &Service{orders: orders, customers: customers, products: products, now: time.Now}
}

func (s *Service) Place(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	seen := make(map[string]bool, len(req.Items))
	ids := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %s", ErrBadQuantity, line.ProductID)
		}
		if seen[line.ProductID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, line.ProductID)
		}
		seen[line.ProductID] = true
		ids = append(ids, line.ProductID)
	}

	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	resolved, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
	}

	o := &Order{
		ID:         uuid.NewString(),
		OrderDate:  s.now().UTC().Format("2006-01-02"),
		CustomerID: req.CustomerID,
	}
	total := decimal.Zero
	items := make([]Item, 0, len(req.Items))
	for _, line := range req.Items {
		p := resolved[line.ProductID]
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s has malformed price %q: %w", p.ID, p.Price, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, Item{
			ID:          uuid.NewString(),
			OrderID:     o.ID,
			ProductID:   line.ProductID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
		})
	}
	o.Total = total.StringFixed(2)

	if err := s.orders.Create(ctx, o, items); err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// Get returns an order with its line items.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	o, items, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// ItemsOf returns the line items of an existing order. The order itself is
// resolved first so a missing order id reports ErrNotFound instead of an
// empty list.
func (s *Service) ItemsOf(ctx context.Context, orderID string) ([]Item, error) {
	_, items, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.orders.Delete(ctx, id)
}
