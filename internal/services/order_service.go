package services

import (
	"context"
	"errors"
	"strings"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrEmptySearch   = errors.New("search term required")
	ErrEmptyUpdate   = errors.New("nothing to update")
	ErrInvalidTotal  = errors.New("total must not be negative")
)

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(r repository.OrderRepository) *OrderService {
	return &OrderService{repo: r}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	return s.repo.FindAll()
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.OrderDetail, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.OrderSummary, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.FindByStatus(status)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.OrderSummary, error) {
	return s.repo.FindByCustomer(customerID)
}

func (s *OrderService) Search(ctx context.Context, term string) ([]domain.OrderSummary, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptySearch
	}
	return s.repo.Search(term)
}

// UpdateStatus applies a lifecycle transition. The target only has to be a
// member of the status vocabulary: any status may overwrite any other, which
// makes the operation idempotent, and no audit trail is kept. The refreshed
// order view is returned.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.OrderDetail, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	found, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrOrderNotFound
	}

	return s.GetOrder(ctx, id)
}

// CreateOrder inserts a bare order row from the admin side. Checkout with
// line items lives in the storefront, not here.
func (s *OrderService) CreateOrder(ctx context.Context, customerID uint64, addressID *uint64, total decimal.Decimal, status domain.OrderStatus) (*domain.Order, error) {
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if total.IsNegative() {
		return nil, ErrInvalidTotal
	}

	order := &domain.Order{
		CustomerID: customerID,
		AddressID:  addressID,
		Total:      total,
		Status:     status,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder mutates status and/or total; at least one must be given. The
// stored total is trusted as-is and never reconciled against line items.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint64, status *domain.OrderStatus, total *decimal.Decimal) (*domain.OrderDetail, error) {
	if status == nil && total == nil {
		return nil, ErrEmptyUpdate
	}
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if total != nil && total.IsNegative() {
		return nil, ErrInvalidTotal
	}

	found, err := s.repo.Update(id, status, total)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrOrderNotFound
	}

	return s.GetOrder(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	found, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}
	return nil
}

// Statistics recomputes the dashboard summary from scratch on every call.
// The nine aggregate queries are independent, so they fan out on an errgroup
// and land in distinct fields of the result.
func (s *OrderService) Statistics(ctx context.Context) (*domain.OrderStatistics, error) {
	stats := &domain.OrderStatistics{
		RevenueToday: decimal.Zero,
		RevenueMonth: decimal.Zero,
	}

	var g errgroup.Group

	g.Go(func() error {
		n, err := s.repo.CountAll()
		stats.Total = n
		return err
	})

	counts := map[domain.OrderStatus]*int64{
		domain.StatusPending:    &stats.Pending,
		domain.StatusProcessing: &stats.Processing,
		domain.StatusShipped:    &stats.Shipped,
		domain.StatusDelivered:  &stats.Delivered,
		domain.StatusCompleted:  &stats.Completed,
		domain.StatusCancelled:  &stats.Cancelled,
	}
	for status, dst := range counts {
		status, dst := status, dst
		g.Go(func() error {
			n, err := s.repo.CountByStatus(status)
			*dst = n
			return err
		})
	}

	g.Go(func() error {
		total, err := s.repo.RevenueToday()
		stats.RevenueToday = total
		return err
	})
	g.Go(func() error {
		total, err := s.repo.RevenueThisMonth()
		stats.RevenueMonth = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
