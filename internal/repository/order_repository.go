package repository

import (
	"backoffice-service/internal/domain"

	"github.com/shopspring/decimal"
)

// OrderRepository is the persistence contract for the order back office.
// Finder methods return (nil, nil) when nothing matches; mutation methods
// report whether a row was touched.
type OrderRepository interface {
	FindAll() ([]domain.OrderSummary, error)
	FindByID(id uint64) (*domain.OrderDetail, error)
	FindByStatus(status domain.OrderStatus) ([]domain.OrderSummary, error)
	FindByCustomer(customerID uint64) ([]domain.OrderSummary, error)
	Search(term string) ([]domain.OrderSummary, error)

	Create(order *domain.Order) error
	UpdateStatus(id uint64, status domain.OrderStatus) (bool, error)
	Update(id uint64, status *domain.OrderStatus, total *decimal.Decimal) (bool, error)
	Delete(id uint64) (bool, error)

	CountAll() (int64, error)
	CountByStatus(status domain.OrderStatus) (int64, error)
	RevenueToday() (decimal.Decimal, error)
	RevenueThisMonth() (decimal.Decimal, error)
}
