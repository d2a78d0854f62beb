package services

import (
	"time"

	"backoffice-service/internal/domain"

	"github.com/shopspring/decimal"
)

func CreateMockSummary(id uint64, status domain.OrderStatus, name, email string) domain.OrderSummary {
	return domain.OrderSummary{
		ID:           id,
		CreatedAt:    time.Now(),
		Total:        decimal.RequireFromString(TestTotal),
		Status:       status,
		CustomerName: name,
		Email:        email,
	}
}

func CreateMockDetail(id uint64, status domain.OrderStatus) *domain.OrderDetail {
	return &domain.OrderDetail{
		OrderSummary: CreateMockSummary(id, status, TestCustomerName, TestCustomerEmail),
		Items:        []domain.OrderLineItem{},
	}
}

const (
	TestOrderID       = uint64(1)
	TestCustomerID    = uint64(7)
	TestTotal         = "1450.00"
	TestCustomerName  = "Maria Lopez Garcia"
	TestCustomerEmail = "maria@example.com"
)
