package services

import (
	"context"
	"errors"
	"testing"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		orderId       uint64
		status        domain.OrderStatus
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:    "successful transition",
			orderId: 1,
			status:  domain.StatusShipped,
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("UpdateStatus", uint64(1), domain.StatusShipped).Return(true, nil)
				mockRepo.On("FindByID", uint64(1)).Return(CreateMockDetail(1, domain.StatusShipped), nil)
			},
		},
		{
			name:          "unknown status is rejected",
			orderId:       1,
			status:        domain.OrderStatus("bogus"),
			setupMocks:    func(mockRepo *mocks.MockOrderRepository) {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:          "empty status is rejected",
			orderId:       1,
			status:        domain.OrderStatus(""),
			setupMocks:    func(mockRepo *mocks.MockOrderRepository) {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:    "order not found",
			orderId: 999,
			status:  domain.StatusDelivered,
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("UpdateStatus", uint64(999), domain.StatusDelivered).Return(false, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "repository error",
			orderId: 1,
			status:  domain.StatusProcessing,
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("UpdateStatus", uint64(1), domain.StatusProcessing).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			tt.setupMocks(mockRepo)

			service := NewOrderService(mockRepo)
			result, err := service.UpdateStatus(context.Background(), tt.orderId, tt.status)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.status, result.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus_AllValidTargets(t *testing.T) {
	// The transition is a pure overwrite: every member of the vocabulary is a
	// legal target regardless of the current status.
	for _, status := range domain.AllStatuses {
		t.Run(string(status), func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			mockRepo.On("UpdateStatus", TestOrderID, status).Return(true, nil)
			mockRepo.On("FindByID", TestOrderID).Return(CreateMockDetail(TestOrderID, status), nil)

			service := NewOrderService(mockRepo)
			result, err := service.UpdateStatus(context.Background(), TestOrderID, status)

			assert.NoError(t, err)
			assert.Equal(t, status, result.Status)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus_Idempotent(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("UpdateStatus", TestOrderID, domain.StatusCompleted).Return(true, nil).Twice()
	mockRepo.On("FindByID", TestOrderID).Return(CreateMockDetail(TestOrderID, domain.StatusCompleted), nil).Twice()

	service := NewOrderService(mockRepo)

	first, err := service.UpdateStatus(context.Background(), TestOrderID, domain.StatusCompleted)
	assert.NoError(t, err)
	second, err := service.UpdateStatus(context.Background(), TestOrderID, domain.StatusCompleted)
	assert.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatus_InvalidLeavesStoreUntouched(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)

	service := NewOrderService(mockRepo)
	result, err := service.UpdateStatus(context.Background(), TestOrderID, "entregadoo")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrder(t *testing.T) {
	tests := []struct {
		name          string
		orderId       uint64
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:    "successful order retrieval",
			orderId: 1,
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("FindByID", uint64(1)).Return(CreateMockDetail(1, domain.StatusPending), nil)
			},
		},
		{
			name:    "order not found",
			orderId: 999,
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("FindByID", uint64(999)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "repository error",
			orderId: 1,
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("FindByID", uint64(1)).Return(nil, errors.New("database connection error"))
			},
			expectedError: errors.New("database connection error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			tt.setupMocks(mockRepo)

			service := NewOrderService(mockRepo)
			result, err := service.GetOrder(context.Background(), tt.orderId)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.orderId, result.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListByStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		expected := []domain.OrderSummary{
			CreateMockSummary(1, domain.StatusPending, TestCustomerName, TestCustomerEmail),
		}
		mockRepo.On("FindByStatus", domain.StatusPending).Return(expected, nil)

		service := NewOrderService(mockRepo)
		result, err := service.ListByStatus(context.Background(), domain.StatusPending)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, domain.StatusPending, result[0].Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)

		service := NewOrderService(mockRepo)
		result, err := service.ListByStatus(context.Background(), "shipped")

		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "FindByStatus", mock.Anything)
	})
}

func TestOrderService_Search(t *testing.T) {
	tests := []struct {
		name          string
		term          string
		setupMocks    func(*mocks.MockOrderRepository)
		expectedLen   int
		expectedError error
	}{
		{
			name: "matches by customer name",
			term: "maria",
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("Search", "maria").Return([]domain.OrderSummary{
					CreateMockSummary(1, domain.StatusPending, "Maria Lopez Garcia", "maria@example.com"),
					CreateMockSummary(2, domain.StatusShipped, "Ana Torres", "ana.maria@example.com"),
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name:          "empty term rejected",
			term:          "",
			setupMocks:    func(mockRepo *mocks.MockOrderRepository) {},
			expectedError: ErrEmptySearch,
		},
		{
			name:          "whitespace term rejected",
			term:          "   ",
			setupMocks:    func(mockRepo *mocks.MockOrderRepository) {},
			expectedError: ErrEmptySearch,
		},
		{
			name: "repository error",
			term: "maria",
			setupMocks: func(mockRepo *mocks.MockOrderRepository) {
				mockRepo.On("Search", "maria").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			tt.setupMocks(mockRepo)

			service := NewOrderService(mockRepo)
			result, err := service.Search(context.Background(), tt.term)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedLen)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func setupStatisticsMocks(mockRepo *mocks.MockOrderRepository, total int64, perStatus map[domain.OrderStatus]int64, today, month decimal.Decimal) {
	mockRepo.On("CountAll").Return(total, nil)
	for _, status := range domain.AllStatuses {
		mockRepo.On("CountByStatus", status).Return(perStatus[status], nil)
	}
	mockRepo.On("RevenueToday").Return(today, nil)
	mockRepo.On("RevenueThisMonth").Return(month, nil)
}

func TestOrderService_Statistics_EmptyStore(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	setupStatisticsMocks(mockRepo, 0, nil, decimal.Zero, decimal.Zero)

	service := NewOrderService(mockRepo)
	stats, err := service.Statistics(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Processing)
	assert.Zero(t, stats.Shipped)
	assert.Zero(t, stats.Delivered)
	assert.Zero(t, stats.Completed)
	assert.Zero(t, stats.Cancelled)
	assert.True(t, stats.RevenueToday.IsZero())
	assert.True(t, stats.RevenueMonth.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Statistics_SeededPendingOrder(t *testing.T) {
	// One pendiente order for 1450.00 placed this month.
	mockRepo := new(mocks.MockOrderRepository)
	revenue := decimal.RequireFromString("1450.00")
	setupStatisticsMocks(mockRepo, 1, map[domain.OrderStatus]int64{
		domain.StatusPending: 1,
	}, decimal.Zero, revenue)

	service := NewOrderService(mockRepo)
	stats, err := service.Statistics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.True(t, stats.RevenueMonth.Equal(revenue))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Statistics_TotalMatchesListing(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	orders := []domain.OrderSummary{
		CreateMockSummary(1, domain.StatusPending, TestCustomerName, TestCustomerEmail),
		CreateMockSummary(2, domain.StatusShipped, "Ana Torres", "ana@example.com"),
		CreateMockSummary(3, domain.StatusCancelled, "Luis Rivera", "luis@example.com"),
	}
	mockRepo.On("FindAll").Return(orders, nil)
	setupStatisticsMocks(mockRepo, int64(len(orders)), map[domain.OrderStatus]int64{
		domain.StatusPending:   1,
		domain.StatusShipped:   1,
		domain.StatusCancelled: 1,
	}, decimal.Zero, decimal.Zero)

	service := NewOrderService(mockRepo)

	listed, err := service.ListOrders(context.Background())
	assert.NoError(t, err)
	stats, err := service.Statistics(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int64(len(listed)), stats.Total)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Statistics_RepositoryError(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("CountAll").Return(int64(0), errors.New("database error"))
	for _, status := range domain.AllStatuses {
		mockRepo.On("CountByStatus", status).Return(int64(0), nil).Maybe()
	}
	mockRepo.On("RevenueToday").Return(decimal.Zero, nil).Maybe()
	mockRepo.On("RevenueThisMonth").Return(decimal.Zero, nil).Maybe()

	service := NewOrderService(mockRepo)
	stats, err := service.Statistics(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestOrderService_CreateOrder(t *testing.T) {
	t.Run("defaults to pendiente", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		mockRepo.On("Create", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
			order := args.Get(0).(*domain.Order)
			order.ID = 1
		})

		service := NewOrderService(mockRepo)
		order, err := service.CreateOrder(context.Background(), TestCustomerID, nil, decimal.RequireFromString(TestTotal), "")

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), order.ID)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, TestCustomerID, order.CustomerID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative total rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)

		service := NewOrderService(mockRepo)
		order, err := service.CreateOrder(context.Background(), TestCustomerID, nil, decimal.RequireFromString("-1"), "")

		assert.ErrorIs(t, err, ErrInvalidTotal)
		assert.Nil(t, order)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)

		service := NewOrderService(mockRepo)
		order, err := service.CreateOrder(context.Background(), TestCustomerID, nil, decimal.RequireFromString(TestTotal), "paid")

		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, order)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("nothing to update", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)

		service := NewOrderService(mockRepo)
		result, err := service.UpdateOrder(context.Background(), TestOrderID, nil, nil)

		assert.ErrorIs(t, err, ErrEmptyUpdate)
		assert.Nil(t, result)
	})

	t.Run("updates status and total", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		status := domain.StatusCompleted
		total := decimal.RequireFromString("999.99")
		mockRepo.On("Update", TestOrderID, &status, &total).Return(true, nil)
		mockRepo.On("FindByID", TestOrderID).Return(CreateMockDetail(TestOrderID, status), nil)

		service := NewOrderService(mockRepo)
		result, err := service.UpdateOrder(context.Background(), TestOrderID, &status, &total)

		assert.NoError(t, err)
		assert.Equal(t, status, result.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("order not found", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		status := domain.StatusCompleted
		mockRepo.On("Update", uint64(999), &status, (*decimal.Decimal)(nil)).Return(false, nil)

		service := NewOrderService(mockRepo)
		result, err := service.UpdateOrder(context.Background(), uint64(999), &status, nil)

		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, result)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("deletes existing order", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		mockRepo.On("Delete", TestOrderID).Return(true, nil)

		service := NewOrderService(mockRepo)
		assert.NoError(t, service.DeleteOrder(context.Background(), TestOrderID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("order not found", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		mockRepo.On("Delete", uint64(999)).Return(false, nil)

		service := NewOrderService(mockRepo)
		assert.ErrorIs(t, service.DeleteOrder(context.Background(), uint64(999)), ErrOrderNotFound)
	})
}
