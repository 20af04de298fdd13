package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billscan/internal/domain"
	"billscan/internal/service"
)

// MockBillService is a mock implementation of service.BillService.
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) Process(ctx context.Context, input service.ProcessInput) domain.ExtractionResult {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.ExtractionResult)
}
