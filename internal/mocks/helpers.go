package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockStoreForTest creates a new mock Store for testing
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}

// NewMockInvoiceServiceForTest creates a new mock InvoiceService for testing
func NewMockInvoiceServiceForTest(t *testing.T) *MockInvoiceService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInvoiceService(ctrl)
}
