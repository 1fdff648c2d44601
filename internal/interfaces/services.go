package interfaces

//go:generate mockgen -destination=../mocks/mock_services.go -package=mocks . InvoiceService

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/invoicing/internal/types/api/params"
	"github.com/marketplace/invoicing/internal/types/business"
)

// InvoiceService handles invoice composition, persistence and delivery
type InvoiceService interface {
	CreateInvoice(ctx context.Context, params params.CreateInvoiceParams) (*business.Invoice, error)
	PreviewInvoice(ctx context.Context, params params.PreviewInvoiceParams) (*business.InvoiceTotals, error)
	GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*business.Invoice, error)
	ListInvoices(ctx context.Context, params params.ListInvoicesParams) ([]business.Invoice, int64, error)
	UpdateInvoice(ctx context.Context, params params.UpdateInvoiceParams) (*business.Invoice, error)
	AppendNotes(ctx context.Context, userID, invoiceID uuid.UUID, notes string) (*business.Invoice, error)
	RenderInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*business.Invoice, error)
	SendInvoice(ctx context.Context, params params.SendInvoiceParams) (*business.SendResult, error)
	GetInvoiceTotals(ctx context.Context, userID, invoiceID uuid.UUID) (*business.InvoiceTotals, error)
	DownloadArtifact(ctx context.Context, userID, invoiceID uuid.UUID) (string, error)
	VoidInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*business.Invoice, error)
	MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) (*business.Invoice, error)
}
