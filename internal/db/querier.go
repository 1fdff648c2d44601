package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	AppendInvoiceNotes(ctx context.Context, arg AppendInvoiceNotesParams) (Invoice, error)
	CountInvoicesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error)
	CreateListing(ctx context.Context, arg CreateListingParams) (Listing, error)
	DeleteInvoiceItems(ctx context.Context, invoiceID uuid.UUID) error
	GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetListing(ctx context.Context, id uuid.UUID) (Listing, error)
	ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error)
	ListInvoicesByUser(ctx context.Context, arg ListInvoicesByUserParams) ([]Invoice, error)
	NextInvoiceNumber(ctx context.Context, arg NextInvoiceNumberParams) (int32, error)
	UpdateInvoiceDraft(ctx context.Context, arg UpdateInvoiceDraftParams) (Invoice, error)
	UpdateInvoicePaymentURL(ctx context.Context, arg UpdateInvoicePaymentURLParams) (Invoice, error)
	UpdateInvoicePdfURL(ctx context.Context, arg UpdateInvoicePdfURLParams) (Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error)
}

var _ Querier = (*Queries)(nil)
