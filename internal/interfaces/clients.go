package interfaces

//go:generate mockgen -destination=../mocks/mock_clients.go -package=mocks . Renderer,ArtifactStore,Mailer,PaymentGateway,ListingSource,EventPublisher

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/invoicing/internal/types/business"
)

// Renderer turns an invoice snapshot into a stored, fixed-layout artifact.
type Renderer interface {
	Render(ctx context.Context, invoice business.Invoice) (*business.RenderedArtifact, error)
}

// ArtifactStore persists rendered bytes and returns a retrievable URL.
type ArtifactStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) (string, error)
}

// Mailer delivers an invoice email.
type Mailer interface {
	SendInvoice(ctx context.Context, email business.InvoiceEmail) (*business.DeliveryReceipt, error)
}

// PaymentGateway creates hosted payment pages for invoices.
type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, invoice business.Invoice) (*business.PaymentLink, error)
}

// ListingSource reads marketplace listings for invoice seeding.
type ListingSource interface {
	GetListingSnapshot(ctx context.Context, listingID uuid.UUID) (*business.ListingSnapshot, error)
}

// EventPublisher publishes invoice lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event business.InvoiceEvent) error
}
