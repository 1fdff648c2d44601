package business

import (
	"time"

	"github.com/google/uuid"
)

// RenderedArtifact is what a renderer hands back once the artifact is stored.
type RenderedArtifact struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// InvoiceEmail is the provider-neutral delivery request.
type InvoiceEmail struct {
	To            string
	RecipientName string
	Subject       string
	Message       string
	InvoiceNumber string
	Title         string
	Total         string
	DueDate       time.Time
	ArtifactURL   string
	PaymentURL    string
}

// DeliveryReceipt is the provider-neutral delivery result.
type DeliveryReceipt struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
}

// PaymentLink is a hosted page where the recipient can pay the invoice.
type PaymentLink struct {
	URL        string `json:"url"`
	ProviderID string `json:"provider_id"`
}

// ListingSnapshot is the point-in-time copy of a listing used to seed an invoice.
type ListingSnapshot struct {
	ID       uuid.UUID `json:"id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Category string    `json:"category"`
	Title    string    `json:"title"`
	Price    float64   `json:"price"`
}

// InvoiceEvent is published on lifecycle transitions.
type InvoiceEvent struct {
	Type          string    `json:"type"`
	InvoiceID     uuid.UUID `json:"invoice_id"`
	UserID        uuid.UUID `json:"user_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
