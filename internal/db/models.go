package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Invoice struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	InvoiceNumber    string             `json:"invoice_number"`
	RecipientEmail   string             `json:"recipient_email"`
	RecipientName    pgtype.Text        `json:"recipient_name"`
	RecipientAddress pgtype.Text        `json:"recipient_address"`
	ListingID        pgtype.UUID        `json:"listing_id"`
	Type             string             `json:"type"`
	Title            string             `json:"title"`
	Description      pgtype.Text        `json:"description"`
	Amount           float64            `json:"amount"`
	TaxRate          float64            `json:"tax_rate"`
	TaxAmount        float64            `json:"tax_amount"`
	TotalAmount      float64            `json:"total_amount"`
	Status           string             `json:"status"`
	IssueDate        pgtype.Timestamptz `json:"issue_date"`
	DueDate          pgtype.Timestamptz `json:"due_date"`
	Notes            pgtype.Text        `json:"notes"`
	Reference        pgtype.Text        `json:"reference"`
	PdfUrl           pgtype.Text        `json:"pdf_url"`
	PaymentUrl       pgtype.Text        `json:"payment_url"`
	SentAt           pgtype.Timestamptz `json:"sent_at"`
	PaidAt           pgtype.Timestamptz `json:"paid_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type InvoiceItem struct {
	ID          uuid.UUID          `json:"id"`
	InvoiceID   uuid.UUID          `json:"invoice_id"`
	Position    int32              `json:"position"`
	Description string             `json:"description"`
	Quantity    float64            `json:"quantity"`
	UnitPrice   float64            `json:"unit_price"`
	Amount      float64            `json:"amount"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type InvoiceSequence struct {
	UserID     uuid.UUID `json:"user_id"`
	Year       int32     `json:"year"`
	LastNumber int32     `json:"last_number"`
}

type Listing struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Category  string             `json:"category"`
	Title     string             `json:"title"`
	Price     float64            `json:"price"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
