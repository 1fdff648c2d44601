package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const appendInvoiceNotes = `-- name: AppendInvoiceNotes :one
UPDATE invoices
SET notes = CASE
        WHEN notes IS NULL OR notes = '' THEN $2::text
        ELSE notes || E'\n' || $2::text
    END,
    updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
`

type AppendInvoiceNotesParams struct {
	ID    uuid.UUID `json:"id"`
	Notes string    `json:"notes"`
}

func (q *Queries) AppendInvoiceNotes(ctx context.Context, arg AppendInvoiceNotesParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, appendInvoiceNotes, arg.ID, arg.Notes)
	return scanInvoice(row)
}

const countInvoicesByUser = `-- name: CountInvoicesByUser :one
SELECT COUNT(*) FROM invoices WHERE user_id = $1
`

func (q *Queries) CountInvoicesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	row := q.db.QueryRow(ctx, countInvoicesByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createInvoice = `-- name: CreateInvoice :one
INSERT INTO invoices (
    user_id, invoice_number, recipient_email, recipient_name, recipient_address,
    listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount,
    status, issue_date, due_date, notes, reference
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)
RETURNING id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
`

type CreateInvoiceParams struct {
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
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.UserID,
		arg.InvoiceNumber,
		arg.RecipientEmail,
		arg.RecipientName,
		arg.RecipientAddress,
		arg.ListingID,
		arg.Type,
		arg.Title,
		arg.Description,
		arg.Amount,
		arg.TaxRate,
		arg.TaxAmount,
		arg.TotalAmount,
		arg.Status,
		arg.IssueDate,
		arg.DueDate,
		arg.Notes,
		arg.Reference,
	)
	return scanInvoice(row)
}

const createInvoiceItem = `-- name: CreateInvoiceItem :one
INSERT INTO invoice_items (
    invoice_id, position, description, quantity, unit_price, amount
) VALUES (
    $1, $2, $3, $4, $5, $6
)
RETURNING id, invoice_id, position, description, quantity, unit_price, amount, created_at
`

type CreateInvoiceItemParams struct {
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Position    int32     `json:"position"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Amount      float64   `json:"amount"`
}

func (q *Queries) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceItem,
		arg.InvoiceID,
		arg.Position,
		arg.Description,
		arg.Quantity,
		arg.UnitPrice,
		arg.Amount,
	)
	var i InvoiceItem
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.Position,
		&i.Description,
		&i.Quantity,
		&i.UnitPrice,
		&i.Amount,
		&i.CreatedAt,
	)
	return i, err
}

const createListing = `-- name: CreateListing :one
INSERT INTO listings (user_id, category, title, price)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, category, title, price, created_at, updated_at
`

type CreateListingParams struct {
	UserID   uuid.UUID `json:"user_id"`
	Category string    `json:"category"`
	Title    string    `json:"title"`
	Price    float64   `json:"price"`
}

func (q *Queries) CreateListing(ctx context.Context, arg CreateListingParams) (Listing, error) {
	row := q.db.QueryRow(ctx, createListing,
		arg.UserID,
		arg.Category,
		arg.Title,
		arg.Price,
	)
	var i Listing
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Category,
		&i.Title,
		&i.Price,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteInvoiceItems = `-- name: DeleteInvoiceItems :exec
DELETE FROM invoice_items WHERE invoice_id = $1
`

func (q *Queries) DeleteInvoiceItems(ctx context.Context, invoiceID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteInvoiceItems, invoiceID)
	return err
}

const getInvoice = `-- name: GetInvoice :one
SELECT id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoice, id)
	return scanInvoice(row)
}

const getListing = `-- name: GetListing :one
SELECT id, user_id, category, title, price, created_at, updated_at
FROM listings
WHERE id = $1
`

func (q *Queries) GetListing(ctx context.Context, id uuid.UUID) (Listing, error) {
	row := q.db.QueryRow(ctx, getListing, id)
	var i Listing
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Category,
		&i.Title,
		&i.Price,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listInvoiceItems = `-- name: ListInvoiceItems :many
SELECT id, invoice_id, position, description, quantity, unit_price, amount, created_at
FROM invoice_items
WHERE invoice_id = $1
ORDER BY position ASC
`

func (q *Queries) ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error) {
	rows, err := q.db.Query(ctx, listInvoiceItems, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []InvoiceItem{}
	for rows.Next() {
		var i InvoiceItem
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.Position,
			&i.Description,
			&i.Quantity,
			&i.UnitPrice,
			&i.Amount,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listInvoicesByUser = `-- name: ListInvoicesByUser :many
SELECT id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
FROM invoices
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListInvoicesByUserParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
	Offset int32     `json:"offset"`
}

func (q *Queries) ListInvoicesByUser(ctx context.Context, arg ListInvoicesByUserParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoicesByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Invoice{}
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const nextInvoiceNumber = `-- name: NextInvoiceNumber :one
INSERT INTO invoice_sequences (user_id, year, last_number)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, year)
DO UPDATE SET last_number = invoice_sequences.last_number + 1
RETURNING last_number
`

type NextInvoiceNumberParams struct {
	UserID uuid.UUID `json:"user_id"`
	Year   int32     `json:"year"`
}

func (q *Queries) NextInvoiceNumber(ctx context.Context, arg NextInvoiceNumberParams) (int32, error) {
	row := q.db.QueryRow(ctx, nextInvoiceNumber, arg.UserID, arg.Year)
	var last_number int32
	err := row.Scan(&last_number)
	return last_number, err
}

const updateInvoiceDraft = `-- name: UpdateInvoiceDraft :one
UPDATE invoices
SET recipient_email = $2,
    recipient_name = $3,
    recipient_address = $4,
    type = $5,
    title = $6,
    description = $7,
    amount = $8,
    tax_rate = $9,
    tax_amount = $10,
    total_amount = $11,
    issue_date = $12,
    due_date = $13,
    reference = $14,
    updated_at = NOW()
WHERE id = $1 AND status = 'draft' AND pdf_url IS NULL
RETURNING id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
`

type UpdateInvoiceDraftParams struct {
	ID               uuid.UUID          `json:"id"`
	RecipientEmail   string             `json:"recipient_email"`
	RecipientName    pgtype.Text        `json:"recipient_name"`
	RecipientAddress pgtype.Text        `json:"recipient_address"`
	Type             string             `json:"type"`
	Title            string             `json:"title"`
	Description      pgtype.Text        `json:"description"`
	Amount           float64            `json:"amount"`
	TaxRate          float64            `json:"tax_rate"`
	TaxAmount        float64            `json:"tax_amount"`
	TotalAmount      float64            `json:"total_amount"`
	IssueDate        pgtype.Timestamptz `json:"issue_date"`
	DueDate          pgtype.Timestamptz `json:"due_date"`
	Reference        pgtype.Text        `json:"reference"`
}

func (q *Queries) UpdateInvoiceDraft(ctx context.Context, arg UpdateInvoiceDraftParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceDraft,
		arg.ID,
		arg.RecipientEmail,
		arg.RecipientName,
		arg.RecipientAddress,
		arg.Type,
		arg.Title,
		arg.Description,
		arg.Amount,
		arg.TaxRate,
		arg.TaxAmount,
		arg.TotalAmount,
		arg.IssueDate,
		arg.DueDate,
		arg.Reference,
	)
	return scanInvoice(row)
}

const updateInvoicePaymentURL = `-- name: UpdateInvoicePaymentURL :one
UPDATE invoices
SET payment_url = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
`

type UpdateInvoicePaymentURLParams struct {
	ID         uuid.UUID   `json:"id"`
	PaymentUrl pgtype.Text `json:"payment_url"`
}

func (q *Queries) UpdateInvoicePaymentURL(ctx context.Context, arg UpdateInvoicePaymentURLParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoicePaymentURL, arg.ID, arg.PaymentUrl)
	return scanInvoice(row)
}

const updateInvoicePdfURL = `-- name: UpdateInvoicePdfURL :one
UPDATE invoices
SET pdf_url = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
`

type UpdateInvoicePdfURLParams struct {
	ID     uuid.UUID   `json:"id"`
	PdfUrl pgtype.Text `json:"pdf_url"`
}

func (q *Queries) UpdateInvoicePdfURL(ctx context.Context, arg UpdateInvoicePdfURLParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoicePdfURL, arg.ID, arg.PdfUrl)
	return scanInvoice(row)
}

const updateInvoiceStatus = `-- name: UpdateInvoiceStatus :one
UPDATE invoices
SET status = $2,
    sent_at = CASE WHEN $2 = 'pending' THEN NOW() ELSE sent_at END,
    paid_at = CASE WHEN $2 = 'paid' THEN NOW() ELSE paid_at END,
    updated_at = NOW()
WHERE id = $1 AND status = $3
RETURNING id, user_id, invoice_number, recipient_email, recipient_name, recipient_address, listing_id, type, title, description, amount, tax_rate, tax_amount, total_amount, status, issue_date, due_date, notes, reference, pdf_url, payment_url, sent_at, paid_at, created_at, updated_at
`

type UpdateInvoiceStatusParams struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	FromStatus string    `json:"from_status"`
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceStatus, arg.ID, arg.Status, arg.FromStatus)
	return scanInvoice(row)
}
