package db

import (
	"github.com/jackc/pgx/v5"
)

// GetDBTX returns the underlying connection or transaction.
func (q *Queries) GetDBTX() DBTX {
	return q.db
}

// scanInvoice reads the full invoices column list shared by every invoice query.
func scanInvoice(row pgx.Row) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.InvoiceNumber,
		&i.RecipientEmail,
		&i.RecipientName,
		&i.RecipientAddress,
		&i.ListingID,
		&i.Type,
		&i.Title,
		&i.Description,
		&i.Amount,
		&i.TaxRate,
		&i.TaxAmount,
		&i.TotalAmount,
		&i.Status,
		&i.IssueDate,
		&i.DueDate,
		&i.Notes,
		&i.Reference,
		&i.PdfUrl,
		&i.PaymentUrl,
		&i.SentAt,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
