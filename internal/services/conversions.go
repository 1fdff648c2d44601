package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/marketplace/invoicing/internal/db"
	"github.com/marketplace/invoicing/internal/types/business"
)

func textToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func timeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func uuidPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func pgtypeToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func pgtypeToUUIDPtr(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	u := uuid.UUID(id.Bytes)
	return &u
}

// toBusinessInvoice maps a stored invoice and its items into the service view.
// Totals come from the stored columns, never from the items.
func toBusinessInvoice(inv db.Invoice, items []db.InvoiceItem) business.Invoice {
	lines := make([]business.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, business.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return business.Invoice{
		ID:               inv.ID,
		UserID:           inv.UserID,
		InvoiceNumber:    inv.InvoiceNumber,
		RecipientEmail:   inv.RecipientEmail,
		RecipientName:    inv.RecipientName.String,
		RecipientAddress: inv.RecipientAddress.String,
		ListingID:        pgtypeToUUIDPtr(inv.ListingID),
		Type:             inv.Type,
		Title:            inv.Title,
		Description:      inv.Description.String,
		Items:            lines,
		TaxRate:          inv.TaxRate,
		Totals: business.Totals{
			Subtotal:  inv.Amount,
			TaxAmount: inv.TaxAmount,
			Total:     inv.TotalAmount,
		},
		Status:     inv.Status,
		IssueDate:  inv.IssueDate.Time,
		DueDate:    inv.DueDate.Time,
		Notes:      inv.Notes.String,
		Reference:  inv.Reference.String,
		PdfURL:     inv.PdfUrl.String,
		PaymentURL: inv.PaymentUrl.String,
		SentAt:     pgtypeToTimePtr(inv.SentAt),
		PaidAt:     pgtypeToTimePtr(inv.PaidAt),
		CreatedAt:  inv.CreatedAt.Time,
		UpdatedAt:  inv.UpdatedAt.Time,
	}
}
