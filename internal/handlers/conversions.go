package handlers

import (
	"github.com/google/uuid"

	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/api/params"
	"github.com/marketplace/invoicing/internal/types/api/requests"
	"github.com/marketplace/invoicing/internal/types/api/responses"
	"github.com/marketplace/invoicing/internal/types/business"
)

func toLineItemParams(items []requests.InvoiceLineItemRequest) []params.LineItemParams {
	out := make([]params.LineItemParams, 0, len(items))
	for _, item := range items {
		out = append(out, params.LineItemParams{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return out
}

func toLineItemResponses(items []business.LineItem) []responses.InvoiceLineItemResponse {
	out := make([]responses.InvoiceLineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, responses.InvoiceLineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return out
}

func toInvoiceResponse(inv *business.Invoice) responses.InvoiceResponse {
	resp := responses.InvoiceResponse{
		ID:               inv.ID.String(),
		InvoiceNumber:    inv.InvoiceNumber,
		Status:           inv.Status,
		Type:             inv.Type,
		Title:            inv.Title,
		Description:      inv.Description,
		RecipientEmail:   inv.RecipientEmail,
		RecipientName:    inv.RecipientName,
		RecipientAddress: inv.RecipientAddress,
		IssueDate:        inv.IssueDate,
		DueDate:          inv.DueDate,
		Items:            toLineItemResponses(inv.Items),
		TaxRate:          inv.TaxRate,
		Amount:           inv.Totals.Subtotal,
		TaxAmount:        inv.Totals.TaxAmount,
		TotalAmount:      inv.Totals.Total,
		Notes:            inv.Notes,
		Reference:        inv.Reference,
		PdfURL:           inv.PdfURL,
		PaymentURL:       inv.PaymentURL,
		Issued:           inv.IsIssued(),
		SentAt:           inv.SentAt,
		PaidAt:           inv.PaidAt,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
	if inv.ListingID != nil {
		resp.ListingID = inv.ListingID.String()
	}
	return resp
}

func toTotalsResponse(t *business.InvoiceTotals) responses.InvoiceTotalsResponse {
	resp := responses.InvoiceTotalsResponse{
		InvoiceNumber:    t.InvoiceNumber,
		Items:            toLineItemResponses(t.Items),
		TaxRate:          t.TaxRate,
		Subtotal:         t.Subtotal,
		TaxAmount:        t.TaxAmount,
		Total:            t.Total,
		SubtotalDisplay:  services.FormatMoney(t.Subtotal),
		TaxAmountDisplay: services.FormatMoney(t.TaxAmount),
		TotalDisplay:     services.FormatMoney(t.Total),
	}
	if t.InvoiceID != uuid.Nil {
		resp.InvoiceID = t.InvoiceID.String()
	}
	return resp
}
