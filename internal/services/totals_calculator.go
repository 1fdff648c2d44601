package services

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/marketplace/invoicing/internal/types/business"
)

// CalculateTotals derives subtotal, tax and total from items and a percentage tax rate.
// Values are not rounded; use FormatMoney for display.
func CalculateTotals(items []business.LineItem, taxRate float64) business.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	taxAmount := subtotal * taxRate / 100
	return business.Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// LineAmount is the derived amount of a single line.
func LineAmount(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// FormatMoney rounds v half away from zero to 2 decimal places.
// Non-finite values, which validation keeps out of stored invoices, print as-is.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
