package services

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/marketplace/invoicing/internal/constants"
	"github.com/marketplace/invoicing/internal/types/business"
)

// EmailRegex matches the addresses accepted for invoice recipients.
var EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type invoiceFields struct {
	RecipientEmail string
	Type           string
	Title          string
	TaxRate        float64
	IssueDate      time.Time
	DueDate        time.Time
	Items          []business.LineItem
}

// validateInvoiceFields collects every field failure instead of stopping at the first one.
func validateInvoiceFields(f invoiceFields) *ValidationError {
	verr := &ValidationError{}

	email := strings.TrimSpace(f.RecipientEmail)
	switch {
	case email == "":
		verr.Add("recipient_email", "recipient email is required")
	case !EmailRegex.MatchString(email):
		verr.Add("recipient_email", "recipient email is not a valid address")
	}

	if strings.TrimSpace(f.Title) == "" {
		verr.Add("title", "title is required")
	}

	if !slices.Contains(constants.ValidInvoiceTypes, f.Type) {
		verr.Add("type", fmt.Sprintf("type must be one of %s", strings.Join(constants.ValidInvoiceTypes, ", ")))
	}

	if f.DueDate.Before(f.IssueDate) {
		verr.Add("due_date", "due date must not be before the issue date")
	}

	if len(f.Items) == 0 {
		verr.Add("items", "at least one line item is required")
	}
	for i, item := range f.Items {
		if strings.TrimSpace(item.Description) == "" {
			verr.Add(fmt.Sprintf("items[%d].description", i), "description is required")
		}
	}

	validateAmounts(verr, f.Items, f.TaxRate)

	return verr
}

// validateAmounts checks the numeric inputs of a ledger and the totals they derive.
// Every value must be finite so stored and displayed money never holds NaN or Inf.
func validateAmounts(verr *ValidationError, items []business.LineItem, taxRate float64) {
	switch {
	case !isFinite(taxRate):
		verr.Add("tax_rate", "tax rate must be a finite number")
	case taxRate < 0 || taxRate > constants.MaxTaxRate:
		verr.Add("tax_rate", "tax rate must be between 0 and 100")
	}

	itemsValid := true
	for i, item := range items {
		lineValid := true
		switch {
		case !isFinite(item.Quantity):
			verr.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be a finite number")
			lineValid = false
		case item.Quantity <= 0:
			verr.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be greater than 0")
			lineValid = false
		}
		switch {
		case !isFinite(item.UnitPrice):
			verr.Add(fmt.Sprintf("items[%d].unit_price", i), "unit price must be a finite number")
			lineValid = false
		case item.UnitPrice < 0:
			verr.Add(fmt.Sprintf("items[%d].unit_price", i), "unit price must not be negative")
			lineValid = false
		}
		if lineValid && !isFinite(LineAmount(item.Quantity, item.UnitPrice)) {
			verr.Add(fmt.Sprintf("items[%d].amount", i), "line amount is too large")
			lineValid = false
		}
		itemsValid = itemsValid && lineValid
	}

	if !itemsValid || verr.HasField("tax_rate") {
		return
	}
	totals := CalculateTotals(items, taxRate)
	if !isFinite(totals.Subtotal) || !isFinite(totals.TaxAmount) || !isFinite(totals.Total) {
		verr.Add("total", "invoice total is too large")
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
