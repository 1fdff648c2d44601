package constants

// Invoice statuses
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusVoid    = "void"
)

// Invoice types
const (
	InvoiceTypeSale    = "sale"
	InvoiceTypeRent    = "rent"
	InvoiceTypeService = "service"
	InvoiceTypeProduct = "product"
)

// Invoice defaults
const (
	DefaultInvoiceDueDays = 14
	InvoiceNumberPrefix   = "INV"
	MaxTaxRate            = 100
)

// Invoice event types published to the event queue
const (
	EventInvoiceCreated = "invoice.created"
	EventInvoiceSent    = "invoice.sent"
	EventInvoicePaid    = "invoice.paid"
	EventInvoiceVoided  = "invoice.voided"
)

// Request context keys
const (
	UserIDHeader     = "X-User-ID"
	UserIDContextKey = "userID"
)

// ValidInvoiceTypes lists the accepted invoice types.
var ValidInvoiceTypes = []string{
	InvoiceTypeSale,
	InvoiceTypeRent,
	InvoiceTypeService,
	InvoiceTypeProduct,
}
