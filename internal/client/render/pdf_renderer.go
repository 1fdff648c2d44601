package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/types/business"
)

const (
	contentTypePDF = "application/pdf"
	qrCodeSize     = 256
	qrImageName    = "payment-qr"
)

// PDFRendererConfig configures the invoice PDF layout.
type PDFRendererConfig struct {
	SellerName string
	Currency   string
	KeyPrefix  string
}

// PDFRenderer lays out invoices as A4 PDFs and uploads them to an ArtifactStore.
type PDFRenderer struct {
	store  interfaces.ArtifactStore
	config PDFRendererConfig
	logger *zap.Logger
}

var _ interfaces.Renderer = (*PDFRenderer)(nil)

// NewPDFRenderer creates a renderer that stores its output in store.
func NewPDFRenderer(store interfaces.ArtifactStore, config PDFRendererConfig, logger *zap.Logger) *PDFRenderer {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "invoices"
	}
	config.Currency = strings.ToUpper(strings.TrimSpace(config.Currency))
	if config.Currency == "" {
		config.Currency = "USD"
	}
	return &PDFRenderer{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Render builds the PDF for invoice and stores it under <prefix>/<user>/<invoice number>.pdf.
func (r *PDFRenderer) Render(ctx context.Context, invoice business.Invoice) (*business.RenderedArtifact, error) {
	body, err := r.Build(invoice)
	if err != nil {
		return nil, err
	}

	key := ArtifactKey(r.config.KeyPrefix, invoice)
	url, err := r.store.Put(ctx, key, contentTypePDF, body)
	if err != nil {
		return nil, fmt.Errorf("failed to store invoice pdf: %w", err)
	}

	r.logger.Debug("Invoice pdf stored",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("key", key),
		zap.Int("size", len(body)))

	return &business.RenderedArtifact{
		URL:         url,
		ContentType: contentTypePDF,
		Size:        int64(len(body)),
	}, nil
}

// Build lays out the invoice and returns the PDF bytes.
func (r *PDFRenderer) Build(invoice business.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(invoice.InvoiceNumber, true)
	pdf.SetAuthor(r.config.SellerName, true)
	// The core fonts are cp1252; user text arrives as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(120, 10, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(70, 10, invoice.InvoiceNumber, "", 1, "R", false, 0, "")

	if r.config.SellerName != "" {
		pdf.CellFormat(0, 6, tr(r.config.SellerName), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Issued: "+invoice.IssueDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Due: "+invoice.DueDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, "Bill to", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	if invoice.RecipientName != "" {
		pdf.CellFormat(0, 6, tr(invoice.RecipientName), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(invoice.RecipientEmail), "", 1, "L", false, 0, "")
	if invoice.RecipientAddress != "" {
		pdf.MultiCell(0, 6, tr(invoice.RecipientAddress), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, tr(invoice.Title), "", 1, "L", false, 0, "")
	if invoice.Description != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(invoice.Description), "", "L", false)
	}
	pdf.Ln(2)

	r.writeItems(pdf, invoice, tr)
	r.writeTotals(pdf, invoice)

	if invoice.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(invoice.Notes), "", "L", false)
	}

	if invoice.PaymentURL != "" {
		if err := r.writePaymentQR(pdf, invoice.PaymentURL); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) writeItems(pdf *gofpdf.Fpdf, invoice business.Invoice, tr func(string) string) {
	widths := []float64{90, 25, 35, 40}
	headers := []string{"Description", "Qty", "Unit price", "Amount"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		pdf.CellFormat(widths[0], 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, decimal.NewFromFloat(item.Quantity).String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.money(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.money(item.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func (r *PDFRenderer) writeTotals(pdf *gofpdf.Fpdf, invoice business.Invoice) {
	rows := []struct {
		label string
		value float64
	}{
		{"Subtotal", invoice.Totals.Subtotal},
		{fmt.Sprintf("Tax (%s%%)", decimal.NewFromFloat(invoice.TaxRate).String()), invoice.Totals.TaxAmount},
		{"Total", invoice.Totals.Total},
	}

	pdf.Ln(2)
	for i, row := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(150, 7, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, r.money(row.value), "", 1, "R", false, 0, "")
	}
}

func (r *PDFRenderer) writePaymentQR(pdf *gofpdf.Fpdf, paymentURL string) error {
	qr, err := qrcode.New(paymentURL, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := qr.PNG(qrCodeSize)
	if err != nil {
		return fmt.Errorf("failed to generate PNG: %w", err)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Pay online", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, paymentURL, "", 1, "L", false, 0, paymentURL)

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	pdf.ImageOptions(qrImageName, pdf.GetX(), pdf.GetY()+2, 35, 35, true, opts, 0, paymentURL)
	return pdf.Error()
}

func (r *PDFRenderer) money(v float64) string {
	return r.config.Currency + " " + decimal.NewFromFloat(v).StringFixed(2)
}

// ArtifactKey is the storage key of an invoice artifact.
func ArtifactKey(prefix string, invoice business.Invoice) string {
	name := invoice.InvoiceNumber
	if name == "" {
		name = invoice.ID.String()
	}
	return strings.TrimSuffix(prefix, "/") + "/" + invoice.UserID.String() + "/" + name + ".pdf"
}
