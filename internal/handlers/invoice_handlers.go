package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketplace/invoicing/internal/helpers"
	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/api/params"
	"github.com/marketplace/invoicing/internal/types/api/requests"
	"github.com/marketplace/invoicing/internal/types/api/responses"
)

// InvoiceHandler exposes invoice composition and delivery over HTTP
type InvoiceHandler struct {
	invoiceService interfaces.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler instance
func NewInvoiceHandler(invoiceService interfaces.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Creates a draft invoice with its line items. Every invalid field is reported at once.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice body requests.CreateInvoiceRequest true "Invoice to create"
// @Success 201 {object} responses.InvoiceResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req requests.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var listingID *uuid.UUID
	if req.ListingID != nil && strings.TrimSpace(*req.ListingID) != "" {
		parsed, err := uuid.Parse(*req.ListingID)
		if err != nil {
			verr := &services.ValidationError{}
			verr.Add("listing_id", "listing id is not a valid uuid")
			sendValidationError(c, verr)
			return
		}
		listingID = &parsed
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), params.CreateInvoiceParams{
		UserID:           userID,
		RecipientEmail:   req.RecipientEmail,
		RecipientName:    req.RecipientName,
		RecipientAddress: req.RecipientAddress,
		ListingID:        listingID,
		Type:             req.Type,
		Title:            req.Title,
		Description:      req.Description,
		IssueDate:        req.IssueDate,
		DueDate:          req.DueDate,
		Items:            toLineItemParams(req.Items),
		TaxRate:          req.TaxRate,
		Notes:            req.Notes,
		Reference:        req.Reference,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toInvoiceResponse(invoice))
}

// PreviewInvoice godoc
// @Summary Preview invoice totals
// @Description Computes subtotal, tax and total for unsaved line items
// @Tags invoices
// @Accept json
// @Produce json
// @Param preview body requests.PreviewInvoiceRequest true "Line items and tax rate"
// @Success 200 {object} responses.InvoiceTotalsResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /invoices/preview [post]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	var req requests.PreviewInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	totals, err := h.invoiceService.PreviewInvoice(c.Request.Context(), params.PreviewInvoiceParams{
		Items:   toLineItemParams(req.Items),
		TaxRate: req.TaxRate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toTotalsResponse(totals))
}

// ListInvoices godoc
// @Summary List invoices
// @Description Lists the acting user's invoices, newest first
// @Tags invoices
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} responses.ListInvoicesResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pageParams, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), params.ListInvoicesParams{
		UserID: userID,
		Limit:  pageParams.Limit,
		Offset: pageParams.Offset,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data := make([]responses.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		data = append(data, toInvoiceResponse(&invoices[i]))
	}

	sendSuccess(c, http.StatusOK, responses.ListInvoicesResponse{
		Data: data,
		Pagination: responses.Pagination{
			Page:       pageParams.Page,
			Limit:      pageParams.Limit,
			TotalItems: total,
		},
	})
}

// GetInvoice godoc
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} responses.InvoiceResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// UpdateInvoice godoc
// @Summary Update a draft invoice
// @Description Replaces the editable fields and line items of a draft that has not been issued
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Param invoice body requests.UpdateInvoiceRequest true "Replacement fields"
// @Success 200 {object} responses.InvoiceResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /invoices/{invoice_id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req requests.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), params.UpdateInvoiceParams{
		UserID:           userID,
		InvoiceID:        invoiceID,
		RecipientEmail:   req.RecipientEmail,
		RecipientName:    req.RecipientName,
		RecipientAddress: req.RecipientAddress,
		Type:             req.Type,
		Title:            req.Title,
		Description:      req.Description,
		IssueDate:        req.IssueDate,
		DueDate:          req.DueDate,
		Items:            toLineItemParams(req.Items),
		TaxRate:          req.TaxRate,
		Reference:        req.Reference,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// AppendNotes godoc
// @Summary Append notes
// @Description Appends a note to an invoice. Allowed after issue.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Param notes body requests.AppendNotesRequest true "Note to append"
// @Success 200 {object} responses.InvoiceResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id}/notes [post]
func (h *InvoiceHandler) AppendNotes(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req requests.AppendNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice, err := h.invoiceService.AppendNotes(c.Request.Context(), userID, invoiceID, req.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// GetInvoiceTotals godoc
// @Summary Get invoice totals
// @Description Returns the stored items and totals with display strings rounded to 2 decimals
// @Tags invoices
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} responses.InvoiceTotalsResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id}/totals [get]
func (h *InvoiceHandler) GetInvoiceTotals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	totals, err := h.invoiceService.GetInvoiceTotals(c.Request.Context(), userID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toTotalsResponse(totals))
}

// RenderInvoice godoc
// @Summary Render invoice artifact
// @Description Produces the PDF artifact and records its URL
// @Tags invoices
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} responses.InvoiceResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id}/render [post]
func (h *InvoiceHandler) RenderInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.RenderInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// SendInvoice godoc
// @Summary Send invoice
// @Description Renders the invoice if needed and emails it to the recipient. Resending a pending invoice is allowed.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Param message body requests.SendInvoiceRequest false "Optional message"
// @Success 200 {object} responses.SendInvoiceResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req requests.SendInvoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	result, err := h.invoiceService.SendInvoice(c.Request.Context(), params.SendInvoiceParams{
		UserID:    userID,
		InvoiceID: invoiceID,
		Message:   req.Message,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.SendInvoiceResponse{
		Success:   result.Success,
		Status:    result.Status,
		Resent:    result.Resent,
		PdfURL:    result.PdfURL,
		MessageID: result.MessageID,
	})
}

// DownloadInvoice godoc
// @Summary Download invoice artifact
// @Description Returns the artifact URL, or redirects to it when redirect=true
// @Tags invoices
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Param redirect query bool false "Redirect to the artifact"
// @Success 200 {object} responses.DownloadArtifactResponse
// @Success 302
// @Failure 409 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id}/download [get]
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	url, err := h.invoiceService.DownloadArtifact(c.Request.Context(), userID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusFound, url)
		return
	}
	sendSuccess(c, http.StatusOK, responses.DownloadArtifactResponse{URL: url})
}

// VoidInvoice godoc
// @Summary Void invoice
// @Description Voids a draft or pending invoice
// @Tags invoices
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} responses.InvoiceResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /invoices/{invoice_id}/void [post]
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.VoidInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}
