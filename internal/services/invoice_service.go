package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/constants"
	"github.com/marketplace/invoicing/internal/db"
	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/types/api/params"
	"github.com/marketplace/invoicing/internal/types/business"
)

// InvoiceServiceConfig holds the dependencies of an InvoiceService.
// PaymentGateway, ListingSource and EventPublisher are optional.
type InvoiceServiceConfig struct {
	Store          db.Store
	Renderer       interfaces.Renderer
	Mailer         interfaces.Mailer
	PaymentGateway interfaces.PaymentGateway
	ListingSource  interfaces.ListingSource
	EventPublisher interfaces.EventPublisher
	Logger         *zap.Logger
	DefaultDueDays int
	RenderOnCreate bool
	Clock          func() time.Time
}

// InvoiceService handles invoice composition, persistence, rendering and delivery
type InvoiceService struct {
	store          db.Store
	renderer       interfaces.Renderer
	mailer         interfaces.Mailer
	payments       interfaces.PaymentGateway
	listings       interfaces.ListingSource
	events         interfaces.EventPublisher
	logger         *zap.Logger
	defaultDueDays int
	renderOnCreate bool
	clock          func() time.Time
}

var _ interfaces.InvoiceService = (*InvoiceService)(nil)

// NewInvoiceService creates a new invoice service
func NewInvoiceService(cfg InvoiceServiceConfig) *InvoiceService {
	if cfg.Logger == nil {
		cfg.Logger = logger.Log
	}
	if cfg.DefaultDueDays <= 0 {
		cfg.DefaultDueDays = constants.DefaultInvoiceDueDays
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &InvoiceService{
		store:          cfg.Store,
		renderer:       cfg.Renderer,
		mailer:         cfg.Mailer,
		payments:       cfg.PaymentGateway,
		listings:       cfg.ListingSource,
		events:         cfg.EventPublisher,
		logger:         cfg.Logger,
		defaultDueDays: cfg.DefaultDueDays,
		renderOnCreate: cfg.RenderOnCreate,
		clock:          cfg.Clock,
	}
}

// CreateInvoice validates the payload and persists the invoice and its line items in one transaction.
func (s *InvoiceService) CreateInvoice(ctx context.Context, params params.CreateInvoiceParams) (*business.Invoice, error) {
	ledger := NewLineItemLedgerFromParams(params.Items)
	title := params.Title

	if params.ListingID != nil {
		snapshot, err := s.listingSnapshot(ctx, *params.ListingID)
		if err != nil {
			return nil, err
		}
		if len(params.Items) == 0 {
			_ = ledger.UpdateItem(0, FieldDescription, snapshot.Title)
			_ = ledger.UpdateItem(0, FieldUnitPrice, snapshot.Price)
		}
		if strings.TrimSpace(title) == "" {
			title = snapshot.Title
		}
	}

	invoiceType := params.Type
	if invoiceType == "" {
		invoiceType = constants.InvoiceTypeSale
	}

	now := s.clock()
	issueDate := now
	if params.IssueDate != nil {
		issueDate = *params.IssueDate
	}
	dueDate := issueDate.AddDate(0, 0, s.defaultDueDays)
	if params.DueDate != nil {
		dueDate = *params.DueDate
	}

	items := ledger.Items()
	verr := validateInvoiceFields(invoiceFields{
		RecipientEmail: params.RecipientEmail,
		Type:           invoiceType,
		Title:          title,
		TaxRate:        params.TaxRate,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Items:          items,
	})
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	totals := ledger.Totals(params.TaxRate)

	var (
		created      db.Invoice
		createdItems []db.InvoiceItem
	)
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		invoiceNumber, err := s.generateInvoiceNumber(ctx, q, params.UserID, now)
		if err != nil {
			return err
		}

		created, err = q.CreateInvoice(ctx, db.CreateInvoiceParams{
			UserID:           params.UserID,
			InvoiceNumber:    invoiceNumber,
			RecipientEmail:   strings.TrimSpace(params.RecipientEmail),
			RecipientName:    textToPgtype(params.RecipientName),
			RecipientAddress: textToPgtype(params.RecipientAddress),
			ListingID:        uuidPtrToPgtype(params.ListingID),
			Type:             invoiceType,
			Title:            strings.TrimSpace(title),
			Description:      textToPgtype(params.Description),
			Amount:           totals.Subtotal,
			TaxRate:          params.TaxRate,
			TaxAmount:        totals.TaxAmount,
			TotalAmount:      totals.Total,
			Status:           constants.InvoiceStatusDraft,
			IssueDate:        timeToPgtype(issueDate),
			DueDate:          timeToPgtype(dueDate),
			Notes:            textToPgtype(params.Notes),
			Reference:        textToPgtype(params.Reference),
		})
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		createdItems, err = insertLineItems(ctx, q, created.ID, items)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to create invoice",
			zap.String("user_id", params.UserID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", created.ID.String()),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.Int("item_count", len(createdItems)),
		zap.Float64("total_amount", created.TotalAmount))

	s.publish(ctx, constants.EventInvoiceCreated, created)

	if s.renderOnCreate {
		rendered, err := s.render(ctx, created, createdItems)
		if err != nil {
			s.logger.Warn("Render after create failed, invoice kept as draft without artifact",
				zap.String("invoice_id", created.ID.String()),
				zap.Error(err))
		} else {
			created = rendered
		}
	}

	inv := toBusinessInvoice(created, createdItems)
	return &inv, nil
}

// PreviewInvoice computes totals for an unsaved ledger.
func (s *InvoiceService) PreviewInvoice(ctx context.Context, params params.PreviewInvoiceParams) (*business.InvoiceTotals, error) {
	ledger := NewLineItemLedgerFromParams(params.Items)
	verr := &ValidationError{}
	validateAmounts(verr, ledger.Items(), params.TaxRate)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &business.InvoiceTotals{
		Items:   ledger.Items(),
		TaxRate: params.TaxRate,
		Totals:  ledger.Totals(params.TaxRate),
	}, nil
}

// GetInvoice returns an owned invoice with its line items.
func (s *InvoiceService) GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*business.Invoice, error) {
	inv, err := s.loadOwned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	result := toBusinessInvoice(inv, items)
	return &result, nil
}

// ListInvoices returns a page of the user's invoices without line items, plus the total count.
func (s *InvoiceService) ListInvoices(ctx context.Context, params params.ListInvoicesParams) ([]business.Invoice, int64, error) {
	rows, err := s.store.ListInvoicesByUser(ctx, db.ListInvoicesByUserParams{
		UserID: params.UserID,
		Limit:  max(params.Limit, 0),
		Offset: max(params.Offset, 0),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	total, err := s.store.CountInvoicesByUser(ctx, params.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	invoices := make([]business.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, toBusinessInvoice(row, nil))
	}
	return invoices, total, nil
}

// UpdateInvoice replaces the editable fields and line items of an un-issued draft.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, params params.UpdateInvoiceParams) (*business.Invoice, error) {
	inv, err := s.loadOwned(ctx, params.UserID, params.InvoiceID)
	if err != nil {
		return nil, err
	}
	if err := requireEditable(inv); err != nil {
		return nil, err
	}

	invoiceType := params.Type
	if invoiceType == "" {
		invoiceType = inv.Type
	}
	issueDate := inv.IssueDate.Time
	if params.IssueDate != nil {
		issueDate = *params.IssueDate
	}
	dueDate := inv.DueDate.Time
	if params.DueDate != nil {
		dueDate = *params.DueDate
	}

	ledger := NewLineItemLedgerFromParams(params.Items)
	items := ledger.Items()
	verr := validateInvoiceFields(invoiceFields{
		RecipientEmail: params.RecipientEmail,
		Type:           invoiceType,
		Title:          params.Title,
		TaxRate:        params.TaxRate,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Items:          items,
	})
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	totals := ledger.Totals(params.TaxRate)

	var (
		updated      db.Invoice
		updatedItems []db.InvoiceItem
	)
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		var err error
		updated, err = q.UpdateInvoiceDraft(ctx, db.UpdateInvoiceDraftParams{
			ID:               inv.ID,
			RecipientEmail:   strings.TrimSpace(params.RecipientEmail),
			RecipientName:    textToPgtype(params.RecipientName),
			RecipientAddress: textToPgtype(params.RecipientAddress),
			Type:             invoiceType,
			Title:            strings.TrimSpace(params.Title),
			Description:      textToPgtype(params.Description),
			Amount:           totals.Subtotal,
			TaxRate:          params.TaxRate,
			TaxAmount:        totals.TaxAmount,
			TotalAmount:      totals.Total,
			IssueDate:        timeToPgtype(issueDate),
			DueDate:          timeToPgtype(dueDate),
			Reference:        textToPgtype(params.Reference),
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "invoice changed while being edited"}
			}
			return fmt.Errorf("failed to update invoice: %w", err)
		}

		if err := q.DeleteInvoiceItems(ctx, inv.ID); err != nil {
			return fmt.Errorf("failed to replace invoice line items: %w", err)
		}
		updatedItems, err = insertLineItems(ctx, q, inv.ID, items)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice updated",
		zap.String("invoice_id", updated.ID.String()),
		zap.Float64("total_amount", updated.TotalAmount))

	result := toBusinessInvoice(updated, updatedItems)
	return &result, nil
}

// AppendNotes adds a note to an invoice. Issued invoices accept notes.
func (s *InvoiceService) AppendNotes(ctx context.Context, userID, invoiceID uuid.UUID, notes string) (*business.Invoice, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		verr := &ValidationError{}
		verr.Add("notes", "notes are required")
		return nil, verr
	}

	inv, err := s.loadOwned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.AppendInvoiceNotes(ctx, db.AppendInvoiceNotesParams{ID: inv.ID, Notes: notes})
	if err != nil {
		return nil, fmt.Errorf("failed to append invoice notes: %w", err)
	}
	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	result := toBusinessInvoice(updated, items)
	return &result, nil
}

// RenderInvoice produces the artifact and records pdf_url. An invoice that already has one is returned unchanged.
func (s *InvoiceService) RenderInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*business.Invoice, error) {
	inv, err := s.loadOwned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	if inv.PdfUrl.Valid {
		result := toBusinessInvoice(inv, items)
		return &result, nil
	}
	if inv.Status == constants.InvoiceStatusVoid {
		return nil, &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "void invoices cannot be rendered"}
	}

	rendered, err := s.render(ctx, inv, items)
	if err != nil {
		return nil, err
	}
	result := toBusinessInvoice(rendered, items)
	return &result, nil
}

// SendInvoice renders the artifact if needed and emails it to the recipient.
// A draft becomes pending on success. Resending a pending invoice only repeats delivery.
// A render failure is returned before any delivery is attempted.
func (s *InvoiceService) SendInvoice(ctx context.Context, params params.SendInvoiceParams) (*business.SendResult, error) {
	inv, err := s.loadOwned(ctx, params.UserID, params.InvoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != constants.InvoiceStatusDraft && inv.Status != constants.InvoiceStatusPending {
		return nil, &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "only draft or pending invoices can be sent"}
	}

	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	if !inv.PdfUrl.Valid {
		inv, err = s.render(ctx, inv, items)
		if err != nil {
			s.logger.Error("Send aborted, artifact could not be rendered",
				zap.String("invoice_id", params.InvoiceID.String()),
				zap.Error(err))
			return nil, err
		}
	} else {
		inv = s.ensurePaymentLink(ctx, inv, items)
	}

	subject := fmt.Sprintf("Invoice %s: %s", inv.InvoiceNumber, inv.Title)
	receipt, err := s.mailer.SendInvoice(ctx, business.InvoiceEmail{
		To:            inv.RecipientEmail,
		RecipientName: inv.RecipientName.String,
		Subject:       subject,
		Message:       params.Message,
		InvoiceNumber: inv.InvoiceNumber,
		Title:         inv.Title,
		Total:         FormatMoney(inv.TotalAmount),
		DueDate:       inv.DueDate.Time,
		ArtifactURL:   inv.PdfUrl.String,
		PaymentURL:    inv.PaymentUrl.String,
	})
	if err == nil && (receipt == nil || !receipt.Success) {
		err = errors.New("mailer did not confirm delivery")
	}
	if err != nil {
		s.logger.Error("Failed to deliver invoice",
			zap.String("invoice_id", inv.ID.String()),
			zap.String("recipient", inv.RecipientEmail),
			zap.Error(err))
		return nil, &DeliveryError{InvoiceID: inv.ID, Recipient: inv.RecipientEmail, Err: err}
	}

	resent := inv.Status == constants.InvoiceStatusPending
	if inv.Status == constants.InvoiceStatusDraft {
		updated, err := s.store.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
			ID:         inv.ID,
			Status:     constants.InvoiceStatusPending,
			FromStatus: constants.InvoiceStatusDraft,
		})
		switch {
		case err == nil:
			inv = updated
		case errors.Is(err, pgx.ErrNoRows):
			if inv, err = s.store.GetInvoice(ctx, inv.ID); err != nil {
				return nil, fmt.Errorf("failed to reload invoice: %w", err)
			}
		default:
			s.logger.Error("Invoice delivered but status update failed",
				zap.String("invoice_id", inv.ID.String()),
				zap.Error(err))
			return nil, fmt.Errorf("failed to mark invoice as sent: %w", err)
		}
	}

	s.logger.Info("Invoice sent",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("message_id", receipt.MessageID),
		zap.Bool("resent", resent))

	s.publish(ctx, constants.EventInvoiceSent, inv)

	return &business.SendResult{
		Success:   true,
		MessageID: receipt.MessageID,
		Status:    inv.Status,
		Resent:    resent,
		PdfURL:    inv.PdfUrl.String,
	}, nil
}

// GetInvoiceTotals returns the totals stored at creation with the item breakdown.
func (s *InvoiceService) GetInvoiceTotals(ctx context.Context, userID, invoiceID uuid.UUID) (*business.InvoiceTotals, error) {
	inv, err := s.loadOwned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	view := toBusinessInvoice(inv, items)
	return &business.InvoiceTotals{
		InvoiceID:     view.ID,
		InvoiceNumber: view.InvoiceNumber,
		Items:         view.Items,
		TaxRate:       view.TaxRate,
		Totals:        view.Totals,
	}, nil
}

// DownloadArtifact returns the artifact URL, rendering it first when missing.
func (s *InvoiceService) DownloadArtifact(ctx context.Context, userID, invoiceID uuid.UUID) (string, error) {
	inv, err := s.loadOwned(ctx, userID, invoiceID)
	if err != nil {
		return "", err
	}
	if inv.PdfUrl.Valid {
		return inv.PdfUrl.String, nil
	}
	if inv.Status == constants.InvoiceStatusVoid {
		return "", &NotReadyError{InvoiceID: inv.ID}
	}

	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return "", err
	}
	rendered, err := s.render(ctx, inv, items)
	if err != nil {
		return "", &NotReadyError{InvoiceID: inv.ID, Err: err}
	}
	return rendered.PdfUrl.String, nil
}

// VoidInvoice cancels a draft or pending invoice.
func (s *InvoiceService) VoidInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*business.Invoice, error) {
	inv, err := s.loadOwned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == constants.InvoiceStatusPaid || inv.Status == constants.InvoiceStatusVoid {
		return nil, &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "only draft or pending invoices can be voided"}
	}

	updated, err := s.transition(ctx, inv, constants.InvoiceStatusVoid)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice voided",
		zap.String("invoice_id", updated.ID.String()),
		zap.String("previous_status", inv.Status))

	s.publish(ctx, constants.EventInvoiceVoided, updated)
	result := toBusinessInvoice(updated, nil)
	return &result, nil
}

// MarkInvoicePaid records a payment reported by the payment provider. Repeated calls are no-ops.
// Drafts are accepted as well as pending invoices: a rendered draft already carries a
// payment link, and a settled payment must not be dropped.
func (s *InvoiceService) MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) (*business.Invoice, error) {
	inv, err := s.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Resource: "invoice", ID: invoiceID}
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	switch inv.Status {
	case constants.InvoiceStatusPaid:
		result := toBusinessInvoice(inv, nil)
		return &result, nil
	case constants.InvoiceStatusVoid:
		return nil, &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "void invoices cannot be paid"}
	}

	updated, err := s.transition(ctx, inv, constants.InvoiceStatusPaid)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice marked as paid",
		zap.String("invoice_id", updated.ID.String()),
		zap.String("invoice_number", updated.InvoiceNumber))

	s.publish(ctx, constants.EventInvoicePaid, updated)
	result := toBusinessInvoice(updated, nil)
	return &result, nil
}

func (s *InvoiceService) transition(ctx context.Context, inv db.Invoice, status string) (db.Invoice, error) {
	updated, err := s.store.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
		ID:         inv.ID,
		Status:     status,
		FromStatus: inv.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "invoice status changed concurrently"}
		}
		return db.Invoice{}, fmt.Errorf("failed to update invoice status: %w", err)
	}
	return updated, nil
}

// render produces the artifact for inv and stores its URL. The returned row carries pdf_url.
func (s *InvoiceService) render(ctx context.Context, inv db.Invoice, items []db.InvoiceItem) (db.Invoice, error) {
	if s.renderer == nil {
		return inv, &RenderError{InvoiceID: inv.ID, Err: errors.New("no renderer configured")}
	}

	inv = s.ensurePaymentLink(ctx, inv, items)

	artifact, err := s.renderer.Render(ctx, toBusinessInvoice(inv, items))
	if err != nil {
		s.logger.Warn("Invoice rendering failed",
			zap.String("invoice_id", inv.ID.String()),
			zap.Error(err))
		return inv, &RenderError{InvoiceID: inv.ID, Err: err}
	}
	if artifact == nil || artifact.URL == "" {
		return inv, &RenderError{InvoiceID: inv.ID, Err: errors.New("renderer returned no artifact url")}
	}

	updated, err := s.store.UpdateInvoicePdfURL(ctx, db.UpdateInvoicePdfURLParams{
		ID:     inv.ID,
		PdfUrl: pgtype.Text{String: artifact.URL, Valid: true},
	})
	if err != nil {
		return inv, fmt.Errorf("failed to store artifact url: %w", err)
	}

	s.logger.Info("Invoice rendered",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("pdf_url", artifact.URL),
		zap.Int64("size", artifact.Size))
	return updated, nil
}

// ensurePaymentLink attaches a hosted payment URL when a gateway is configured. Failures are logged only.
func (s *InvoiceService) ensurePaymentLink(ctx context.Context, inv db.Invoice, items []db.InvoiceItem) db.Invoice {
	if s.payments == nil || inv.PaymentUrl.Valid || inv.TotalAmount <= 0 {
		return inv
	}

	link, err := s.payments.CreatePaymentLink(ctx, toBusinessInvoice(inv, items))
	if err != nil {
		s.logger.Warn("Failed to create payment link",
			zap.String("invoice_id", inv.ID.String()),
			zap.Error(err))
		return inv
	}

	updated, err := s.store.UpdateInvoicePaymentURL(ctx, db.UpdateInvoicePaymentURLParams{
		ID:         inv.ID,
		PaymentUrl: pgtype.Text{String: link.URL, Valid: link.URL != ""},
	})
	if err != nil {
		s.logger.Warn("Failed to store payment link",
			zap.String("invoice_id", inv.ID.String()),
			zap.Error(err))
		return inv
	}
	return updated
}

func (s *InvoiceService) listingSnapshot(ctx context.Context, listingID uuid.UUID) (*business.ListingSnapshot, error) {
	if s.listings == nil {
		return nil, &NotFoundError{Resource: "listing", ID: listingID}
	}
	snapshot, err := s.listings.GetListingSnapshot(ctx, listingID)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load listing snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *InvoiceService) loadOwned(ctx context.Context, userID, invoiceID uuid.UUID) (db.Invoice, error) {
	inv, err := s.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, &NotFoundError{Resource: "invoice", ID: invoiceID}
		}
		return db.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	if inv.UserID != userID {
		return db.Invoice{}, &ForbiddenError{InvoiceID: invoiceID}
	}
	return inv, nil
}

func (s *InvoiceService) loadItems(ctx context.Context, invoiceID uuid.UUID) ([]db.InvoiceItem, error) {
	items, err := s.store.ListInvoiceItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice line items: %w", err)
	}
	return items, nil
}

// generateInvoiceNumber returns the next INV-YYYY-NNNN number of the user for the current year.
func (s *InvoiceService) generateInvoiceNumber(ctx context.Context, q db.Querier, userID uuid.UUID, now time.Time) (string, error) {
	year := now.Year()
	next, err := q.NextInvoiceNumber(ctx, db.NextInvoiceNumberParams{
		UserID: userID,
		Year:   int32(year),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get next invoice number: %w", err)
	}
	return fmt.Sprintf("%s-%d-%04d", constants.InvoiceNumberPrefix, year, next), nil
}

func (s *InvoiceService) publish(ctx context.Context, eventType string, inv db.Invoice) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, business.InvoiceEvent{
		Type:          eventType,
		InvoiceID:     inv.ID,
		UserID:        inv.UserID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		TotalAmount:   inv.TotalAmount,
		OccurredAt:    s.clock().UTC(),
	})
	if err != nil {
		s.logger.Warn("Failed to publish invoice event",
			zap.String("event_type", eventType),
			zap.String("invoice_id", inv.ID.String()),
			zap.Error(err))
	}
}

func requireEditable(inv db.Invoice) error {
	if inv.PdfUrl.Valid {
		return &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "issued invoices only accept notes and resends"}
	}
	if inv.Status != constants.InvoiceStatusDraft {
		return &InvalidStateError{InvoiceID: inv.ID, Status: inv.Status, Reason: "only draft invoices can be edited"}
	}
	return nil
}

func insertLineItems(ctx context.Context, q db.Querier, invoiceID uuid.UUID, items []business.LineItem) ([]db.InvoiceItem, error) {
	rows := make([]db.InvoiceItem, 0, len(items))
	for i, item := range items {
		row, err := q.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{
			InvoiceID:   invoiceID,
			Position:    int32(i),
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create invoice line item %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
