package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type sequenceKey struct {
	userID uuid.UUID
	year   int32
}

type memoryState struct {
	invoices  map[uuid.UUID]Invoice
	items     map[uuid.UUID][]InvoiceItem
	listings  map[uuid.UUID]Listing
	sequences map[sequenceKey]int32
}

func newMemoryState() *memoryState {
	return &memoryState{
		invoices:  make(map[uuid.UUID]Invoice),
		items:     make(map[uuid.UUID][]InvoiceItem),
		listings:  make(map[uuid.UUID]Listing),
		sequences: make(map[sequenceKey]int32),
	}
}

func (m *memoryState) clone() *memoryState {
	c := newMemoryState()
	for k, v := range m.invoices {
		c.invoices[k] = v
	}
	for k, v := range m.items {
		c.items[k] = append([]InvoiceItem(nil), v...)
	}
	for k, v := range m.listings {
		c.listings[k] = v
	}
	for k, v := range m.sequences {
		c.sequences[k] = v
	}
	return c
}

// MemoryStore is an in-process Store used by the local stage, the CLI and tests.
// ExecTx stages writes on a copy and publishes them only when fn succeeds.
// Missing rows are reported as pgx.ErrNoRows, matching SQLStore.
type MemoryStore struct {
	mu    sync.RWMutex
	state *memoryState
	now   func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: newMemoryState(),
		now:   time.Now,
	}
}

// ExecTx runs fn against a staged copy of the store and commits it if fn returns nil.
func (s *MemoryStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	staged := &MemoryStore{state: s.state.clone(), now: s.now}
	if err := fn(staged); err != nil {
		return err
	}
	s.state = staged.state
	return nil
}

func (s *MemoryStore) timestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: s.now().UTC(), Valid: true}
}

func (s *MemoryStore) AppendInvoiceNotes(ctx context.Context, arg AppendInvoiceNotesParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.state.invoices[arg.ID]
	if !ok {
		return Invoice{}, pgx.ErrNoRows
	}
	if inv.Notes.Valid && inv.Notes.String != "" {
		inv.Notes = pgtype.Text{String: inv.Notes.String + "\n" + arg.Notes, Valid: true}
	} else {
		inv.Notes = pgtype.Text{String: arg.Notes, Valid: true}
	}
	inv.UpdatedAt = s.timestamp()
	s.state.invoices[arg.ID] = inv
	return inv, nil
}

func (s *MemoryStore) CountInvoicesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, inv := range s.state.invoices {
		if inv.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Invoice{}, err
	}
	for _, existing := range s.state.invoices {
		if existing.UserID == arg.UserID && existing.InvoiceNumber == arg.InvoiceNumber {
			return Invoice{}, &pgconn.PgError{Code: "23505", ConstraintName: "invoices_user_id_invoice_number_key"}
		}
	}

	now := s.timestamp()
	inv := Invoice{
		ID:               uuid.New(),
		UserID:           arg.UserID,
		InvoiceNumber:    arg.InvoiceNumber,
		RecipientEmail:   arg.RecipientEmail,
		RecipientName:    arg.RecipientName,
		RecipientAddress: arg.RecipientAddress,
		ListingID:        arg.ListingID,
		Type:             arg.Type,
		Title:            arg.Title,
		Description:      arg.Description,
		Amount:           arg.Amount,
		TaxRate:          arg.TaxRate,
		TaxAmount:        arg.TaxAmount,
		TotalAmount:      arg.TotalAmount,
		Status:           arg.Status,
		IssueDate:        arg.IssueDate,
		DueDate:          arg.DueDate,
		Notes:            arg.Notes,
		Reference:        arg.Reference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.state.invoices[inv.ID] = inv
	return inv, nil
}

func (s *MemoryStore) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return InvoiceItem{}, err
	}
	if _, ok := s.state.invoices[arg.InvoiceID]; !ok {
		return InvoiceItem{}, &pgconn.PgError{Code: "23503", ConstraintName: "invoice_items_invoice_id_fkey"}
	}

	item := InvoiceItem{
		ID:          uuid.New(),
		InvoiceID:   arg.InvoiceID,
		Position:    arg.Position,
		Description: arg.Description,
		Quantity:    arg.Quantity,
		UnitPrice:   arg.UnitPrice,
		Amount:      arg.Amount,
		CreatedAt:   s.timestamp(),
	}
	s.state.items[arg.InvoiceID] = append(s.state.items[arg.InvoiceID], item)
	return item, nil
}

func (s *MemoryStore) CreateListing(ctx context.Context, arg CreateListingParams) (Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	listing := Listing{
		ID:        uuid.New(),
		UserID:    arg.UserID,
		Category:  arg.Category,
		Title:     arg.Title,
		Price:     arg.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.state.listings[listing.ID] = listing
	return listing, nil
}

func (s *MemoryStore) DeleteInvoiceItems(ctx context.Context, invoiceID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.state.items, invoiceID)
	return nil
}

func (s *MemoryStore) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.state.invoices[id]
	if !ok {
		return Invoice{}, pgx.ErrNoRows
	}
	return inv, nil
}

func (s *MemoryStore) GetListing(ctx context.Context, id uuid.UUID) (Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.state.listings[id]
	if !ok {
		return Listing{}, pgx.ErrNoRows
	}
	return listing, nil
}

func (s *MemoryStore) ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := append([]InvoiceItem{}, s.state.items[invoiceID]...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})
	return items, nil
}

func (s *MemoryStore) ListInvoicesByUser(ctx context.Context, arg ListInvoicesByUserParams) ([]Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoices := []Invoice{}
	for _, inv := range s.state.invoices {
		if inv.UserID == arg.UserID {
			invoices = append(invoices, inv)
		}
	}
	sort.Slice(invoices, func(i, j int) bool {
		if invoices[i].CreatedAt.Time.Equal(invoices[j].CreatedAt.Time) {
			return invoices[i].InvoiceNumber > invoices[j].InvoiceNumber
		}
		return invoices[i].CreatedAt.Time.After(invoices[j].CreatedAt.Time)
	})

	start := min(max(int(arg.Offset), 0), len(invoices))
	end := min(start+max(int(arg.Limit), 0), len(invoices))
	return invoices[start:end], nil
}

func (s *MemoryStore) NextInvoiceNumber(ctx context.Context, arg NextInvoiceNumberParams) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sequenceKey{userID: arg.UserID, year: arg.Year}
	s.state.sequences[key]++
	return s.state.sequences[key], nil
}

func (s *MemoryStore) UpdateInvoiceDraft(ctx context.Context, arg UpdateInvoiceDraftParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.state.invoices[arg.ID]
	if !ok || inv.Status != "draft" || inv.PdfUrl.Valid {
		return Invoice{}, pgx.ErrNoRows
	}
	inv.RecipientEmail = arg.RecipientEmail
	inv.RecipientName = arg.RecipientName
	inv.RecipientAddress = arg.RecipientAddress
	inv.Type = arg.Type
	inv.Title = arg.Title
	inv.Description = arg.Description
	inv.Amount = arg.Amount
	inv.TaxRate = arg.TaxRate
	inv.TaxAmount = arg.TaxAmount
	inv.TotalAmount = arg.TotalAmount
	inv.IssueDate = arg.IssueDate
	inv.DueDate = arg.DueDate
	inv.Reference = arg.Reference
	inv.UpdatedAt = s.timestamp()
	s.state.invoices[arg.ID] = inv
	return inv, nil
}

func (s *MemoryStore) UpdateInvoicePaymentURL(ctx context.Context, arg UpdateInvoicePaymentURLParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.state.invoices[arg.ID]
	if !ok {
		return Invoice{}, pgx.ErrNoRows
	}
	inv.PaymentUrl = arg.PaymentUrl
	inv.UpdatedAt = s.timestamp()
	s.state.invoices[arg.ID] = inv
	return inv, nil
}

func (s *MemoryStore) UpdateInvoicePdfURL(ctx context.Context, arg UpdateInvoicePdfURLParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.state.invoices[arg.ID]
	if !ok {
		return Invoice{}, pgx.ErrNoRows
	}
	inv.PdfUrl = arg.PdfUrl
	inv.UpdatedAt = s.timestamp()
	s.state.invoices[arg.ID] = inv
	return inv, nil
}

func (s *MemoryStore) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.state.invoices[arg.ID]
	if !ok || inv.Status != arg.FromStatus {
		return Invoice{}, pgx.ErrNoRows
	}
	now := s.timestamp()
	inv.Status = arg.Status
	switch arg.Status {
	case "pending":
		inv.SentAt = now
	case "paid":
		inv.PaidAt = now
	}
	inv.UpdatedAt = now
	s.state.invoices[arg.ID] = inv
	return inv, nil
}

var _ Store = (*MemoryStore)(nil)
