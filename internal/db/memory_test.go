package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/invoicing/internal/db"
)

func createInvoice(t *testing.T, q db.Querier, userID uuid.UUID, number string) db.Invoice {
	t.Helper()
	inv, err := q.CreateInvoice(context.Background(), db.CreateInvoiceParams{
		UserID:         userID,
		InvoiceNumber:  number,
		RecipientEmail: "buyer@example.com",
		Type:           "sale",
		Title:          "Widget order",
		Amount:         30,
		TaxRate:        10,
		TaxAmount:      3,
		TotalAmount:    33,
		Status:         "draft",
	})
	require.NoError(t, err)
	return inv
}

func TestMemoryStore_ExecTx(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("commits on success", func(t *testing.T) {
		store := db.NewMemoryStore()
		var created db.Invoice
		err := store.ExecTx(ctx, func(q db.Querier) error {
			created = createInvoice(t, q, userID, "INV-2026-0001")
			_, err := q.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{InvoiceID: created.ID, Position: 0, Description: "Widget", Quantity: 3, UnitPrice: 10, Amount: 30})
			return err
		})
		require.NoError(t, err)

		got, err := store.GetInvoice(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "INV-2026-0001", got.InvoiceNumber)
		items, err := store.ListInvoiceItems(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("discards every write on failure", func(t *testing.T) {
		store := db.NewMemoryStore()
		boom := errors.New("boom")

		err := store.ExecTx(ctx, func(q db.Querier) error {
			_, err := q.NextInvoiceNumber(ctx, db.NextInvoiceNumberParams{UserID: userID, Year: 2026})
			require.NoError(t, err)
			createInvoice(t, q, userID, "INV-2026-0001")
			return boom
		})
		assert.ErrorIs(t, err, boom)

		count, err := store.CountInvoicesByUser(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, count)

		next, err := store.NextInvoiceNumber(ctx, db.NextInvoiceNumberParams{UserID: userID, Year: 2026})
		require.NoError(t, err)
		assert.Equal(t, int32(1), next)
	})

	t.Run("cancelled context", func(t *testing.T) {
		store := db.NewMemoryStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := store.ExecTx(cctx, func(q db.Querier) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestMemoryStore_Constraints(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	userID := uuid.New()

	createInvoice(t, store, userID, "INV-2026-0001")

	_, err := store.CreateInvoice(ctx, db.CreateInvoiceParams{UserID: userID, InvoiceNumber: "INV-2026-0001", Status: "draft"})
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)

	// Another user may reuse the number.
	createInvoice(t, store, uuid.New(), "INV-2026-0001")

	_, err = store.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{InvoiceID: uuid.New(), Description: "orphan"})
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23503", pgErr.Code)

	_, err = store.GetInvoice(ctx, uuid.New())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMemoryStore_NextInvoiceNumber(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	alice, bob := uuid.New(), uuid.New()

	next := func(user uuid.UUID, year int32) int32 {
		n, err := store.NextInvoiceNumber(ctx, db.NextInvoiceNumberParams{UserID: user, Year: year})
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, int32(1), next(alice, 2026))
	assert.Equal(t, int32(2), next(alice, 2026))
	assert.Equal(t, int32(1), next(bob, 2026))
	assert.Equal(t, int32(1), next(alice, 2027))
}

func TestMemoryStore_GuardedUpdates(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	inv := createInvoice(t, store, uuid.New(), "INV-2026-0001")

	t.Run("status transition requires the expected current status", func(t *testing.T) {
		_, err := store.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{ID: inv.ID, Status: "paid", FromStatus: "pending"})
		assert.ErrorIs(t, err, pgx.ErrNoRows)

		sent, err := store.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{ID: inv.ID, Status: "pending", FromStatus: "draft"})
		require.NoError(t, err)
		assert.Equal(t, "pending", sent.Status)
		assert.True(t, sent.SentAt.Valid)
		assert.False(t, sent.PaidAt.Valid)
	})

	t.Run("draft update refuses non-draft rows", func(t *testing.T) {
		_, err := store.UpdateInvoiceDraft(ctx, db.UpdateInvoiceDraftParams{ID: inv.ID, Title: "changed"})
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("draft update refuses issued rows", func(t *testing.T) {
		draft := createInvoice(t, store, uuid.New(), "INV-2026-0002")
		_, err := store.UpdateInvoicePdfURL(ctx, db.UpdateInvoicePdfURLParams{ID: draft.ID, PdfUrl: pgtype.Text{String: "https://cdn/x.pdf", Valid: true}})
		require.NoError(t, err)

		_, err = store.UpdateInvoiceDraft(ctx, db.UpdateInvoiceDraftParams{ID: draft.ID, Title: "changed"})
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestMemoryStore_AppendInvoiceNotes(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	inv := createInvoice(t, store, uuid.New(), "INV-2026-0001")

	_, err := store.AppendInvoiceNotes(ctx, db.AppendInvoiceNotesParams{ID: inv.ID, Notes: "first"})
	require.NoError(t, err)
	updated, err := store.AppendInvoiceNotes(ctx, db.AppendInvoiceNotesParams{ID: inv.ID, Notes: "second"})
	require.NoError(t, err)

	assert.Equal(t, "first\nsecond", updated.Notes.String)

	_, err = store.AppendInvoiceNotes(ctx, db.AppendInvoiceNotesParams{ID: uuid.New(), Notes: "x"})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMemoryStore_ListInvoicesByUser(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	userID := uuid.New()
	for _, n := range []string{"INV-2026-0001", "INV-2026-0002", "INV-2026-0003"} {
		createInvoice(t, store, userID, n)
	}
	createInvoice(t, store, uuid.New(), "INV-2026-0001")

	page, err := store.ListInvoicesByUser(ctx, db.ListInvoicesByUserParams{UserID: userID, Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page, 2)

	rest, err := store.ListInvoicesByUser(ctx, db.ListInvoicesByUserParams{UserID: userID, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	beyond, err := store.ListInvoicesByUser(ctx, db.ListInvoicesByUserParams{UserID: userID, Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestMemoryStore_ListInvoicesByUserClampsBounds(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	userID := uuid.New()
	createInvoice(t, store, userID, "INV-2026-0001")
	createInvoice(t, store, userID, "INV-2026-0002")

	tests := []struct {
		name   string
		limit  int32
		offset int32
		want   int
	}{
		{name: "negative offset starts at the beginning", limit: 10, offset: -100, want: 2},
		{name: "negative limit returns nothing", limit: -1, offset: 0, want: 0},
		{name: "both negative", limit: -5, offset: -5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := store.ListInvoicesByUser(ctx, db.ListInvoicesByUserParams{UserID: userID, Limit: tt.limit, Offset: tt.offset})
			require.NoError(t, err)
			assert.Len(t, page, tt.want)
		})
	}
}
