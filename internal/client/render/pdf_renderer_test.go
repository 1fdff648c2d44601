package render_test

import (
	"bytes"
	"compress/zlib"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/client/render"
	"github.com/marketplace/invoicing/internal/mocks"
	"github.com/marketplace/invoicing/internal/types/business"
)

func sampleInvoice() business.Invoice {
	issued := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	return business.Invoice{
		ID:             uuid.MustParse("9b2f5c8e-1d2a-4c3b-8e7f-6a5b4c3d2e1f"),
		UserID:         uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef"),
		InvoiceNumber:  "INV-2026-0001",
		RecipientEmail: "buyer@example.com",
		RecipientName:  "Jane Buyer",
		Title:          "Widget order",
		Items: []business.LineItem{
			{Description: "Widget", Quantity: 3, UnitPrice: 10, Amount: 30},
		},
		TaxRate:   10,
		Totals:    business.Totals{Subtotal: 30, TaxAmount: 3, Total: 33},
		IssueDate: issued,
		DueDate:   issued.AddDate(0, 0, 14),
		Notes:     "Thanks!",
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	tests := []struct {
		name       string
		paymentURL string
	}{
		{name: "plain invoice"},
		{name: "invoice with payment QR", paymentURL: "https://checkout.stripe.com/c/pay/cs_test_123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockArtifactStore(ctrl)

			inv := sampleInvoice()
			inv.PaymentURL = tt.paymentURL

			var stored []byte
			store.EXPECT().
				Put(gomock.Any(), "invoices/01234567-89ab-cdef-0123-456789abcdef/INV-2026-0001.pdf", "application/pdf", gomock.Any()).
				DoAndReturn(func(ctx context.Context, key, contentType string, body []byte) (string, error) {
					stored = body
					return "https://artifacts.example.com/" + key, nil
				}).
				Times(1)

			renderer := render.NewPDFRenderer(store, render.PDFRendererConfig{SellerName: "Acme Motors"}, zap.NewNop())
			artifact, err := renderer.Render(context.Background(), inv)
			require.NoError(t, err)

			assert.Equal(t, "https://artifacts.example.com/invoices/01234567-89ab-cdef-0123-456789abcdef/INV-2026-0001.pdf", artifact.URL)
			assert.Equal(t, "application/pdf", artifact.ContentType)
			assert.Equal(t, int64(len(stored)), artifact.Size)
			assert.True(t, bytes.HasPrefix(stored, []byte("%PDF-")))
		})
	}
}

// pageContent inflates every compressed stream of a PDF and joins the results.
func pageContent(t *testing.T, pdf []byte) []byte {
	t.Helper()
	var out []byte
	rest := pdf
	for {
		start := bytes.Index(rest, []byte("\nstream\n"))
		if start < 0 {
			return out
		}
		rest = rest[start+len("\nstream\n"):]
		end := bytes.Index(rest, []byte("\nendstream"))
		require.GreaterOrEqual(t, end, 0)

		if r, err := zlib.NewReader(bytes.NewReader(rest[:end])); err == nil {
			if data, err := io.ReadAll(r); err == nil {
				out = append(out, data...)
			}
		}
		rest = rest[end:]
	}
}

func TestPDFRenderer_BuildEncodesText(t *testing.T) {
	inv := sampleInvoice()
	inv.Title = "Café order"
	inv.RecipientName = "Zoë Müller"
	inv.Items[0].Description = "Crème brûlée"
	inv.Notes = "Grüße"

	renderer := render.NewPDFRenderer(nil, render.PDFRendererConfig{SellerName: "Señor Market", Currency: "usd"}, zap.NewNop())
	body, err := renderer.Build(inv)
	require.NoError(t, err)

	content := pageContent(t, body)
	require.NotEmpty(t, content)

	for _, want := range []string{"Caf\xe9 order", "Zo\xeb M\xfcller", "Cr\xe8me br\xfbl\xe9e", "Gr\xfc\xdfe", "Se\xf1or Market"} {
		assert.True(t, bytes.Contains(content, []byte(want)), "missing cp1252 text %q", want)
	}
	for _, raw := range []string{"Café", "Zoë", "Müller"} {
		assert.False(t, bytes.Contains(content, []byte(raw)), "raw UTF-8 %q in page content", raw)
	}

	assert.True(t, bytes.Contains(content, []byte("USD 30.00")))
	assert.False(t, bytes.Contains(content, []byte("usd 30.00")))
}

func TestPDFRenderer_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockArtifactStore(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))

	renderer := render.NewPDFRenderer(store, render.PDFRendererConfig{}, zap.NewNop())
	artifact, err := renderer.Render(context.Background(), sampleInvoice())

	assert.Nil(t, artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestArtifactKey(t *testing.T) {
	inv := sampleInvoice()
	assert.Equal(t, "out/01234567-89ab-cdef-0123-456789abcdef/INV-2026-0001.pdf", render.ArtifactKey("out/", inv))

	inv.InvoiceNumber = ""
	assert.True(t, strings.HasSuffix(render.ArtifactKey("out", inv), inv.ID.String()+".pdf"))
}

func TestFileArtifactStore_Put(t *testing.T) {
	dir := t.TempDir()

	t.Run("file url by default", func(t *testing.T) {
		store := render.NewFileArtifactStore(dir, "")
		url, err := store.Put(context.Background(), "a/b/inv.pdf", "application/pdf", []byte("%PDF-1.3"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "file://"))

		body, err := os.ReadFile(filepath.Join(dir, "a", "b", "inv.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.3", string(body))
	})

	t.Run("base url when configured", func(t *testing.T) {
		store := render.NewFileArtifactStore(dir, "http://localhost:8000/artifacts")
		url, err := store.Put(context.Background(), "inv.pdf", "application/pdf", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/artifacts/inv.pdf", url)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := render.NewFileArtifactStore(dir, "").Put(ctx, "c.pdf", "application/pdf", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
