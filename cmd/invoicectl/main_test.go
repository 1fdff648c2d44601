package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/mocks"
	"github.com/marketplace/invoicing/internal/types/api/params"
	"github.com/marketplace/invoicing/internal/types/business"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []params.LineItemParams
		wantErr string
	}{
		{
			name:   "single item",
			values: []string{"Widget:3:10"},
			want:   []params.LineItemParams{{Description: "Widget", Quantity: 3, UnitPrice: 10}},
		},
		{
			name:   "description with colons",
			values: []string{"Rent: March 2026:1:1200.50"},
			want:   []params.LineItemParams{{Description: "Rent: March 2026", Quantity: 1, UnitPrice: 1200.5}},
		},
		{
			name:   "empty description is kept for validation",
			values: []string{":2:5"},
			want:   []params.LineItemParams{{Description: "", Quantity: 2, UnitPrice: 5}},
		},
		{
			name:    "missing price",
			values:  []string{"Widget:3"},
			wantErr: "expected description:quantity:unit_price",
		},
		{
			name:    "bad quantity",
			values:  []string{"Widget:three:10"},
			wantErr: "invalid quantity",
		},
		{
			name:    "nan quantity",
			values:  []string{"Widget:NaN:10"},
			wantErr: "invalid quantity",
		},
		{
			name:    "infinite price",
			values:  []string{"Widget:1:Inf"},
			wantErr: "must be a finite number",
		},
		{
			name:    "overflowing price",
			values:  []string{"Widget:1:1e400"},
			wantErr: "invalid unit price",
		},
		{
			name:    "bad price",
			values:  []string{"Widget:3:ten"},
			wantErr: "invalid unit price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseItems(tt.values)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreviewCommand(t *testing.T) {
	app := newApp(func(ctx context.Context) (interfaces.InvoiceService, func(), error) {
		t.Fatal("preview must not open the store")
		return nil, nil, nil
	})
	var out bytes.Buffer
	app.Writer = &out

	err := app.Run([]string{"invoicectl", "preview", "--item", "Widget:1:100", "--tax", "8.25"})
	require.NoError(t, err)

	var got totalsOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, totalsOutput{Subtotal: "100.00", TaxAmount: "8.25", Total: "108.25"}, got)
}

func TestTotalsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockInvoiceService(ctrl)
	userID, invoiceID := uuid.New(), uuid.New()

	svc.EXPECT().GetInvoiceTotals(gomock.Any(), userID, invoiceID).
		Return(&business.InvoiceTotals{Totals: business.Totals{Subtotal: 30, TaxAmount: 3, Total: 33}}, nil)

	cleaned := false
	app := newApp(func(ctx context.Context) (interfaces.InvoiceService, func(), error) {
		return svc, func() { cleaned = true }, nil
	})
	var out bytes.Buffer
	app.Writer = &out

	err := app.Run([]string{"invoicectl", "totals", "--user", userID.String(), "--id", invoiceID.String()})
	require.NoError(t, err)
	assert.True(t, cleaned)
	assert.Contains(t, out.String(), `"total": "33.00"`)
}

func TestPreviewCommand_RejectsNonFiniteTax(t *testing.T) {
	app := newApp(func(ctx context.Context) (interfaces.InvoiceService, func(), error) {
		t.Fatal("preview must not open the store")
		return nil, nil, nil
	})
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"invoicectl", "preview", "--item", "Widget:1:100", "--tax", "NaN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tax_rate")
}

func TestDownloadCommand_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockInvoiceService(ctrl)

	app := newApp(func(ctx context.Context) (interfaces.InvoiceService, func(), error) {
		return svc, func() {}, nil
	})
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"invoicectl", "download", "--user", uuid.NewString(), "--id", "not-a-uuid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --id")
}
