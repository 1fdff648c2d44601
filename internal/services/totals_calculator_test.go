package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/business"
)

func line(description string, quantity, unitPrice float64) business.LineItem {
	return business.LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      services.LineAmount(quantity, unitPrice),
	}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name    string
		items   []business.LineItem
		taxRate float64
		want    business.Totals
	}{
		{
			name:    "single widget line with 10 percent tax",
			items:   []business.LineItem{line("Widget", 3, 10.00)},
			taxRate: 10,
			want:    business.Totals{Subtotal: 30, TaxAmount: 3, Total: 33},
		},
		{
			name:    "zero tax rate yields zero tax",
			items:   []business.LineItem{line("Consulting", 2, 150)},
			taxRate: 0,
			want:    business.Totals{Subtotal: 300, TaxAmount: 0, Total: 300},
		},
		{
			name: "every line counted once",
			items: []business.LineItem{
				line("A", 1, 5),
				line("B", 2, 2.5),
				line("C", 4, 0.25),
			},
			taxRate: 20,
			want:    business.Totals{Subtotal: 11, TaxAmount: 2.2, Total: 13.2},
		},
		{
			name:    "full tax rate doubles the subtotal",
			items:   []business.LineItem{line("Rent", 1, 800)},
			taxRate: 100,
			want:    business.Totals{Subtotal: 800, TaxAmount: 800, Total: 1600},
		},
		{
			name:    "blank line contributes nothing",
			items:   []business.LineItem{line("", 1, 0)},
			taxRate: 15,
			want:    business.Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.CalculateTotals(tt.items, tt.taxRate)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.TaxAmount, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestCalculateTotals_Invariants(t *testing.T) {
	items := []business.LineItem{
		line("Hours", 7.5, 42.10),
		line("Materials", 3, 19.99),
		line("Travel", 1, 12.345),
	}

	for _, rate := range []float64{0, 0.5, 7.25, 19, 33.333, 100} {
		totals := services.CalculateTotals(items, rate)

		var sum float64
		for _, item := range items {
			sum += item.Quantity * item.UnitPrice
		}
		assert.Equal(t, sum, totals.Subtotal)
		assert.Equal(t, totals.Subtotal*rate/100, totals.TaxAmount)
		assert.Equal(t, totals.Subtotal+totals.TaxAmount, totals.Total)
	}
}

func TestCalculateTotals_DoesNotRound(t *testing.T) {
	totals := services.CalculateTotals([]business.LineItem{line("Fraction", 1, 0.333)}, 10)
	assert.InDelta(t, 0.0333, totals.TaxAmount, 1e-12)
	assert.Equal(t, "0.03", services.FormatMoney(totals.TaxAmount))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{33, "33.00"},
		{2.2, "2.20"},
		{1.005, "1.01"},
		{1234.5678, "1234.57"},
		{-4.125, "-4.13"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.FormatMoney(tt.in))
	}
}
