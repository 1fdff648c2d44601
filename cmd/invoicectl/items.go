package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/marketplace/invoicing/internal/types/api/params"
)

// parseItems reads --item values of the form "description:quantity:unit_price".
// The description may itself contain colons.
func parseItems(values []string) ([]params.LineItemParams, error) {
	items := make([]params.LineItemParams, 0, len(values))
	for i, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) < 3 {
			return nil, fmt.Errorf("item %d: expected description:quantity:unit_price, got %q", i, v)
		}
		n := len(parts)
		quantity, err := parseAmount(parts[n-2])
		if err != nil {
			return nil, fmt.Errorf("item %d: invalid quantity %q: %w", i, parts[n-2], err)
		}
		unitPrice, err := parseAmount(parts[n-1])
		if err != nil {
			return nil, fmt.Errorf("item %d: invalid unit price %q: %w", i, parts[n-1], err)
		}
		items = append(items, params.LineItemParams{
			Description: strings.Join(parts[:n-2], ":"),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}
	return items, nil
}

// parseAmount accepts finite decimal numbers only; strconv would also take NaN and Inf.
func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("value must be a finite number")
	}
	return v, nil
}
