package services

import (
	"fmt"

	"github.com/marketplace/invoicing/internal/types/api/params"
	"github.com/marketplace/invoicing/internal/types/business"
)

// LedgerField names an editable line item field.
type LedgerField string

const (
	FieldDescription LedgerField = "description"
	FieldQuantity    LedgerField = "quantity"
	FieldUnitPrice   LedgerField = "unit_price"
)

// LineItemLedger is the ordered list of lines being composed before an invoice is saved.
// It always holds at least one item and keeps every amount in sync with its inputs.
type LineItemLedger struct {
	items []business.LineItem
}

// NewLineItemLedger returns a ledger holding one blank item.
func NewLineItemLedger() *LineItemLedger {
	l := &LineItemLedger{}
	l.AddItem()
	return l
}

// NewLineItemLedgerFromParams builds a ledger from submitted lines, computing each amount.
// An empty input yields the single blank item.
func NewLineItemLedgerFromParams(lines []params.LineItemParams) *LineItemLedger {
	if len(lines) == 0 {
		return NewLineItemLedger()
	}
	l := &LineItemLedger{items: make([]business.LineItem, 0, len(lines))}
	for _, line := range lines {
		l.items = append(l.items, business.LineItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      LineAmount(line.Quantity, line.UnitPrice),
		})
	}
	return l
}

// AddItem appends a line with quantity 1 and a zero price.
func (l *LineItemLedger) AddItem() {
	l.items = append(l.items, business.LineItem{Quantity: 1})
}

// RemoveItem drops the line at index. It does nothing when one line is left or index is out of range.
func (l *LineItemLedger) RemoveItem(index int) {
	if len(l.items) <= 1 || index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

// UpdateItem sets one field of the line at index and recomputes its amount.
func (l *LineItemLedger) UpdateItem(index int, field LedgerField, value any) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("line item index %d out of range", index)
	}
	item := &l.items[index]
	switch field {
	case FieldDescription:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("description must be a string, got %T", value)
		}
		item.Description = s
	case FieldQuantity:
		n, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
		item.Quantity = n
	case FieldUnitPrice:
		n, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("unit_price: %w", err)
		}
		item.UnitPrice = n
	default:
		return fmt.Errorf("unknown line item field %q", field)
	}
	item.Amount = LineAmount(item.Quantity, item.UnitPrice)
	return nil
}

// Items returns a copy of the lines in order.
func (l *LineItemLedger) Items() []business.LineItem {
	return append([]business.LineItem(nil), l.items...)
}

// Len returns the number of lines.
func (l *LineItemLedger) Len() int {
	return len(l.items)
}

// Totals runs the calculator over the current lines.
func (l *LineItemLedger) Totals(taxRate float64) business.Totals {
	return CalculateTotals(l.items, taxRate)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}
