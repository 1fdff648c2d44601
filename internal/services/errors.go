package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldError describes one invalid input field. Item fields are addressed as items[i].name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when required input is missing or malformed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a field failure.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasField reports whether field failed validation.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NotFoundError is returned when an invoice or listing id does not resolve.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ForbiddenError is returned when a caller acts on an invoice it does not own.
type ForbiddenError struct {
	InvoiceID uuid.UUID
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("invoice %s belongs to another user", e.InvoiceID)
}

// InvalidStateError is returned when an operation is not allowed in the invoice's current state.
type InvalidStateError struct {
	InvoiceID uuid.UUID
	Status    string
	Reason    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invoice %s (%s): %s", e.InvoiceID, e.Status, e.Reason)
}

// RenderError is returned when the artifact could not be produced. The invoice stays usable.
type RenderError struct {
	InvoiceID uuid.UUID
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render invoice %s: %v", e.InvoiceID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// DeliveryError is returned when the email could not be sent. Status is left unchanged.
type DeliveryError struct {
	InvoiceID uuid.UUID
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver invoice %s to %s: %v", e.InvoiceID, e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// NotReadyError is returned when an artifact is requested before one exists.
type NotReadyError struct {
	InvoiceID uuid.UUID
	Err       error
}

func (e *NotReadyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("artifact for invoice %s is not ready: %v", e.InvoiceID, e.Err)
	}
	return fmt.Sprintf("artifact for invoice %s is not ready", e.InvoiceID)
}

func (e *NotReadyError) Unwrap() error { return e.Err }
