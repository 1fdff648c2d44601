package email

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/types/business"
)

// LogMailer writes invoice emails to the log instead of sending them. Used in the local stage without a Resend key.
type LogMailer struct {
	logger *zap.Logger
}

var _ interfaces.Mailer = (*LogMailer)(nil)

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendInvoice(ctx context.Context, email business.InvoiceEmail) (*business.DeliveryReceipt, error) {
	if email.To == "" {
		return nil, fmt.Errorf("recipient address is required")
	}
	text, err := RenderInvoiceText(email)
	if err != nil {
		return nil, err
	}

	messageID := "local-" + uuid.NewString()
	m.logger.Info("Invoice email (not sent)",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("message_id", messageID),
		zap.String("body", text))

	return &business.DeliveryReceipt{Success: true, MessageID: messageID}, nil
}
