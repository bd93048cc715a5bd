package usecase

import (
	"context"

	"perfumeria/internal/domain/entity"

	"github.com/google/uuid"
)

// Customer identifies the shopper placing the order. Both fields are
// required: the name must have at least 3 characters and the email must be
// well-formed.
type Customer struct {
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
}

// OrderPreview is the composed order hand-off: the itemized message and the
// WhatsApp deep link that opens it pre-filled in a chat with the store.
type OrderPreview struct {
	Recipient   string        `json:"recipient"` // digits-only WhatsApp number
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsapp_url"`
	Totals      entity.Totals `json:"totals"`
}

// OrderUsecase converts a cart into an order request. There is no server-side
// order record: the outcome is always a messaging deep link.
type OrderUsecase interface {
	// Preview validates the customer, loads the cart and composes the
	// WhatsApp order message and deep link.
	Preview(ctx context.Context, cartID uuid.UUID, customer Customer) (*OrderPreview, error)

	// QR renders the deep link of Preview as a PNG QR code, for handing the
	// chat off from a desktop browser to a phone.
	QR(ctx context.Context, cartID uuid.UUID, customer Customer) ([]byte, error)
}
